package libs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryService uploads media straight to the CDN. It is the fallback
// path for deployments where the upstream /upload-media endpoint is absent.
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService() (*CloudinaryService, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		cldURL := os.Getenv("CLOUDINARY_URL")
		if cldURL == "" {
			return nil, errors.New("cloudinary credentials not configured")
		}
		cld, err := cloudinary.NewFromURL(cldURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
		}
		return &CloudinaryService{cld: cld}, nil
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryService{cld: cld}, nil
}

// Upload pushes a media stream into the products folder and returns the
// secure URL plus the stored format and size.
func (s *CloudinaryService) Upload(ctx context.Context, file io.Reader) (url, format string, bytes int64, err error) {
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: fmt.Sprintf("media_%d", time.Now().UnixNano()),
		Folder:   "products",
	})
	if err != nil {
		return "", "", 0, err
	}
	if resp == nil || (resp.SecureURL == "" && resp.URL == "") {
		return "", "", 0, errors.New("cloudinary returned an empty response")
	}

	url = resp.SecureURL
	if url == "" {
		url = resp.URL
	}
	return url, resp.Format, int64(resp.Bytes), nil
}
