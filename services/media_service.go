package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"

	"gemstone-admin/libs"
	"gemstone-admin/models"
	"gemstone-admin/upstream"
	"gemstone-admin/utils"
)

var ErrNoUploadTarget = errors.New("no upload target configured")

// MediaService validates incoming files and forwards them to the upstream
// media endpoint, falling back to a direct CDN upload when the upstream is
// not configured.
type MediaService struct {
	api     *upstream.Client
	cdn     *libs.CloudinaryService
	maxSize int64
}

func NewMediaService(api *upstream.Client, cdn *libs.CloudinaryService, maxSize int64) *MediaService {
	return &MediaService{api: api, cdn: cdn, maxSize: maxSize}
}

func (s *MediaService) Upload(ctx context.Context, sess upstream.Session, fileHeader *multipart.FileHeader) (*models.MediaUploadResult, error) {
	if err := utils.ValidateMediaFile(fileHeader, s.maxSize); err != nil {
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	if s.api.Configured() {
		return s.api.UploadMedia(ctx, sess, fileHeader.Filename, data)
	}

	if s.cdn != nil {
		url, format, size, err := s.cdn.Upload(ctx, bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return &models.MediaUploadResult{URL: url, Format: format, Bytes: size}, nil
	}

	return nil, ErrNoUploadTarget
}
