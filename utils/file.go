package utils

import (
	"mime/multipart"
	"path/filepath"
	"strings"
)

// MediaValidationError marks rejections the client can fix, as opposed to
// transport failures.
type MediaValidationError string

func (e MediaValidationError) Error() string { return string(e) }

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedVideoExtensions = map[string]bool{
	".mp4": true,
	".mov": true,
	".avi": true,
	".mkv": true,
	".webm": true,
}

// ValidateMediaFile checks an incoming multipart file before it is forwarded
// to the CDN. Binary transfer itself is the upstream's concern; the gateway
// only rejects files that would bounce anyway.
func ValidateMediaFile(fileHeader *multipart.FileHeader, maxSize int64) error {
	if fileHeader.Size > maxSize {
		return MediaValidationError("file size exceeds maximum allowed size")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] && !allowedVideoExtensions[ext] {
		return MediaValidationError("invalid file type. Only images and videos are allowed")
	}

	return nil
}

// IsVideoFile reports whether the filename carries a video extension.
func IsVideoFile(filename string) bool {
	return allowedVideoExtensions[strings.ToLower(filepath.Ext(filename))]
}
