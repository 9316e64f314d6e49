package models

// Video is an independent media entity. There is no draft or edit state,
// only upload-then-list.
type Video struct {
	ID     string `json:"_id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Format string `json:"format"`
	Size   int64  `json:"size"`
}

// CreateVideoRequest is the body for registering an uploaded video.
type CreateVideoRequest struct {
	Title  string `json:"title" binding:"required"`
	URL    string `json:"url" binding:"required"`
	Format string `json:"format"`
	Size   int64  `json:"size"`
}

// MediaUploadResult is the upstream response for POST /upload-media.
type MediaUploadResult struct {
	URL      string  `json:"url"`
	Duration float64 `json:"duration,omitempty"`
	Bytes    int64   `json:"bytes,omitempty"`
	Format   string  `json:"format,omitempty"`
}
