package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"gemstone-admin/models"

	"github.com/guonaihong/gout"
	"go.uber.org/zap"
)

// UploadMedia forwards a multipart file to POST /upload-media (field name
// "media") and returns the CDN descriptor. Uploads are mutations: no retry.
func (c *Client) UploadMedia(ctx context.Context, sess Session, filename string, data []byte) (*models.MediaUploadResult, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	var env envelope
	var code int

	df := gout.POST(c.baseURL + "/upload-media").
		WithContext(ctx).
		SetTimeout(c.timeout).
		SetForm(gout.H{"media": gout.FormMem(data)})

	if sess.Token != "" {
		df = df.SetHeader(gout.H{"Authorization": "Bearer " + sess.Token})
	}

	if err := df.BindJSON(&env).Code(&code).Do(); err != nil && code == 0 {
		c.log.Warn("media upload failed", zap.String("filename", filename), zap.Error(err))
		return nil, fmt.Errorf("media upload failed: %w", err)
	}

	switch {
	case code == http.StatusUnauthorized:
		return nil, ErrSessionExpired
	case code >= 400 || !env.Success:
		msg := env.Message
		if msg == "" {
			msg = "media upload was not successful"
		}
		return nil, &APIError{Status: code, Message: msg}
	}

	var result models.MediaUploadResult
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &result); err != nil {
			return nil, fmt.Errorf("decode upload response: %w", err)
		}
	}
	return &result, nil
}
