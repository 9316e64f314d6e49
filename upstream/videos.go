package upstream

import (
	"context"
	"net/http"

	"gemstone-admin/models"
)

// Video calls: GET/POST/DELETE /video[/:id].

func (c *Client) ListVideos(ctx context.Context, sess Session) ([]models.Video, error) {
	videos := []models.Video{}
	if _, err := c.get(ctx, sess, "/video", nil, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (c *Client) CreateVideo(ctx context.Context, sess Session, req models.CreateVideoRequest) (*models.Video, error) {
	var video models.Video
	if err := c.mutate(ctx, sess, http.MethodPost, "/video", req, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

func (c *Client) DeleteVideo(ctx context.Context, sess Session, id string) error {
	return c.mutate(ctx, sess, http.MethodDelete, "/video/"+id, nil, nil)
}
