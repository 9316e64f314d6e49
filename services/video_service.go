package services

import (
	"context"

	"gemstone-admin/models"
	"gemstone-admin/upstream"
)

type VideoService struct {
	api *upstream.Client
}

func NewVideoService(api *upstream.Client) *VideoService {
	return &VideoService{api: api}
}

func (s *VideoService) List(ctx context.Context, sess upstream.Session) ([]models.Video, error) {
	return s.api.ListVideos(ctx, sess)
}

func (s *VideoService) Create(ctx context.Context, sess upstream.Session, req models.CreateVideoRequest) (*models.Video, error) {
	return s.api.CreateVideo(ctx, sess, req)
}

func (s *VideoService) Delete(ctx context.Context, sess upstream.Session, id string) error {
	return s.api.DeleteVideo(ctx, sess, id)
}
