package services

import (
	"context"
	"errors"

	"gemstone-admin/config"
	"gemstone-admin/models"
	"gemstone-admin/upstream"
	"gemstone-admin/utils"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	api *upstream.Client
}

func NewAuthService(api *upstream.Client) *AuthService {
	return &AuthService{api: api}
}

// Login authenticates against the upstream auth endpoint and wraps the result
// in a locally signed session token. When no upstream is configured the
// env-provisioned fallback admin is used instead, so the dashboard stays
// usable in development.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	if s.api.Configured() {
		accessToken, user, err := s.api.Login(ctx, email, password)
		if err != nil {
			var apiErr *upstream.APIError
			if errors.As(err, &apiErr) {
				return "", nil, ErrInvalidCredentials
			}
			return "", nil, err
		}
		token, err := utils.GenerateSessionToken(user, accessToken)
		if err != nil {
			return "", nil, err
		}
		return token, user, nil
	}

	return s.localLogin(email, password)
}

func (s *AuthService) localLogin(email, password string) (string, *models.User, error) {
	cfg := config.AppConfig
	if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
		return "", nil, upstream.ErrNotConfigured
	}

	ok, err := utils.VerifyPassword(cfg.AdminPasswordHash, password)
	if err != nil || !ok || email != cfg.AdminEmail {
		return "", nil, ErrInvalidCredentials
	}

	user := &models.User{
		ID:    "local-admin",
		Email: cfg.AdminEmail,
		Name:  "Administrator",
		Role:  "admin",
	}
	token, err := utils.GenerateSessionToken(user, "")
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ForgotPassword proxies the reset request upstream.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	return s.api.ForgotPassword(ctx, email)
}
