package upstream

import (
	"context"
	"fmt"
	"net/http"

	"gemstone-admin/models"

	"github.com/guonaihong/gout"
)

// loginEnvelope differs from the standard envelope: the token and user sit at
// the top level of the response body.
type loginEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    models.User `json:"user"`
}

// Login posts credentials to the upstream auth endpoint and returns the
// backend access token plus the user identity.
func (c *Client) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	if !c.Configured() {
		return "", nil, ErrNotConfigured
	}

	var env loginEnvelope
	var code int
	body := map[string]string{"email": email, "password": password}

	err := gout.POST(c.baseURL + "/auth/login").
		WithContext(ctx).
		SetTimeout(c.timeout).
		SetJSON(body).
		BindJSON(&env).
		Code(&code).
		Do()
	if err != nil && code == 0 {
		return "", nil, fmt.Errorf("login request failed: %w", err)
	}

	if code == http.StatusUnauthorized || code == http.StatusBadRequest || !env.Success || env.Token == "" {
		msg := env.Message
		if msg == "" {
			msg = "Invalid credentials"
		}
		return "", nil, &APIError{Status: code, Message: msg}
	}

	return env.Token, &env.User, nil
}

// ForgotPassword proxies a reset request to the upstream.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	body := map[string]string{"email": email}
	return c.mutate(ctx, Session{}, http.MethodPost, "/auth/forgot-password", body, nil)
}
