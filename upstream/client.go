package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"gemstone-admin/models"

	"github.com/guonaihong/gout"
	"github.com/guonaihong/gout/dataflow"
	"go.uber.org/zap"
)

// Session is the request-context object threaded into every upstream call.
// The backend access token travels here instead of through package globals.
type Session struct {
	Token string
}

// ErrSessionExpired is returned on upstream 401 responses. Handlers translate
// it into a login redirect; it is never locally recoverable.
var ErrSessionExpired = errors.New("session expired")

// ErrNotConfigured is returned when no upstream base URL is set.
var ErrNotConfigured = errors.New("upstream API not configured")

// APIError carries a non-success upstream response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream error (%d): %s", e.Status, e.Message)
}

// IsNotFound reports whether the error is an upstream 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsForbidden reports whether the error is an upstream 403.
func IsForbidden(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusForbidden
}

// envelope is the {success, data, ...} wrapper every upstream endpoint uses.
type envelope struct {
	Success    bool                       `json:"success"`
	Message    string                     `json:"message"`
	Data       json.RawMessage            `json:"data"`
	Pagination *models.UpstreamPagination `json:"pagination"`
}

// Client is the shared HTTP client for the upstream e-commerce API.
type Client struct {
	baseURL    string
	timeout    time.Duration
	retryDelay time.Duration
	log        *zap.Logger
}

const maxRetries = 2

func NewClient(baseURL string, timeout, retryDelay time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL:    baseURL,
		timeout:    timeout,
		retryDelay: retryDelay,
		log:        log,
	}
}

// Configured reports whether a base URL was provided.
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

func (c *Client) flow(method, path string) *dataflow.DataFlow {
	url := c.baseURL + path
	switch method {
	case http.MethodPost:
		return gout.POST(url)
	case http.MethodPut:
		return gout.PUT(url)
	case http.MethodDelete:
		return gout.DELETE(url)
	default:
		return gout.GET(url)
	}
}

func (c *Client) attempt(ctx context.Context, sess Session, method, path string, query gout.H, body interface{}, env *envelope) (int, error) {
	df := c.flow(method, path).
		WithContext(ctx).
		SetTimeout(c.timeout)

	if sess.Token != "" {
		df = df.SetHeader(gout.H{"Authorization": "Bearer " + sess.Token})
	}
	if query != nil {
		df = df.SetQuery(query)
	}
	if body != nil {
		df = df.SetJSON(body)
	}

	var code int
	err := df.BindJSON(env).Code(&code).Do()
	if err != nil && code == 0 {
		return 0, err
	}
	return code, nil
}

// call performs one upstream request and maps the response onto the error
// taxonomy. Transport errors come back with retriable=true.
func (c *Client) call(ctx context.Context, sess Session, method, path string, query gout.H, body interface{}, out interface{}) (*models.UpstreamPagination, bool, error) {
	if !c.Configured() {
		return nil, false, ErrNotConfigured
	}

	var env envelope
	code, err := c.attempt(ctx, sess, method, path, query, body, &env)
	if err != nil {
		c.log.Warn("upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return nil, true, fmt.Errorf("upstream request failed: %w", err)
	}

	switch {
	case code == http.StatusUnauthorized:
		return nil, false, ErrSessionExpired
	case code >= 500:
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(code)
		}
		return nil, true, &APIError{Status: code, Message: msg}
	case code >= 400:
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(code)
		}
		return nil, false, &APIError{Status: code, Message: msg}
	case !env.Success:
		msg := env.Message
		if msg == "" {
			msg = "request was not successful"
		}
		return nil, false, &APIError{Status: code, Message: msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, false, fmt.Errorf("decode upstream response: %w", err)
		}
	}
	return env.Pagination, false, nil
}

// get performs a read with the capped retry policy: transient failures
// (network errors, 5xx) get at most 2 extra attempts with increasing delay.
func (c *Client) get(ctx context.Context, sess Session, path string, query gout.H, out interface{}) (*models.UpstreamPagination, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.retryDelay * time.Duration(attempt)):
			}
			c.log.Info("retrying upstream read",
				zap.String("path", path),
				zap.Int("attempt", attempt))
		}

		pagination, retriable, err := c.call(ctx, sess, http.MethodGet, path, query, nil, out)
		if err == nil {
			return pagination, nil
		}
		lastErr = err
		if !retriable {
			return nil, err
		}
	}
	return nil, lastErr
}

// mutate performs a write. Mutations are never retried; failure leaves the
// prior state intact and reports the error.
func (c *Client) mutate(ctx context.Context, sess Session, method, path string, body interface{}, out interface{}) error {
	_, _, err := c.call(ctx, sess, method, path, nil, body, out)
	return err
}
