package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"gemstone-admin/models"
	"gemstone-admin/services"
	"gemstone-admin/upstream"

	"github.com/gin-gonic/gin"
)

// session rebuilds the upstream session from the claims the auth middleware
// stored on the request context.
func session(c *gin.Context) upstream.Session {
	return upstream.Session{Token: c.GetString("access_token")}
}

func adminEmail(c *gin.Context) string {
	return c.GetString("user_email")
}

func pageQuery(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

// respondError maps service failures onto the response taxonomy: expired
// sessions redirect to login, missing and forbidden resources send the user
// back, upstream outages invite a retry.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, upstream.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success:  false,
			Message:  "Session expired. Please log in again.",
			Redirect: "/login",
		})
	case errors.Is(err, upstream.ErrNotConfigured), errors.Is(err, services.ErrNoUploadTarget):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Success: false,
			Message: "Store backend is not configured",
		})
	case errors.Is(err, services.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Unknown status value",
		})
	case errors.Is(err, services.ErrSettingsUnavailable):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Success: false,
			Message: "Settings store unavailable",
		})
	default:
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) {
			switch {
			case apiErr.Status == http.StatusNotFound:
				c.JSON(http.StatusNotFound, models.ErrorResponse{
					Success: false,
					Message: apiErr.Message,
					GoBack:  true,
				})
			case apiErr.Status == http.StatusForbidden:
				c.JSON(http.StatusForbidden, models.ErrorResponse{
					Success: false,
					Message: apiErr.Message,
					GoBack:  true,
				})
			case apiErr.Status >= http.StatusInternalServerError:
				c.JSON(http.StatusBadGateway, models.ErrorResponse{
					Success:  false,
					Message:  apiErr.Message,
					CanRetry: true,
				})
			default:
				c.JSON(apiErr.Status, models.ErrorResponse{
					Success: false,
					Message: apiErr.Message,
				})
			}
			return
		}

		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Success:  false,
			Message:  "Something went wrong while contacting the store backend",
			Error:    err.Error(),
			CanRetry: true,
		})
	}
}
