package controllers

import (
	"errors"
	"net/http"

	"gemstone-admin/models"
	"gemstone-admin/services"
	"gemstone-admin/utils"

	"github.com/gin-gonic/gin"
)

type MediaController struct {
	media *services.MediaService
}

func NewMediaController(media *services.MediaService) *MediaController {
	return &MediaController{media: media}
}

// @Summary Upload media
// @Description Upload an image or video and get back its CDN descriptor
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param media formData file true "Media file"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/media [post]
func (ctrl *MediaController) UploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("media")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "A media file is required",
			Error:   err.Error(),
		})
		return
	}

	result, err := ctrl.media.Upload(c.Request.Context(), session(c), fileHeader)
	if err != nil {
		var invalid utils.MediaValidationError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: invalid.Error(),
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Media uploaded",
		"data": gin.H{
			"url":      result.URL,
			"format":   result.Format,
			"bytes":    result.Bytes,
			"duration": result.Duration,
			"isVideo":  utils.IsVideoFile(fileHeader.Filename),
		},
	})
}
