package controllers

import (
	"net/http"

	"gemstone-admin/models"
	"gemstone-admin/services"

	"github.com/gin-gonic/gin"
)

type VideoController struct {
	videos *services.VideoService
}

func NewVideoController(videos *services.VideoService) *VideoController {
	return &VideoController{videos: videos}
}

// @Summary Get videos
// @Description List the promotional videos
// @Tags Videos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/videos [get]
func (ctrl *VideoController) GetVideos(c *gin.Context) {
	videos, err := ctrl.videos.List(c.Request.Context(), session(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Videos retrieved", "data": videos})
}

// @Summary Register video
// @Description Register an uploaded video with the store
// @Tags Videos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateVideoRequest true "Video metadata"
// @Success 201 {object} models.Response
// @Router /admin/videos [post]
func (ctrl *VideoController) CreateVideo(c *gin.Context) {
	var req models.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Title and URL are required",
			Error:   err.Error(),
		})
		return
	}

	video, err := ctrl.videos.Create(c.Request.Context(), session(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Video created", "data": video})
}

// @Summary Delete video
// @Tags Videos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Video ID"
// @Success 200 {object} models.Response
// @Router /admin/videos/{id} [delete]
func (ctrl *VideoController) DeleteVideo(c *gin.Context) {
	if err := ctrl.videos.Delete(c.Request.Context(), session(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Video deleted"})
}
