package controllers

import (
	"net/http"

	"gemstone-admin/models"
	"gemstone-admin/services"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{settings: settings}
}

// @Summary Get settings
// @Description Get the dashboard settings for the signed-in admin
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/settings [get]
func (ctrl *SettingsController) GetSettings(c *gin.Context) {
	settings, err := ctrl.settings.Get(c.Request.Context(), adminEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Settings retrieved", "data": settings})
}

// @Summary Save settings
// @Description Replace the whole settings record
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Settings true "Settings record"
// @Success 200 {object} models.Response
// @Router /admin/settings [put]
func (ctrl *SettingsController) SaveSettings(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid settings payload",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.settings.Save(c.Request.Context(), adminEmail(c), settings); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Settings saved", "data": settings})
}

// @Summary Patch one setting
// @Description Update a single key inside one settings section
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SettingsPatchRequest true "Section, key and value"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/settings [patch]
func (ctrl *SettingsController) PatchSetting(c *gin.Context) {
	var req models.SettingsPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Section and key are required",
			Error:   err.Error(),
		})
		return
	}

	settings, err := ctrl.settings.Patch(c.Request.Context(), adminEmail(c), req.Section, req.Key, req.Value)
	if err != nil {
		if err == services.ErrSettingsUnavailable {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Setting updated", "data": settings})
}

// @Summary Reset settings
// @Description Restore the default settings record
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/settings/reset [post]
func (ctrl *SettingsController) ResetSettings(c *gin.Context) {
	defaults := models.DefaultSettings()
	if err := ctrl.settings.Save(c.Request.Context(), adminEmail(c), defaults); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Settings reset to defaults", "data": defaults})
}
