package controllers

import (
	"fmt"
	"net/http"
	"time"

	"gemstone-admin/models"
	"gemstone-admin/services"
	"gemstone-admin/utils"

	"github.com/gin-gonic/gin"
)

type ConsultationController struct {
	consultations *services.ConsultationService
}

func NewConsultationController(consultations *services.ConsultationService) *ConsultationController {
	return &ConsultationController{consultations: consultations}
}

// @Summary Get consultations
// @Description Get one page of consultation bookings, normalized for the dashboard
// @Tags Consultations
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search by name, company, service or email"
// @Param status query string false "Filter by status" Enums(all, pending, scheduled, completed, cancelled)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/consultations [get]
func (ctrl *ConsultationController) GetConsultations(c *gin.Context) {
	page, limit := pageQuery(c)

	consultations, pagination, err := ctrl.consultations.List(c.Request.Context(), session(c), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	filtered := services.FilterConsultations(consultations, c.Query("search"), c.DefaultQuery("status", "all"))

	meta := models.PaginationMeta{
		Page:       page,
		Limit:      limit,
		TotalItems: len(filtered),
		TotalPages: 1,
	}
	if pagination != nil {
		meta.Page = pagination.CurrentPage
		meta.TotalItems = pagination.TotalBookings
		meta.TotalPages = pagination.TotalPages
		meta.HasNext = pagination.HasNext
		meta.HasPrev = pagination.HasPrev
	}

	c.JSON(http.StatusOK, models.PaginatedResponse{
		Success: true,
		Message: "Consultations retrieved",
		Data:    filtered,
		Meta:    meta,
		Pages:   utils.PageNumbers(meta.Page, meta.TotalPages),
	})
}

// @Summary Update consultation status
// @Tags Consultations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Consultation ID"
// @Param request body models.UpdateStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/consultations/{id}/status [put]
func (ctrl *ConsultationController) UpdateConsultationStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Status is required",
			Error:   err.Error(),
		})
		return
	}

	err := ctrl.consultations.UpdateStatus(c.Request.Context(), session(c), c.Param("id"), c.Query("current"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Consultation status updated"})
}

// @Summary Delete consultation
// @Tags Consultations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Consultation ID"
// @Success 200 {object} models.Response
// @Router /admin/consultations/{id} [delete]
func (ctrl *ConsultationController) DeleteConsultation(c *gin.Context) {
	if err := ctrl.consultations.Delete(c.Request.Context(), session(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Consultation deleted"})
}

// @Summary Export consultations
// @Description Download the current consultation page as CSV
// @Tags Consultations
// @Produce text/csv
// @Security BearerAuth
// @Param search query string false "Search by name, company, service or email"
// @Param status query string false "Filter by status"
// @Success 200 {string} string "CSV payload"
// @Router /admin/consultations/export [get]
func (ctrl *ConsultationController) ExportConsultations(c *gin.Context) {
	page, limit := pageQuery(c)

	consultations, _, err := ctrl.consultations.List(c.Request.Context(), session(c), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	filtered := services.FilterConsultations(consultations, c.Query("search"), c.DefaultQuery("status", "all"))
	csv, err := ctrl.consultations.ExportCSV(filtered)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("consultations_export_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}
