package controllers

import (
	"net/http"

	"gemstone-admin/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analytics: analytics}
}

// @Summary Sales analytics
// @Description Get the dashboard overview with growth and recent orders
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/analytics [get]
func (ctrl *AnalyticsController) GetAnalytics(c *gin.Context) {
	data, err := ctrl.analytics.GetStats(c.Request.Context(), session(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Analytics retrieved",
		"data": gin.H{
			"overview":        data.Overview,
			"growth":          data.Growth,
			"growthRate":      services.GrowthRate(data.DailyStats),
			"dailyStats":      data.DailyStats,
			"recentOrders":    data.RecentOrders,
			"statusBreakdown": data.StatusBreakdown,
		},
	})
}

// @Summary Chart series
// @Description Get the revenue, order and status series shaped for charts
// @Tags Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/analytics/charts [get]
func (ctrl *AnalyticsController) GetCharts(c *gin.Context) {
	data, err := ctrl.analytics.GetStats(c.Request.Context(), session(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Chart data retrieved",
		"data": gin.H{
			"revenue": services.RevenueSeries(data.DailyStats),
			"orders":  services.OrderSeries(data.DailyStats),
			"status":  services.StatusSlices(data.StatusBreakdown),
		},
	})
}
