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

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// @Summary Get orders
// @Description Get the filtered, paginated order list
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search by customer, order id or email"
// @Param status query string false "Filter by status" Enums(all, pending, processing, shipped, delivered, cancelled)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	orders, err := ctrl.orders.List(c.Request.Context(), session(c), 0)
	if err != nil {
		respondError(c, err)
		return
	}

	filtered := services.FilterOrders(orders, c.Query("search"), c.DefaultQuery("status", "all"))

	page, limit := pageQuery(c)
	items, meta := utils.Paginate(filtered, page, limit)

	c.JSON(http.StatusOK, models.PaginatedResponse{
		Success: true,
		Message: "Orders retrieved",
		Data:    items,
		Meta:    meta,
		Pages:   utils.PageNumbers(meta.Page, meta.TotalPages),
	})
}

// @Summary Get one order
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [get]
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	order, err := ctrl.orders.Get(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order retrieved", "data": order})
}

// @Summary Update order status
// @Description Move an order to a new fulfilment status
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body models.UpdateStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/orders/{id}/status [put]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Status is required",
			Error:   err.Error(),
		})
		return
	}

	err := ctrl.orders.UpdateStatus(c.Request.Context(), session(c), c.Param("id"), c.Query("current"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated"})
}

// @Summary Export orders
// @Description Download the filtered order list as CSV
// @Tags Orders
// @Produce text/csv
// @Security BearerAuth
// @Param search query string false "Search by customer, order id or email"
// @Param status query string false "Filter by status"
// @Success 200 {string} string "CSV payload"
// @Router /admin/orders/export [get]
func (ctrl *OrderController) ExportOrders(c *gin.Context) {
	orders, err := ctrl.orders.List(c.Request.Context(), session(c), 0)
	if err != nil {
		respondError(c, err)
		return
	}

	filtered := services.FilterOrders(orders, c.Query("search"), c.DefaultQuery("status", "all"))
	csv, err := ctrl.orders.ExportCSV(filtered)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("orders_export_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}

// @Summary Order status catalog
// @Description List the statuses an order can hold
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/orders/statuses [get]
func (ctrl *OrderController) GetStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": models.OrderStatuses})
}
