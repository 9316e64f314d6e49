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

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// @Summary Get products
// @Description Get the filtered, paginated product list
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search by name, category or description"
// @Param status query string false "Filter by availability" Enums(all, available, unavailable)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginatedResponse
// @Router /admin/products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	products, err := ctrl.products.List(c.Request.Context(), session(c))
	if err != nil {
		respondError(c, err)
		return
	}

	filtered := services.FilterProducts(products, c.Query("search"), c.DefaultQuery("status", "all"))

	page, limit := pageQuery(c)
	items, meta := utils.Paginate(filtered, page, limit)

	c.JSON(http.StatusOK, models.PaginatedResponse{
		Success: true,
		Message: "Products retrieved",
		Data:    items,
		Meta:    meta,
		Pages:   utils.PageNumbers(meta.Page, meta.TotalPages),
	})
}

// @Summary Get one product
// @Description Get a single product by id
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [get]
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	product, err := ctrl.products.Get(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product retrieved", "data": product})
}

// @Summary Create product
// @Description Validate a product draft and create the product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ProductDraft true "Product draft"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var draft models.ProductDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid product payload",
			Error:   err.Error(),
		})
		return
	}

	product, fieldErrs, err := ctrl.products.Create(c.Request.Context(), session(c), draft)
	if err != nil {
		if len(fieldErrs) > 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "Product has validation errors",
				Errors:  fieldErrs,
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Product created", "data": product})
}

// @Summary Update product
// @Description Validate a product draft and update an existing product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body models.ProductDraft true "Product draft"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products/{id} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	var draft models.ProductDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid product payload",
			Error:   err.Error(),
		})
		return
	}

	product, fieldErrs, err := ctrl.products.Update(c.Request.Context(), session(c), c.Param("id"), draft)
	if err != nil {
		if len(fieldErrs) > 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "Product has validation errors",
				Errors:  fieldErrs,
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product updated", "data": product})
}

// @Summary Delete product
// @Description Delete a product by id
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	if err := ctrl.products.Delete(c.Request.Context(), session(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted"})
}

// @Summary Export products
// @Description Download the filtered product list as CSV
// @Tags Products
// @Produce text/csv
// @Security BearerAuth
// @Param search query string false "Search by name, category or description"
// @Param status query string false "Filter by availability"
// @Success 200 {string} string "CSV payload"
// @Router /admin/products/export [get]
func (ctrl *ProductController) ExportProducts(c *gin.Context) {
	products, err := ctrl.products.List(c.Request.Context(), session(c))
	if err != nil {
		respondError(c, err)
		return
	}

	filtered := services.FilterProducts(products, c.Query("search"), c.DefaultQuery("status", "all"))
	csv, err := ctrl.products.ExportCSV(filtered)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("products_export_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}
