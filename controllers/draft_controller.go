package controllers

import (
	"net/http"

	"gemstone-admin/models"
	"gemstone-admin/services"

	"github.com/gin-gonic/gin"
)

// DraftController exposes the product form state machine. Every operation is
// pure: the client posts the current draft plus one edit and receives the
// next draft together with its derived state.
type DraftController struct {
	products *services.ProductService
}

func NewDraftController(products *services.ProductService) *DraftController {
	return &DraftController{products: products}
}

type draftFieldRequest struct {
	Draft models.ProductDraft `json:"draft"`
	models.FieldUpdateRequest
}

type draftDimensionRequest struct {
	Draft models.ProductDraft `json:"draft"`
	models.DimensionUpdateRequest
}

type draftAvailabilityRequest struct {
	Draft     models.ProductDraft `json:"draft"`
	Available bool                `json:"available"`
}

type draftImageRequest struct {
	Draft models.ProductDraft `json:"draft"`
	URL   string              `json:"url" binding:"required"`
	Alt   string              `json:"alt"`
}

type draftImageIndexRequest struct {
	Draft models.ProductDraft `json:"draft"`
	Index int                 `json:"index"`
}

type draftImageAltRequest struct {
	Draft models.ProductDraft `json:"draft"`
	models.ImageAltRequest
}

type draftBenefitRequest struct {
	Draft models.ProductDraft `json:"draft"`
	Tag   string              `json:"tag" binding:"required"`
}

type draftValidateRequest struct {
	Draft models.ProductDraft `json:"draft"`
}

// draftView bundles a draft with everything the form derives from it.
func draftView(d models.ProductDraft) gin.H {
	return gin.H{
		"draft":              d,
		"errors":             d.Errors(),
		"isSubmittable":      d.IsSubmittable(),
		"discountPercentage": d.DiscountPercentage(),
		"dimensionsSummary":  d.DimensionsSummary(),
	}
}

func respondDraft(c *gin.Context, d models.ProductDraft) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": draftView(d)})
}

func bindDraftRequest(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid draft request",
			Error:   err.Error(),
		})
		return false
	}
	return true
}

// @Summary New product draft
// @Description Get a blank product draft plus the category catalog
// @Tags Product Drafts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/product-drafts/new [get]
func (ctrl *DraftController) NewDraft(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"draft":               models.NewProductDraft(),
			"primaryCategories":   models.PrimaryCategories,
			"secondaryCategories": models.SecondaryCategories,
		},
	})
}

// @Summary Draft from product
// @Description Hydrate an editable draft from an existing product
// @Tags Product Drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /admin/products/{id}/draft [get]
func (ctrl *DraftController) DraftFromProduct(c *gin.Context) {
	product, err := ctrl.products.Get(c.Request.Context(), session(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"draft":               models.DraftFromProduct(*product),
			"primaryCategories":   models.PrimaryCategories,
			"secondaryCategories": models.SecondaryCategories,
		},
	})
}

// @Summary Set a draft field
// @Description Merge one field edit into the draft
// @Tags Product Drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/product-drafts/field [post]
func (ctrl *DraftController) SetField(c *gin.Context) {
	var req draftFieldRequest
	if !bindDraftRequest(c, &req) {
		return
	}
	respondDraft(c, req.Draft.WithField(req.Field, req.Value))
}

// @Summary Set a draft dimension
// @Description Merge one axis of the dimensions sub-record into the draft
// @Tags Product Drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/product-drafts/dimension [post]
func (ctrl *DraftController) SetDimension(c *gin.Context) {
	var req draftDimensionRequest
	if !bindDraftRequest(c, &req) {
		return
	}
	respondDraft(c, req.Draft.WithDimension(req.Axis, req.Value))
}

// @Summary Toggle draft availability
// @Tags Product Drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/product-drafts/availability [post]
func (ctrl *DraftController) SetAvailability(c *gin.Context) {
	var req draftAvailabilityRequest
	if !bindDraftRequest(c, &req) {
		return
	}
	respondDraft(c, req.Draft.WithAvailability(req.Available))
}

// @Summary Add a draft image
// @Tags Product Drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/product-drafts/images [post]
func (ctrl *DraftController) AddImage(c *gin.Context) {
	var req draftImageRequest
	if !bindDraftRequest(c, &req) {
		return
	}
	respondDraft(c, req.Draft.AppendImage(models.ProductImage{URL: req.URL, Alt: req.Alt}))
}

// @Summary Remove a draft image
// @Tags Product Drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/product-drafts/images/remove [post]
func (ctrl *DraftController) RemoveImage(c *gin.Context) {
	var req draftImageIndexRequest
	if !bindDraftRequest(c, &req) {
		return
	}
	respondDraft(c, req.Draft.RemoveImageAt(req.Index))
}

// @Summary Set draft image alt text
// @Tags Product Drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/product-drafts/images/alt [post]
func (ctrl *DraftController) SetImageAlt(c *gin.Context) {
	var req draftImageAltRequest
	if !bindDraftRequest(c, &req) {
		return
	}
	respondDraft(c, req.Draft.WithImageAlt(req.Index, req.Alt))
}

// @Summary Add a draft benefit tag
// @Tags Product Drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/product-drafts/benefits [post]
func (ctrl *DraftController) AddBenefit(c *gin.Context) {
	var req draftBenefitRequest
	if !bindDraftRequest(c, &req) {
		return
	}
	respondDraft(c, req.Draft.AddBenefit(req.Tag))
}

// @Summary Remove a draft benefit tag
// @Tags Product Drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/product-drafts/benefits/remove [post]
func (ctrl *DraftController) RemoveBenefit(c *gin.Context) {
	var req draftBenefitRequest
	if !bindDraftRequest(c, &req) {
		return
	}
	respondDraft(c, req.Draft.RemoveBenefit(req.Tag))
}

// @Summary Validate a draft
// @Description Run the submit-time validation and preview the wire payload
// @Tags Product Drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /admin/product-drafts/validate [post]
func (ctrl *DraftController) Validate(c *gin.Context) {
	var req draftValidateRequest
	if !bindDraftRequest(c, &req) {
		return
	}

	submitted := req.Draft.MarkSubmitted()
	errs := submitted.Validate()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"errors":        errs,
			"isSubmittable": len(errs) == 0,
			"payload":       submitted.Payload(),
		},
	})
}
