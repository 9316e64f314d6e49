package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gemstone-admin/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewDraftController(nil)

	router := gin.New()
	router.GET("/draft/new", ctrl.NewDraft)
	router.POST("/draft/field", ctrl.SetField)
	router.POST("/draft/dimension", ctrl.SetDimension)
	router.POST("/draft/images", ctrl.AddImage)
	router.POST("/draft/images/remove", ctrl.RemoveImage)
	router.POST("/draft/validate", ctrl.Validate)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type draftResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Draft              models.ProductDraft `json:"draft"`
		Errors             map[string]string   `json:"errors"`
		IsSubmittable      bool                `json:"isSubmittable"`
		DiscountPercentage int                 `json:"discountPercentage"`
		DimensionsSummary  string              `json:"dimensionsSummary"`
	} `json:"data"`
}

func TestNewDraftEndpoint(t *testing.T) {
	router := draftRouter()

	req := httptest.NewRequest(http.MethodGet, "/draft/new", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Draft             models.ProductDraft `json:"draft"`
			PrimaryCategories []string            `json:"primaryCategories"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Draft.IsAvailable)
	assert.Len(t, resp.Data.PrimaryCategories, 29)
}

func TestSetFieldEndpoint(t *testing.T) {
	router := draftRouter()

	w := postJSON(t, router, "/draft/field", gin.H{
		"draft": models.NewProductDraft(),
		"field": "name",
		"value": "Ruby Ring",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp draftResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ruby Ring", resp.Data.Draft.Name)
	assert.Equal(t, "Stock is required", resp.Data.Errors["stock"], "an edit surfaces live validation")
	assert.False(t, resp.Data.IsSubmittable)
}

func TestSetDimensionEndpoint(t *testing.T) {
	router := draftRouter()

	w := postJSON(t, router, "/draft/dimension", gin.H{
		"draft": models.NewProductDraft(),
		"axis":  "length",
		"value": "10",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp draftResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "10", resp.Data.Draft.Dimensions.Length)
	assert.Equal(t, "10×0×0 mm", resp.Data.DimensionsSummary)
}

func TestSetDimensionRejectsUnknownAxis(t *testing.T) {
	router := draftRouter()

	w := postJSON(t, router, "/draft/dimension", gin.H{
		"draft": models.NewProductDraft(),
		"axis":  "depth",
		"value": "10",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImageEndpoints(t *testing.T) {
	router := draftRouter()

	draft := models.NewProductDraft().
		AppendImage(models.ProductImage{URL: "a.jpg"}).
		AppendImage(models.ProductImage{URL: "b.jpg"})

	w := postJSON(t, router, "/draft/images/remove", gin.H{"draft": draft, "index": 0})
	require.Equal(t, http.StatusOK, w.Code)

	var resp draftResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Draft.Images, 1)
	assert.Equal(t, "b.jpg", resp.Data.Draft.Images[0].URL)

	w = postJSON(t, router, "/draft/images", gin.H{"draft": draft, "url": "c.jpg", "alt": "A gem"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Draft.Images, 3)
}

func TestValidateEndpoint(t *testing.T) {
	router := draftRouter()

	w := postJSON(t, router, "/draft/validate", gin.H{"draft": models.NewProductDraft()})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Errors        map[string]string `json:"errors"`
			IsSubmittable bool              `json:"isSubmittable"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.IsSubmittable)
	assert.Equal(t, "Product name is required", resp.Data.Errors["name"])

	valid := models.NewProductDraft().
		WithField("name", "Ruby Ring").
		WithField("stock", "5").
		WithField("originalPrice", "100").
		WithField("primaryCategory", "ruby")

	w = postJSON(t, router, "/draft/validate", gin.H{"draft": valid})
	require.Equal(t, http.StatusOK, w.Code)
	resp.Data.Errors = nil // json.Unmarshal merges into a non-nil map; start fresh
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.IsSubmittable)
	assert.Empty(t, resp.Data.Errors)
}
