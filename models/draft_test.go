package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() ProductDraft {
	return NewProductDraft().
		WithField("name", "Ruby Ring").
		WithField("stock", "5").
		WithField("originalPrice", "100").
		WithField("primaryCategory", "ruby")
}

func TestNewProductDraftIsPristine(t *testing.T) {
	d := NewProductDraft()

	assert.Equal(t, FormPristine, d.State)
	assert.True(t, d.IsAvailable)
	assert.Empty(t, d.Errors(), "a pristine form never shows errors")
	assert.NotEmpty(t, d.Validate(), "required-field rules still apply underneath")
}

func TestWithFieldMarksDirty(t *testing.T) {
	d := NewProductDraft().WithField("name", "Ruby Ring")

	assert.Equal(t, FormDirty, d.State)
	assert.Equal(t, "Ruby Ring", d.Name)

	errs := d.Errors()
	assert.NotContains(t, errs, "name")
	assert.Equal(t, "Stock is required", errs["stock"])
}

func TestWithFieldUnknownFieldKeepsValues(t *testing.T) {
	d := validDraft().WithField("nonsense", "x")

	assert.Equal(t, "Ruby Ring", d.Name)
	assert.True(t, d.IsSubmittable())
}

func TestValidDraftIsSubmittable(t *testing.T) {
	d := validDraft()

	require.Empty(t, d.Validate())
	assert.True(t, d.IsSubmittable())
}

func TestValidateRequiredFields(t *testing.T) {
	errs := NewProductDraft().MarkSubmitted().Validate()

	assert.Equal(t, "Product name is required", errs["name"])
	assert.Equal(t, "Stock is required", errs["stock"])
	assert.Equal(t, "Original price is required", errs["originalPrice"])
	assert.Equal(t, "Primary category is required", errs["primaryCategory"])
}

func TestValidateNumericRules(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		errKey  string
		message string
	}{
		{"negative stock", "stock", "-1", "stock", "Stock must be a valid non-negative number"},
		{"non-numeric stock", "stock", "many", "stock", "Stock must be a valid non-negative number"},
		{"zero price", "originalPrice", "0", "originalPrice", "Original price must be a valid positive number"},
		{"negative discount", "discountedPrice", "-5", "discountedPrice", "Discounted price must be a valid non-negative number"},
		{"negative weight", "weight", "-2", "weight", "Weight must be a valid non-negative number"},
		{"bad ratti", "weightRatti", "x", "weightRatti", "Weight ratti must be a valid non-negative number"},
		{"bad carat", "weightCarat", "x", "weightCarat", "Weight carat must be a valid non-negative number"},
		{"zero gravity", "specificGravity", "0", "specificGravity", "Specific gravity must be a positive number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validDraft().WithField(tt.field, tt.value).Validate()
			assert.Equal(t, tt.message, errs[tt.errKey])
		})
	}
}

func TestValidateDiscountAgainstOriginal(t *testing.T) {
	d := validDraft().WithField("discountedPrice", "150")
	errs := d.Validate()
	assert.Equal(t, "Discounted price must be less than original price", errs["discountedPrice"])

	d = validDraft().WithField("discountedPrice", "100")
	errs = d.Validate()
	assert.Equal(t, "Discounted price must be less than original price", errs["discountedPrice"])

	d = validDraft().WithField("discountedPrice", "80")
	assert.Empty(t, d.Validate())
}

func TestPrimaryCategoryResolvesImage(t *testing.T) {
	d := NewProductDraft().WithField("primaryCategory", "blue-sapphire")
	assert.Equal(t, CategoryImage("blue-sapphire"), d.PrimaryCategoryImage)
	assert.NotEmpty(t, d.PrimaryCategoryImage)

	d = d.WithField("primaryCategory", "not-a-stone")
	assert.Empty(t, d.PrimaryCategoryImage)
}

func TestDiscountPercentage(t *testing.T) {
	d := validDraft().WithField("discountedPrice", "80")
	assert.Equal(t, 20, d.DiscountPercentage())

	assert.Equal(t, 0, validDraft().DiscountPercentage())

	d = validDraft().
		WithField("originalPrice", "90").
		WithField("discountedPrice", "60")
	assert.Equal(t, 33, d.DiscountPercentage())
}

func TestWithDimension(t *testing.T) {
	d := NewProductDraft().
		WithDimension("length", "10").
		WithDimension("width", "5.5")

	assert.Equal(t, "10", d.Dimensions.Length)
	assert.Equal(t, "5.5", d.Dimensions.Width)
	assert.Equal(t, "10×5.5×0 mm", d.DimensionsSummary())

	// Unparseable input clears the axis, preserving the others.
	d = d.WithDimension("length", "abc")
	assert.Empty(t, d.Dimensions.Length)
	assert.Equal(t, "5.5", d.Dimensions.Width)
}

func TestDimensionsSummaryEmptyWhenUnset(t *testing.T) {
	assert.Empty(t, NewProductDraft().DimensionsSummary())
}

func TestImageOperations(t *testing.T) {
	d := NewProductDraft().
		AppendImage(ProductImage{URL: "a.jpg"}).
		AppendImage(ProductImage{URL: "b.jpg"}).
		AppendImage(ProductImage{URL: "c.jpg"})

	d = d.RemoveImageAt(1)
	require.Len(t, d.Images, 2)
	assert.Equal(t, "a.jpg", d.Images[0].URL)
	assert.Equal(t, "c.jpg", d.Images[1].URL)

	// Out-of-bounds removals are no-ops.
	assert.Len(t, d.RemoveImageAt(7).Images, 2)
	assert.Len(t, d.RemoveImageAt(-1).Images, 2)

	// Duplicate URLs are allowed.
	d = d.AppendImage(ProductImage{URL: "a.jpg"})
	assert.Len(t, d.Images, 3)
}

func TestWithImageAlt(t *testing.T) {
	d := NewProductDraft().AppendImage(ProductImage{URL: "a.jpg", Alt: "old"})

	d = d.WithImageAlt(0, "A ruby")
	assert.Equal(t, "A ruby", d.Images[0].Alt)

	d = d.WithImageAlt(0, "   ")
	assert.Equal(t, "Product image 1", d.Images[0].Alt)

	same := d.WithImageAlt(5, "ignored")
	assert.Equal(t, d.Images, same.Images)
}

func TestBenefitTags(t *testing.T) {
	d := NewProductDraft().
		AddBenefit("clarity").
		AddBenefit("clarity").
		AddBenefit("  focus  ").
		AddBenefit("")

	assert.Equal(t, []string{"clarity", "focus"}, d.ProductBenefits)

	d = d.RemoveBenefit("clarity")
	assert.Equal(t, []string{"focus"}, d.ProductBenefits)
}

func TestPayloadOmitsUnsetOptionals(t *testing.T) {
	p := validDraft().Payload()

	assert.Equal(t, "Ruby Ring", p.Name)
	assert.Equal(t, 5, p.Stock)
	assert.Equal(t, 100.0, p.OriginalPrice)
	assert.Nil(t, p.DiscountedPrice)
	assert.Nil(t, p.Weight)
	assert.Nil(t, p.SpecificGravity)
	assert.Nil(t, p.Dimensions)
}

func TestPayloadParsesSetValues(t *testing.T) {
	d := validDraft().
		WithField("discountedPrice", "80").
		WithField("weight", "2.5").
		WithDimension("length", "10").
		AddBenefit("clarity").
		AddBenefit("clarity")

	p := d.Payload()

	require.NotNil(t, p.DiscountedPrice)
	assert.Equal(t, 80.0, *p.DiscountedPrice)
	require.NotNil(t, p.Weight)
	assert.Equal(t, 2.5, *p.Weight)
	require.NotNil(t, p.Dimensions)
	assert.Equal(t, 10.0, p.Dimensions.Length)
	assert.Equal(t, 0.0, p.Dimensions.Width)
	assert.Equal(t, []string{"clarity"}, p.ProductBenefits)
}

func TestDraftFromProduct(t *testing.T) {
	weight := 2.5
	discounted := 80.0
	product := Product{
		Name:            "Ruby Ring",
		OriginalPrice:   100,
		DiscountedPrice: &discounted,
		PrimaryCategory: "ruby",
		Stock:           5,
		Weight:          &weight,
		IsAvailable:     true,
		Dimensions:      &Dimensions{Length: 10, Width: 5, Height: 2},
	}

	d := DraftFromProduct(product)

	assert.Equal(t, FormPristine, d.State)
	assert.Equal(t, "100", d.OriginalPrice)
	assert.Equal(t, "80", d.DiscountedPrice)
	assert.Equal(t, "5", d.Stock)
	assert.Equal(t, "2.5", d.Weight)
	assert.Equal(t, "10", d.Dimensions.Length)
	assert.Empty(t, d.Errors())
	assert.True(t, d.IsSubmittable())
}
