package models

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// FormState tracks how far a product form has progressed. Validation messages
// are only surfaced once the draft leaves the pristine state.
type FormState int

const (
	FormPristine FormState = iota
	FormDirty
	FormSubmitted
)

// DimensionInput holds the raw length/width/height inputs of a draft.
type DimensionInput struct {
	Length string `json:"length"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

func (d DimensionInput) any() bool {
	return d.Length != "" || d.Width != "" || d.Height != ""
}

// ProductDraft is the in-memory, unsaved representation of a product being
// created or edited. All numeric fields are kept as the raw string the form
// received; parsing happens in Validate and Payload.
type ProductDraft struct {
	Name                 string         `json:"name"`
	Description          string         `json:"description"`
	OriginalPrice        string         `json:"originalPrice"`
	DiscountedPrice      string         `json:"discountedPrice"`
	PrimaryCategory      string         `json:"primaryCategory"`
	PrimaryCategoryImage string         `json:"primaryCategoryImage"`
	SecondaryCategory    string         `json:"secondaryCategory"`
	Stock                string         `json:"stock"`
	Weight               string         `json:"weight"`
	WeightRatti          string         `json:"weightRatti"`
	WeightCarat          string         `json:"weightCarat"`
	SpecificGravity      string         `json:"specificGravity"`
	Shape                string         `json:"shape"`
	Colour               string         `json:"colour"`
	Origin               string         `json:"origin"`
	Certification        string         `json:"certification"`
	PoojaEnergization    string         `json:"poojaEnergization"`
	Treatment            string         `json:"treatment"`
	TreatmentType        string         `json:"treatmentType"`
	Composition          string         `json:"composition"`
	ReturnPolicy         string         `json:"returnPolicy"`
	DimensionType        string         `json:"dimensionType"`
	Dimensions           DimensionInput `json:"dimensions"`
	IsAvailable          bool           `json:"isAvailable"`
	ProductBenefits      []string       `json:"productBenefits"`
	Images               []ProductImage `json:"images"`

	State FormState `json:"-"`
}

// NewProductDraft returns an empty draft in the pristine state.
func NewProductDraft() ProductDraft {
	return ProductDraft{
		IsAvailable:     true,
		ProductBenefits: []string{},
		Images:          []ProductImage{},
	}
}

// DraftFromProduct hydrates a draft from a fetched product for the edit flow.
func DraftFromProduct(p Product) ProductDraft {
	d := ProductDraft{
		Name:                 p.Name,
		Description:          p.Description,
		OriginalPrice:        floatInput(p.OriginalPrice),
		DiscountedPrice:      optFloatInput(p.DiscountedPrice),
		PrimaryCategory:      p.PrimaryCategory,
		PrimaryCategoryImage: p.PrimaryCategoryImage,
		SecondaryCategory:    p.SecondaryCategory,
		Stock:                cast.ToString(p.Stock),
		Weight:               optFloatInput(p.Weight),
		WeightRatti:          optFloatInput(p.WeightRatti),
		WeightCarat:          optFloatInput(p.WeightCarat),
		SpecificGravity:      optFloatInput(p.SpecificGravity),
		Shape:                p.Shape,
		Colour:               p.Colour,
		Origin:               p.Origin,
		Certification:        p.Certification,
		PoojaEnergization:    p.PoojaEnergization,
		Treatment:            p.Treatment,
		TreatmentType:        p.TreatmentType,
		Composition:          p.Composition,
		ReturnPolicy:         p.ReturnPolicy,
		DimensionType:        p.DimensionType,
		IsAvailable:          p.IsAvailable,
		ProductBenefits:      append([]string{}, p.ProductBenefits...),
		Images:               append([]ProductImage{}, p.Images...),
	}
	if p.Dimensions != nil {
		d.Dimensions = DimensionInput{
			Length: floatInput(p.Dimensions.Length),
			Width:  floatInput(p.Dimensions.Width),
			Height: floatInput(p.Dimensions.Height),
		}
	}
	return d
}

func floatInput(v float64) string {
	if v == 0 {
		return ""
	}
	return cast.ToString(v)
}

func optFloatInput(v *float64) string {
	if v == nil {
		return ""
	}
	return cast.ToString(*v)
}

// WithField returns a copy of the draft with a single field merged in and the
// form marked dirty. Selecting a primary category also resolves its
// representative image from the catalog. Unknown field names leave the draft
// unchanged apart from the dirty mark.
func (d ProductDraft) WithField(field, value string) ProductDraft {
	switch field {
	case "name":
		d.Name = value
	case "description":
		d.Description = value
	case "originalPrice":
		d.OriginalPrice = value
	case "discountedPrice":
		d.DiscountedPrice = value
	case "primaryCategory":
		d.PrimaryCategory = value
		d.PrimaryCategoryImage = CategoryImage(value)
	case "secondaryCategory":
		d.SecondaryCategory = value
	case "stock":
		d.Stock = value
	case "weight":
		d.Weight = value
	case "weightRatti":
		d.WeightRatti = value
	case "weightCarat":
		d.WeightCarat = value
	case "specificGravity":
		d.SpecificGravity = value
	case "shape":
		d.Shape = value
	case "colour":
		d.Colour = value
	case "origin":
		d.Origin = value
	case "certification":
		d.Certification = value
	case "poojaEnergization":
		d.PoojaEnergization = value
	case "treatment":
		d.Treatment = value
	case "treatmentType":
		d.TreatmentType = value
	case "composition":
		d.Composition = value
	case "returnPolicy":
		d.ReturnPolicy = value
	case "dimensionType":
		d.DimensionType = value
	}
	d.State = markDirty(d.State)
	return d
}

// WithDimension merges one axis of the dimensions sub-record. The value is
// parsed as a float; inputs that do not parse clear the axis. The other two
// axes are preserved.
func (d ProductDraft) WithDimension(axis, value string) ProductDraft {
	normalized := ""
	if strings.TrimSpace(value) != "" {
		if _, err := cast.ToFloat64E(strings.TrimSpace(value)); err == nil {
			normalized = strings.TrimSpace(value)
		}
	}
	switch axis {
	case "length":
		d.Dimensions.Length = normalized
	case "width":
		d.Dimensions.Width = normalized
	case "height":
		d.Dimensions.Height = normalized
	}
	d.State = markDirty(d.State)
	return d
}

// WithAvailability flips the availability flag.
func (d ProductDraft) WithAvailability(available bool) ProductDraft {
	d.IsAvailable = available
	d.State = markDirty(d.State)
	return d
}

func markDirty(s FormState) FormState {
	if s == FormPristine {
		return FormDirty
	}
	return s
}

// MarkSubmitted moves the form into the submitted state.
func (d ProductDraft) MarkSubmitted() ProductDraft {
	d.State = FormSubmitted
	return d
}

// AppendImage adds a media item to the end of the image list. Duplicate URLs
// are allowed; all appends succeed.
func (d ProductDraft) AppendImage(img ProductImage) ProductDraft {
	d.Images = append(append([]ProductImage{}, d.Images...), img)
	d.State = markDirty(d.State)
	return d
}

// RemoveImageAt drops the image at the given index. An out-of-bounds index is
// a no-op, not an error.
func (d ProductDraft) RemoveImageAt(index int) ProductDraft {
	if index < 0 || index >= len(d.Images) {
		return d
	}
	images := make([]ProductImage, 0, len(d.Images)-1)
	images = append(images, d.Images[:index]...)
	images = append(images, d.Images[index+1:]...)
	d.Images = images
	d.State = markDirty(d.State)
	return d
}

// WithImageAlt replaces the alt text of one entry. Blank text falls back to a
// generated placeholder. Out-of-bounds indexes are a no-op.
func (d ProductDraft) WithImageAlt(index int, alt string) ProductDraft {
	if index < 0 || index >= len(d.Images) {
		return d
	}
	if strings.TrimSpace(alt) == "" {
		alt = fmt.Sprintf("Product image %d", index+1)
	}
	images := append([]ProductImage{}, d.Images...)
	images[index].Alt = alt
	d.Images = images
	d.State = markDirty(d.State)
	return d
}

// AddBenefit appends a benefit tag, ignoring duplicates.
func (d ProductDraft) AddBenefit(tag string) ProductDraft {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return d
	}
	for _, existing := range d.ProductBenefits {
		if existing == tag {
			return d
		}
	}
	d.ProductBenefits = append(append([]string{}, d.ProductBenefits...), tag)
	d.State = markDirty(d.State)
	return d
}

// RemoveBenefit drops a benefit tag if present.
func (d ProductDraft) RemoveBenefit(tag string) ProductDraft {
	benefits := make([]string, 0, len(d.ProductBenefits))
	for _, existing := range d.ProductBenefits {
		if existing != tag {
			benefits = append(benefits, existing)
		}
	}
	d.ProductBenefits = benefits
	d.State = markDirty(d.State)
	return d
}

// Validate computes the field-name-to-error-message mapping for the draft.
// All rules are evaluated; nothing short-circuits.
func (d ProductDraft) Validate() map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Product name is required"
	}

	if strings.TrimSpace(d.Stock) == "" {
		errs["stock"] = "Stock is required"
	} else if n, err := cast.ToFloat64E(strings.TrimSpace(d.Stock)); err != nil || n < 0 {
		errs["stock"] = "Stock must be a valid non-negative number"
	}

	if strings.TrimSpace(d.OriginalPrice) == "" {
		errs["originalPrice"] = "Original price is required"
	} else if n, err := cast.ToFloat64E(strings.TrimSpace(d.OriginalPrice)); err != nil || n <= 0 {
		errs["originalPrice"] = "Original price must be a valid positive number"
	}

	if strings.TrimSpace(d.PrimaryCategory) == "" {
		errs["primaryCategory"] = "Primary category is required"
	}

	if d.DiscountedPrice != "" {
		discounted, err := cast.ToFloat64E(strings.TrimSpace(d.DiscountedPrice))
		original, origErr := cast.ToFloat64E(strings.TrimSpace(d.OriginalPrice))
		switch {
		case err != nil || discounted < 0:
			errs["discountedPrice"] = "Discounted price must be a valid non-negative number"
		case origErr == nil && original > 0 && discounted >= original:
			errs["discountedPrice"] = "Discounted price must be less than original price"
		}
	}

	optionalWeights := []struct {
		field string
		value string
		label string
	}{
		{"weight", d.Weight, "Weight"},
		{"weightRatti", d.WeightRatti, "Weight ratti"},
		{"weightCarat", d.WeightCarat, "Weight carat"},
		{"specificGravity", d.SpecificGravity, "Specific gravity"},
	}
	for _, w := range optionalWeights {
		if w.value == "" {
			continue
		}
		if n, err := cast.ToFloat64E(strings.TrimSpace(w.value)); err != nil || n < 0 {
			errs[w.field] = w.label + " must be a valid non-negative number"
		}
	}

	if d.SpecificGravity != "" {
		if n, err := cast.ToFloat64E(strings.TrimSpace(d.SpecificGravity)); err == nil && n <= 0 {
			errs["specificGravity"] = "Specific gravity must be a positive number"
		}
	}

	return errs
}

// Errors returns the validation mapping, but only once the form has received
// at least one edit. A pristine form never shows errors.
func (d ProductDraft) Errors() map[string]string {
	if d.State == FormPristine {
		return map[string]string{}
	}
	return d.Validate()
}

// IsSubmittable reports whether a save should be allowed.
func (d ProductDraft) IsSubmittable() bool {
	return len(d.Validate()) == 0
}

// DiscountPercentage derives the rounded discount when a positive discounted
// price is set, otherwise 0.
func (d ProductDraft) DiscountPercentage() int {
	original, err := cast.ToFloat64E(strings.TrimSpace(d.OriginalPrice))
	if err != nil || original <= 0 {
		return 0
	}
	discounted, err := cast.ToFloat64E(strings.TrimSpace(d.DiscountedPrice))
	if err != nil || discounted <= 0 {
		return 0
	}
	return int(math.Round(100 * (original - discounted) / original))
}

// DimensionsSummary renders "L×W×H mm" with 0 standing in for unset axes.
// It is empty unless at least one axis is set.
func (d ProductDraft) DimensionsSummary() string {
	if !d.Dimensions.any() {
		return ""
	}
	return fmt.Sprintf("%g×%g×%g mm",
		cast.ToFloat64(d.Dimensions.Length),
		cast.ToFloat64(d.Dimensions.Width),
		cast.ToFloat64(d.Dimensions.Height))
}

// Payload converts the draft into the persisted product shape. Numeric inputs
// are parsed, unset optionals are omitted entirely and the dimensions
// sub-record is only present when at least one axis is set.
func (d ProductDraft) Payload() ProductPayload {
	p := ProductPayload{
		Name:                 strings.TrimSpace(d.Name),
		Description:          d.Description,
		OriginalPrice:        cast.ToFloat64(strings.TrimSpace(d.OriginalPrice)),
		PrimaryCategory:      d.PrimaryCategory,
		PrimaryCategoryImage: d.PrimaryCategoryImage,
		SecondaryCategory:    d.SecondaryCategory,
		Stock:                cast.ToInt(strings.TrimSpace(d.Stock)),
		Shape:                d.Shape,
		Colour:               d.Colour,
		Origin:               d.Origin,
		Certification:        d.Certification,
		PoojaEnergization:    d.PoojaEnergization,
		Treatment:            d.Treatment,
		TreatmentType:        d.TreatmentType,
		Composition:          d.Composition,
		ReturnPolicy:         d.ReturnPolicy,
		DimensionType:        d.DimensionType,
		IsAvailable:          d.IsAvailable,
		Images:               append([]ProductImage{}, d.Images...),
		ProductBenefits:      dedupe(d.ProductBenefits),
	}

	p.DiscountedPrice = optFloat(d.DiscountedPrice)
	p.Weight = optFloat(d.Weight)
	p.WeightRatti = optFloat(d.WeightRatti)
	p.WeightCarat = optFloat(d.WeightCarat)
	p.SpecificGravity = optFloat(d.SpecificGravity)

	if d.Dimensions.any() {
		p.Dimensions = &Dimensions{
			Length: cast.ToFloat64(d.Dimensions.Length),
			Width:  cast.ToFloat64(d.Dimensions.Width),
			Height: cast.ToFloat64(d.Dimensions.Height),
		}
	}

	return p
}

func optFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := cast.ToFloat64E(s)
	if err != nil || math.IsNaN(n) {
		return nil
	}
	return &n
}

func dedupe(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := []string{}
	for _, t := range tags {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
