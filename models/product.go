package models

import "time"

// ProductImage is one entry of a product's ordered media list.
type ProductImage struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Dimensions is the persisted physical-size sub-record. It is omitted from
// payloads unless at least one axis was set on the draft.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Product mirrors the upstream product resource.
type Product struct {
	ID                   string         `json:"_id"`
	Name                 string         `json:"name"`
	Description          string         `json:"description"`
	OriginalPrice        float64        `json:"originalPrice"`
	DiscountedPrice      *float64       `json:"discountedPrice,omitempty"`
	PrimaryCategory      string         `json:"primaryCategory"`
	PrimaryCategoryImage string         `json:"primaryCategoryImage"`
	SecondaryCategory    string         `json:"secondaryCategory,omitempty"`
	Stock                int            `json:"stock"`
	Weight               *float64       `json:"weight,omitempty"`
	WeightRatti          *float64       `json:"weightRatti,omitempty"`
	WeightCarat          *float64       `json:"weightCarat,omitempty"`
	SpecificGravity      *float64       `json:"specificGravity,omitempty"`
	Shape                string         `json:"shape,omitempty"`
	Colour               string         `json:"colour,omitempty"`
	Origin               string         `json:"origin,omitempty"`
	Certification        string         `json:"certification,omitempty"`
	PoojaEnergization    string         `json:"poojaEnergization,omitempty"`
	Treatment            string         `json:"treatment,omitempty"`
	TreatmentType        string         `json:"treatmentType,omitempty"`
	Composition          string         `json:"composition,omitempty"`
	ReturnPolicy         string         `json:"returnPolicy,omitempty"`
	DimensionType        string         `json:"dimensionType,omitempty"`
	Dimensions           *Dimensions    `json:"dimensions,omitempty"`
	IsAvailable          bool           `json:"isAvailable"`
	Images               []ProductImage `json:"images"`
	ProductBenefits      []string       `json:"productBenefits"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}

// ProductPayload is the wire shape transmitted wholesale on save. Optional
// numerics are pointers so unset fields disappear from the JSON body.
type ProductPayload struct {
	Name                 string         `json:"name"`
	Description          string         `json:"description,omitempty"`
	OriginalPrice        float64        `json:"originalPrice"`
	DiscountedPrice      *float64       `json:"discountedPrice,omitempty"`
	PrimaryCategory      string         `json:"primaryCategory"`
	PrimaryCategoryImage string         `json:"primaryCategoryImage,omitempty"`
	SecondaryCategory    string         `json:"secondaryCategory,omitempty"`
	Stock                int            `json:"stock"`
	Weight               *float64       `json:"weight,omitempty"`
	WeightRatti          *float64       `json:"weightRatti,omitempty"`
	WeightCarat          *float64       `json:"weightCarat,omitempty"`
	SpecificGravity      *float64       `json:"specificGravity,omitempty"`
	Shape                string         `json:"shape,omitempty"`
	Colour               string         `json:"colour,omitempty"`
	Origin               string         `json:"origin,omitempty"`
	Certification        string         `json:"certification,omitempty"`
	PoojaEnergization    string         `json:"poojaEnergization,omitempty"`
	Treatment            string         `json:"treatment,omitempty"`
	TreatmentType        string         `json:"treatmentType,omitempty"`
	Composition          string         `json:"composition,omitempty"`
	ReturnPolicy         string         `json:"returnPolicy,omitempty"`
	DimensionType        string         `json:"dimensionType,omitempty"`
	Dimensions           *Dimensions    `json:"dimensions,omitempty"`
	IsAvailable          bool           `json:"isAvailable"`
	Images               []ProductImage `json:"images"`
	ProductBenefits      []string       `json:"productBenefits"`
}
