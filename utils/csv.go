package utils

import (
	"gemstone-admin/models"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cast"
)

// Export rows per entity. Column names and order match the dashboard's
// download buttons; gocsv handles RFC 4180 quoting so free text with commas
// round-trips through any standard CSV reader.

type orderCSVRow struct {
	ID       string `csv:"Order ID"`
	Customer string `csv:"Customer"`
	Email    string `csv:"Email"`
	Date     string `csv:"Date"`
	Total    string `csv:"Total"`
	Status   string `csv:"Status"`
}

type consultationCSVRow struct {
	ID          string `csv:"ID"`
	Name        string `csv:"Name"`
	Email       string `csv:"Email"`
	Phone       string `csv:"Phone"`
	BirthPlace  string `csv:"Birth Place"`
	Purpose     string `csv:"Purpose"`
	Gender      string `csv:"Gender"`
	DateOfBirth string `csv:"Date of Birth"`
	TimeOfBirth string `csv:"Time of Birth"`
	Status      string `csv:"Status"`
	SubmittedAt string `csv:"Submitted At"`
}

type productCSVRow struct {
	ID              string `csv:"ID"`
	Name            string `csv:"Name"`
	Description     string `csv:"Description"`
	OriginalPrice   string `csv:"Original Price"`
	DiscountedPrice string `csv:"Discounted Price"`
	Category        string `csv:"Category"`
	Stock           string `csv:"Stock"`
	Status          string `csv:"Status"`
	Origin          string `csv:"Origin"`
	Shape           string `csv:"Shape"`
	Weight          string `csv:"Weight"`
	Colour          string `csv:"Colour"`
}

func OrdersCSV(orders []models.Order) (string, error) {
	rows := make([]orderCSVRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, orderCSVRow{
			ID:       o.ID,
			Customer: o.Customer,
			Email:    o.Email,
			Date:     o.Date,
			Total:    cast.ToString(o.Total),
			Status:   o.Status,
		})
	}
	return gocsv.MarshalString(&rows)
}

func ConsultationsCSV(consultations []models.Consultation) (string, error) {
	rows := make([]consultationCSVRow, 0, len(consultations))
	for _, c := range consultations {
		rows = append(rows, consultationCSVRow{
			ID:          c.ID,
			Name:        c.Name,
			Email:       c.Email,
			Phone:       c.Phone,
			BirthPlace:  c.BirthPlace,
			Purpose:     c.Service,
			Gender:      c.Gender,
			DateOfBirth: c.DateOfBirth,
			TimeOfBirth: c.TimeOfBirth,
			Status:      c.Status,
			SubmittedAt: c.SubmittedAt,
		})
	}
	return gocsv.MarshalString(&rows)
}

func ProductsCSV(products []models.Product) (string, error) {
	rows := make([]productCSVRow, 0, len(products))
	for _, p := range products {
		status := "unavailable"
		if p.IsAvailable {
			status = "available"
		}
		discounted := ""
		if p.DiscountedPrice != nil {
			discounted = cast.ToString(*p.DiscountedPrice)
		}
		weight := ""
		if p.Weight != nil {
			weight = cast.ToString(*p.Weight)
		}
		rows = append(rows, productCSVRow{
			ID:              p.ID,
			Name:            p.Name,
			Description:     p.Description,
			OriginalPrice:   cast.ToString(p.OriginalPrice),
			DiscountedPrice: discounted,
			Category:        p.PrimaryCategory,
			Stock:           cast.ToString(p.Stock),
			Status:          status,
			Origin:          p.Origin,
			Shape:           p.Shape,
			Weight:          weight,
			Colour:          p.Colour,
		})
	}
	return gocsv.MarshalString(&rows)
}
