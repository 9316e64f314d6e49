package services

import (
	"testing"

	"gemstone-admin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrders() []models.Order {
	return []models.Order{
		{ID: "ORD-1", Customer: "Sarah Chen", Email: "sarah@example.com", Status: "pending"},
		{ID: "ORD-2", Customer: "Priya Sharma", Email: "priya@example.com", Status: "shipped"},
		{ID: "ORD-3", Customer: "Dev Patel", Email: "dev@example.com", Status: "pending"},
	}
}

func TestFilterOrdersBySearch(t *testing.T) {
	filtered := FilterOrders(sampleOrders(), "sarah", "all")

	require.Len(t, filtered, 1)
	assert.Equal(t, "ORD-1", filtered[0].ID)

	// The order id and email are searchable too.
	assert.Len(t, FilterOrders(sampleOrders(), "ord-2", "all"), 1)
	assert.Len(t, FilterOrders(sampleOrders(), "dev@example.com", "all"), 1)
}

func TestFilterOrdersByStatus(t *testing.T) {
	assert.Len(t, FilterOrders(sampleOrders(), "", "pending"), 2)
	assert.Len(t, FilterOrders(sampleOrders(), "", "all"), 3)
	assert.Empty(t, FilterOrders(sampleOrders(), "", "delivered"))
}

func TestFilterOrdersCombined(t *testing.T) {
	filtered := FilterOrders(sampleOrders(), "example.com", "shipped")

	require.Len(t, filtered, 1)
	assert.Equal(t, "Priya Sharma", filtered[0].Customer)
}

func TestFilterProducts(t *testing.T) {
	products := []models.Product{
		{Name: "Ruby Ring", PrimaryCategory: "ruby", Description: "Deep red", IsAvailable: true},
		{Name: "Loose Opal", PrimaryCategory: "opal", Description: "Fire play", IsAvailable: false},
	}

	assert.Len(t, FilterProducts(products, "ruby", "all"), 1)
	assert.Len(t, FilterProducts(products, "fire", "all"), 1, "description is searchable")
	assert.Len(t, FilterProducts(products, "", "available"), 1)
	assert.Len(t, FilterProducts(products, "", "unavailable"), 1)
	assert.Empty(t, FilterProducts(products, "ruby", "unavailable"))
}

func TestFilterConsultations(t *testing.T) {
	consultations := []models.Consultation{
		{Name: "Priya", Company: "Jaipur", Service: "Gemstone recommendation", Email: "priya@example.com", Status: "pending"},
		{Name: "Dev", Company: "Mumbai", Service: "Astrology reading", Email: "dev@example.com", Status: "scheduled"},
	}

	assert.Len(t, FilterConsultations(consultations, "jaipur", "all"), 1)
	assert.Len(t, FilterConsultations(consultations, "astrology", "all"), 1)
	assert.Len(t, FilterConsultations(consultations, "", "scheduled"), 1)
	assert.Empty(t, FilterConsultations(consultations, "priya", "scheduled"))
}

func TestGrowthRate(t *testing.T) {
	stats := []models.DailyStat{
		{Date: "2024-01-01", Revenue: 100},
		{Date: "2024-01-03", Revenue: 150},
		{Date: "2024-01-02", Revenue: 90},
	}

	// Sorted by date: first 100, last 150.
	assert.Equal(t, 50.0, GrowthRate(stats))
}

func TestGrowthRateRounding(t *testing.T) {
	stats := []models.DailyStat{
		{Date: "2024-01-01", Revenue: 300},
		{Date: "2024-01-02", Revenue: 400},
	}

	assert.Equal(t, 33.3, GrowthRate(stats))
}

func TestGrowthRateDegenerateInputs(t *testing.T) {
	assert.Equal(t, 0.0, GrowthRate(nil))
	assert.Equal(t, 0.0, GrowthRate([]models.DailyStat{{Date: "2024-01-01", Revenue: 100}}))
	assert.Equal(t, 0.0, GrowthRate([]models.DailyStat{
		{Date: "2024-01-01", Revenue: 0},
		{Date: "2024-01-02", Revenue: 100},
	}))
}

func TestChartSeries(t *testing.T) {
	stats := []models.DailyStat{
		{Date: "2024-01-01", Revenue: 100, Orders: 3},
		{Date: "2024-01-02", Revenue: 150, Orders: 5},
	}

	revenue := RevenueSeries(stats)
	require.Len(t, revenue, 2)
	assert.Equal(t, models.ChartPoint{Label: "2024-01-01", Value: 100}, revenue[0])

	orders := OrderSeries(stats)
	assert.Equal(t, 5.0, orders[1].Value)

	slices := StatusSlices([]models.StatusCount{{Status: "pending", Count: 4}})
	require.Len(t, slices, 1)
	assert.Equal(t, "pending", slices[0].Label)
	assert.Equal(t, 4.0, slices[0].Value)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Pending", titleCase("pending"))
	assert.Equal(t, "", titleCase(""))
	assert.Equal(t, "Scheduled", titleCase("scheduled"))
}
