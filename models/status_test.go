package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusEnum(t *testing.T) {
	for _, status := range OrderStatuses {
		assert.True(t, IsOrderStatus(status), status)
	}

	assert.True(t, IsOrderStatus("Pending"), "matching is case-insensitive")
	assert.True(t, IsOrderStatus(" shipped "))
	assert.False(t, IsOrderStatus("refunded"))
	assert.False(t, IsOrderStatus(""))
}

func TestOrderTransitions(t *testing.T) {
	// Any enumerated target is reachable from any enumerated source,
	// including backwards moves.
	assert.True(t, CanTransitionOrder("pending", "shipped"))
	assert.True(t, CanTransitionOrder("delivered", "pending"))
	assert.True(t, CanTransitionOrder("cancelled", "processing"))

	assert.False(t, CanTransitionOrder("pending", "refunded"))
	assert.False(t, CanTransitionOrder("unknown", "pending"))
}

func TestConsultationStatusEnum(t *testing.T) {
	for _, status := range ConsultationStatuses {
		assert.True(t, IsConsultationStatus(status), status)
	}

	assert.True(t, IsConsultationStatus("Scheduled"))
	assert.False(t, IsConsultationStatus("archived"))
	assert.False(t, CanTransitionConsultation("pending", "archived"))
	assert.True(t, CanTransitionConsultation("completed", "pending"))
}

func TestBookingNormalize(t *testing.T) {
	booking := Booking{
		ID:          "abc123",
		Name:        "Priya Sharma",
		Email:       "priya@example.com",
		PhoneNumber: "+91 98765 43210",
		BirthPlace:  "Jaipur",
		Purpose:     "Gemstone recommendation",
		DateOfBirth: "1990-04-12",
		TimeOfBirth: "06:45",
		Status:      "Pending",
		CreatedAt:   "2024-01-15T10:00:00Z",
	}

	c := booking.Normalize()

	assert.Equal(t, "abc123", c.ID)
	assert.Equal(t, "+91 98765 43210", c.Phone)
	assert.Equal(t, "Jaipur", c.Company, "birth place doubles as the company column")
	assert.Equal(t, "Gemstone recommendation", c.Service)
	assert.Equal(t, "1990-04-12", c.PreferredDate)
	assert.Equal(t, "06:45", c.PreferredTime)
	assert.Equal(t, "pending", c.Status, "statuses are lowercased for the UI")
	assert.Equal(t, "2024-01-15T10:00:00Z", c.SubmittedAt)
}

func TestCategoryImage(t *testing.T) {
	url := CategoryImage("blue-sapphire")
	assert.Contains(t, url, "blue-sapphire")

	assert.Empty(t, CategoryImage("granite"))
	assert.True(t, IsPrimaryCategory("other"))
	assert.False(t, IsPrimaryCategory("granite"))
	assert.Len(t, PrimaryCategories, 29)
}
