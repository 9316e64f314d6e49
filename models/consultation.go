package models

import "strings"

// Booking is the upstream booking-call resource as the API returns it.
type Booking struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	BirthPlace  string `json:"birthPlace"`
	Purpose     string `json:"purpose"`
	DateOfBirth string `json:"dateOfBirth"`
	TimeOfBirth string `json:"timeOfBirth"`
	Gender      string `json:"gender"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// Consultation is the normalized view model the dashboard works with.
type Consultation struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Company       string `json:"company"`
	Service       string `json:"service"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Gender        string `json:"gender"`
	BirthPlace    string `json:"birthPlace"`
	DateOfBirth   string `json:"dateOfBirth"`
	TimeOfBirth   string `json:"timeOfBirth"`
	Message       string `json:"message"`
	Status        string `json:"status"`
	SubmittedAt   string `json:"submittedAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// Normalize maps the upstream booking shape into the dashboard view model.
// The birth place doubles as the company column and the purpose as the
// service column.
func (b Booking) Normalize() Consultation {
	return Consultation{
		ID:            b.ID,
		Name:          b.Name,
		Email:         b.Email,
		Phone:         b.PhoneNumber,
		Company:       b.BirthPlace,
		Service:       b.Purpose,
		PreferredDate: b.DateOfBirth,
		PreferredTime: b.TimeOfBirth,
		Gender:        b.Gender,
		BirthPlace:    b.BirthPlace,
		DateOfBirth:   b.DateOfBirth,
		TimeOfBirth:   b.TimeOfBirth,
		Message:       b.Message,
		Status:        strings.ToLower(b.Status),
		SubmittedAt:   b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// ConsultationStatuses is the closed set of states a booking can be in.
var ConsultationStatuses = []string{"pending", "scheduled", "completed", "cancelled"}

var consultationTransitions = buildPermissiveTransitions(ConsultationStatuses)

func CanTransitionConsultation(from, to string) bool {
	targets, ok := consultationTransitions[normalizeStatus(from)]
	if !ok {
		return false
	}
	return targets[normalizeStatus(to)]
}

func IsConsultationStatus(status string) bool {
	_, ok := consultationTransitions[normalizeStatus(status)]
	return ok
}

func normalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

func buildPermissiveTransitions(statuses []string) map[string]map[string]bool {
	table := make(map[string]map[string]bool, len(statuses))
	for _, from := range statuses {
		targets := make(map[string]bool, len(statuses))
		for _, to := range statuses {
			targets[to] = true
		}
		table[from] = targets
	}
	return table
}
