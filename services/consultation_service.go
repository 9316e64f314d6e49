package services

import (
	"context"
	"strings"

	"gemstone-admin/models"
	"gemstone-admin/upstream"
	"gemstone-admin/utils"
)

type ConsultationService struct {
	api *upstream.Client
}

func NewConsultationService(api *upstream.Client) *ConsultationService {
	return &ConsultationService{api: api}
}

// List fetches one page of booking calls and normalizes them into the
// dashboard view model. The upstream pagination block is passed through when
// present.
func (s *ConsultationService) List(ctx context.Context, sess upstream.Session, page, limit int) ([]models.Consultation, *models.UpstreamPagination, error) {
	bookings, pagination, err := s.api.ListBookings(ctx, sess, page, limit)
	if err != nil {
		return nil, nil, err
	}

	consultations := make([]models.Consultation, 0, len(bookings))
	for _, b := range bookings {
		consultations = append(consultations, b.Normalize())
	}
	return consultations, pagination, nil
}

// UpdateStatus moves a booking to a new status. The upstream stores statuses
// title-cased, so the value is capitalized before transmission.
func (s *ConsultationService) UpdateStatus(ctx context.Context, sess upstream.Session, id, current, next string) error {
	if !models.IsConsultationStatus(next) {
		return ErrUnknownStatus
	}
	if current != "" && !models.CanTransitionConsultation(current, next) {
		return ErrUnknownStatus
	}
	return s.api.UpdateBookingStatus(ctx, sess, id, titleCase(next))
}

func (s *ConsultationService) Delete(ctx context.Context, sess upstream.Session, id string) error {
	return s.api.DeleteBooking(ctx, sess, id)
}

// FilterConsultations matches the search term against name, company
// (birth place), service (purpose) and email.
func FilterConsultations(consultations []models.Consultation, searchTerm, statusFilter string) []models.Consultation {
	filtered := []models.Consultation{}
	for _, c := range consultations {
		if !utils.MatchesSearch(searchTerm, c.Name, c.Company, c.Service, c.Email) {
			continue
		}
		if !utils.MatchesStatus(statusFilter, c.Status) {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

func (s *ConsultationService) ExportCSV(consultations []models.Consultation) (string, error) {
	return utils.ConsultationsCSV(consultations)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
