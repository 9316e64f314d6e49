package upstream

import (
	"context"
	"net/http"

	"gemstone-admin/models"

	"github.com/guonaihong/gout"
	"github.com/spf13/cast"
)

// Consultation calls: GET /booking-call, PUT /booking-call/:id {status},
// DELETE /booking-call/:id.

func (c *Client) ListBookings(ctx context.Context, sess Session, page, limit int) ([]models.Booking, *models.UpstreamPagination, error) {
	bookings := []models.Booking{}
	query := gout.H{
		"page":  cast.ToString(page),
		"limit": cast.ToString(limit),
	}
	pagination, err := c.get(ctx, sess, "/booking-call", query, &bookings)
	if err != nil {
		return nil, nil, err
	}
	return bookings, pagination, nil
}

func (c *Client) UpdateBookingStatus(ctx context.Context, sess Session, id, status string) error {
	body := map[string]string{"status": status}
	return c.mutate(ctx, sess, http.MethodPut, "/booking-call/"+id, body, nil)
}

func (c *Client) DeleteBooking(ctx context.Context, sess Session, id string) error {
	return c.mutate(ctx, sess, http.MethodDelete, "/booking-call/"+id, nil, nil)
}
