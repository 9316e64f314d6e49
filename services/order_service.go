package services

import (
	"context"
	"errors"

	"gemstone-admin/models"
	"gemstone-admin/upstream"
	"gemstone-admin/utils"
)

var ErrUnknownStatus = errors.New("unknown status value")

const defaultOrderFetchLimit = 100000

type OrderService struct {
	api *upstream.Client
}

func NewOrderService(api *upstream.Client) *OrderService {
	return &OrderService{api: api}
}

// List pulls the whole order collection; filtering and pagination happen
// client-side, so the upstream limit is set high enough to cover it.
func (s *OrderService) List(ctx context.Context, sess upstream.Session, limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = defaultOrderFetchLimit
	}
	return s.api.ListOrders(ctx, sess, limit)
}

func (s *OrderService) Get(ctx context.Context, sess upstream.Session, id string) (*models.Order, error) {
	return s.api.GetOrder(ctx, sess, id)
}

// UpdateStatus moves an order to a new status. The enum is closed; within it
// the transition table is permissive, so any enumerated target is accepted.
func (s *OrderService) UpdateStatus(ctx context.Context, sess upstream.Session, id, current, next string) error {
	if !models.IsOrderStatus(next) {
		return ErrUnknownStatus
	}
	if current != "" && !models.CanTransitionOrder(current, next) {
		return ErrUnknownStatus
	}
	return s.api.UpdateOrderStatus(ctx, sess, id, next)
}

// FilterOrders matches the search term against customer, order id and email.
func FilterOrders(orders []models.Order, searchTerm, statusFilter string) []models.Order {
	filtered := []models.Order{}
	for _, o := range orders {
		if !utils.MatchesSearch(searchTerm, o.Customer, o.ID, o.Email) {
			continue
		}
		if !utils.MatchesStatus(statusFilter, o.Status) {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

func (s *OrderService) ExportCSV(orders []models.Order) (string, error) {
	return utils.OrdersCSV(orders)
}
