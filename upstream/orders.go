package upstream

import (
	"context"
	"net/http"

	"gemstone-admin/models"

	"github.com/guonaihong/gout"
	"github.com/spf13/cast"
)

// Order calls: GET /orders?limit=N, PUT /orders/:id {status}.

func (c *Client) ListOrders(ctx context.Context, sess Session, limit int) ([]models.Order, error) {
	orders := []models.Order{}
	query := gout.H{"limit": cast.ToString(limit)}
	if _, err := c.get(ctx, sess, "/orders", query, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, sess Session, id string) (*models.Order, error) {
	var order models.Order
	if _, err := c.get(ctx, sess, "/orders/"+id, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, sess Session, id, status string) error {
	body := map[string]string{"status": status}
	return c.mutate(ctx, sess, http.MethodPut, "/orders/"+id, body, nil)
}
