package upstream

import (
	"context"

	"gemstone-admin/models"
)

// GetAdminStats fetches the analytics payload used by the dashboard and the
// sales analytics screen.
func (c *Client) GetAdminStats(ctx context.Context, sess Session) (*models.AnalyticsData, error) {
	var data models.AnalyticsData
	if _, err := c.get(ctx, sess, "/orders/admin/stats", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
