package upstream

import (
	"context"
	"net/http"

	"gemstone-admin/models"
)

// Product calls: GET/POST/PUT/DELETE /products[/:id].

func (c *Client) ListProducts(ctx context.Context, sess Session) ([]models.Product, error) {
	products := []models.Product{}
	if _, err := c.get(ctx, sess, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, sess Session, id string) (*models.Product, error) {
	var product models.Product
	if _, err := c.get(ctx, sess, "/products/"+id, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, sess Session, payload models.ProductPayload) (*models.Product, error) {
	var product models.Product
	if err := c.mutate(ctx, sess, http.MethodPost, "/products", payload, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, sess Session, id string, payload models.ProductPayload) (*models.Product, error) {
	var product models.Product
	if err := c.mutate(ctx, sess, http.MethodPut, "/products/"+id, payload, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, sess Session, id string) error {
	return c.mutate(ctx, sess, http.MethodDelete, "/products/"+id, nil, nil)
}
