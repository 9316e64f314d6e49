package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gemstone-admin/models"
	"gemstone-admin/upstream"
	"gemstone-admin/utils"

	"github.com/redis/go-redis/v9"
)

// ErrDraftInvalid is returned on save attempts while the draft still has
// validation errors; the field map travels alongside it.
var ErrDraftInvalid = errors.New("product draft has validation errors")

const (
	productCacheKey = "products_all"
	productCacheTTL = 5 * time.Minute
)

type ProductService struct {
	api   *upstream.Client
	cache *redis.Client
}

func NewProductService(api *upstream.Client, cache *redis.Client) *ProductService {
	return &ProductService{api: api, cache: cache}
}

// List fetches the full product collection, served from cache when possible.
func (s *ProductService) List(ctx context.Context, sess upstream.Session) ([]models.Product, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, productCacheKey).Result()
		if err == nil {
			products := []models.Product{}
			if json.Unmarshal([]byte(cached), &products) == nil {
				return products, nil
			}
		}
	}

	products, err := s.api.ListProducts(ctx, sess)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(products); err == nil {
			s.cache.Set(ctx, productCacheKey, string(data), productCacheTTL)
		}
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, sess upstream.Session, id string) (*models.Product, error) {
	return s.api.GetProduct(ctx, sess, id)
}

// Create validates the draft and transmits it wholesale. No client-side
// identity is assigned; the backend response is authoritative.
func (s *ProductService) Create(ctx context.Context, sess upstream.Session, draft models.ProductDraft) (*models.Product, map[string]string, error) {
	draft = draft.MarkSubmitted()
	if errs := draft.Validate(); len(errs) > 0 {
		return nil, errs, ErrDraftInvalid
	}

	product, err := s.api.CreateProduct(ctx, sess, draft.Payload())
	if err != nil {
		return nil, nil, err
	}
	s.invalidateCache(ctx)
	return product, nil, nil
}

func (s *ProductService) Update(ctx context.Context, sess upstream.Session, id string, draft models.ProductDraft) (*models.Product, map[string]string, error) {
	draft = draft.MarkSubmitted()
	if errs := draft.Validate(); len(errs) > 0 {
		return nil, errs, ErrDraftInvalid
	}

	product, err := s.api.UpdateProduct(ctx, sess, id, draft.Payload())
	if err != nil {
		return nil, nil, err
	}
	s.invalidateCache(ctx)
	return product, nil, nil
}

func (s *ProductService) Delete(ctx context.Context, sess upstream.Session, id string) error {
	if err := s.api.DeleteProduct(ctx, sess, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *ProductService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	iter := s.cache.Scan(ctx, 0, "products_*", 0).Iterator()
	for iter.Next(ctx) {
		s.cache.Del(ctx, iter.Val())
	}
}

// FilterProducts applies the text search and status filter the products table
// offers. The search covers name, category and description.
func FilterProducts(products []models.Product, searchTerm, statusFilter string) []models.Product {
	filtered := []models.Product{}
	for _, p := range products {
		if !utils.MatchesSearch(searchTerm, p.Name, p.PrimaryCategory, p.Description) {
			continue
		}
		status := "unavailable"
		if p.IsAvailable {
			status = "available"
		}
		if !utils.MatchesStatus(statusFilter, status) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// ExportCSV renders the filtered product list as a downloadable CSV.
func (s *ProductService) ExportCSV(products []models.Product) (string, error) {
	return utils.ProductsCSV(products)
}
