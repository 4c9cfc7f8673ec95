package services

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"productos-api/internal/models"
	"productos-api/internal/repositories"
)

// ProductService handles business logic related to products: payload
// validation and normalization, and the storage round-trip. Stored items are
// returned in transport form with decimals already converted.
type ProductService struct {
	repo     repositories.ProductRepository
	validate *validator.Validate
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo:     repo,
		validate: validator.New(),
	}
}

// CreateProduct validates the raw payload, fills in the generated fields and
// stores the new product.
func (s *ProductService) CreateProduct(ctx context.Context, payload []byte) (map[string]any, error) {
	var req models.CreateProductRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, models.ErrInvalidBody
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, models.ErrMissingRequiredFields
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	now := timestamp()
	product := models.Product{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(*req.Name),
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Description != nil {
		product.Description = strings.TrimSpace(*req.Description)
	}
	if req.Stock != nil {
		product.Stock = int(*req.Stock)
	}

	item := repositories.ToItem(product)
	if err := s.repo.Put(ctx, item); err != nil {
		return nil, err
	}
	return repositories.FromItem(item), nil
}

// GetAllProducts retrieves every stored product.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]map[string]any, error) {
	items, err := s.repo.ScanAll(ctx)
	if err != nil {
		return nil, err
	}
	products := make([]map[string]any, 0, len(items))
	for _, item := range items {
		products = append(products, repositories.FromItem(item))
	}
	return products, nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (map[string]any, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return repositories.FromItem(item), nil
}

// UpdateProduct applies a partial update to an existing product. The
// existence check runs before any payload inspection, so an unknown ID is
// reported as not found no matter what the body holds.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, payload []byte) (map[string]any, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}

	patch, err := parseUpdate(payload)
	if err != nil {
		return nil, err
	}
	item, err := s.repo.Update(ctx, id, patch, timestamp())
	if err != nil {
		return nil, err
	}
	return repositories.FromItem(item), nil
}

// DeleteProduct removes a product after checking that it exists, so deleting
// an unknown ID reports not found rather than silent success.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Health reports whether the storage table is reachable.
func (s *ProductService) Health(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// parseUpdate turns a raw update payload into a sparse patch, applying the
// same per-field rules as create. A body without any keys is rejected; a
// body with only unrecognized keys yields an empty patch that still bumps
// updated_at.
func parseUpdate(payload []byte) (models.ProductPatch, error) {
	var patch models.ProductPatch
	if len(bytes.TrimSpace(payload)) == 0 {
		return patch, models.ErrNoUpdateData
	}
	var req models.UpdateProductRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return patch, models.ErrInvalidBody
	}
	if req.Empty() {
		return patch, models.ErrNoUpdateData
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		patch.Name = &name
	}
	if req.Price != nil {
		price, err := parsePrice(req.Price)
		if err != nil {
			return models.ProductPatch{}, err
		}
		patch.Price = &price
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		patch.Description = &description
	}
	if req.Stock != nil {
		stock := int(*req.Stock)
		patch.Stock = &stock
	}
	return patch, nil
}

// parsePrice converts the raw price value to an exact decimal. JSON numbers
// and numeric strings are both accepted; anything else is invalid.
func parsePrice(raw json.RawMessage) (decimal.Decimal, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return decimal.Decimal{}, models.ErrInvalidPrice
	}
	price, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Decimal{}, models.ErrInvalidPrice
	}
	if price.IsNegative() {
		return decimal.Decimal{}, models.ErrNegativePrice
	}
	return price, nil
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
