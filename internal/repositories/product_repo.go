package repositories

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"productos-api/internal/models"
)

// ErrNotFound is returned when no item exists for the requested ID.
var ErrNotFound = errors.New("product not found")

// Item is a product record in its storage attribute form.
type Item map[string]types.AttributeValue

// ProductRepository defines the interface for product data access. It
// mirrors the operations of a DynamoDB table: single-key reads and writes,
// attribute-level partial updates and a full scan.
type ProductRepository interface {
	Get(ctx context.Context, id string) (Item, error)
	Put(ctx context.Context, item Item) error
	Update(ctx context.Context, id string, patch models.ProductPatch, updatedAt string) (Item, error)
	Delete(ctx context.Context, id string) error
	ScanAll(ctx context.Context) ([]Item, error)
	Ping(ctx context.Context) error
}
