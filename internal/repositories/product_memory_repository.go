package repositories

import (
	"context"
	"errors"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"productos-api/internal/models"
)

// MemoryProductRepository is an in-memory implementation of
// ProductRepository. It follows DynamoDB table semantics (a get miss is
// ErrNotFound, update upserts, deleting an absent key succeeds), so handler
// tests and local runs behave like the real store.
type MemoryProductRepository struct {
	items map[string]Item
	mu    sync.RWMutex
}

// NewMemoryProductRepository creates an empty in-memory repository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		items: make(map[string]Item),
	}
}

// Get returns the item with the given ID, or ErrNotFound.
func (r *MemoryProductRepository) Get(ctx context.Context, id string) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyItem(item), nil
}

// Put stores the item under its id attribute, replacing any existing one.
func (r *MemoryProductRepository) Put(ctx context.Context, item Item) error {
	id, ok := item["id"].(*types.AttributeValueMemberS)
	if !ok {
		return errors.New("item has no string id attribute")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[id.Value] = copyItem(item)
	return nil
}

// Update applies the patch the way a DynamoDB UpdateItem call would: a
// missing item is created from its key, then the present fields and
// updated_at are set. The new state is returned.
func (r *MemoryProductRepository) Update(ctx context.Context, id string, patch models.ProductPatch, updatedAt string) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		item = Item{"id": stringAttr(id)}
	}
	next := copyItem(item)
	next["updated_at"] = stringAttr(updatedAt)
	for attr, value := range patchAttributes(patch) {
		next[attr] = value
	}
	r.items[id] = next
	return copyItem(next), nil
}

// Delete removes the item if present. Deleting an absent key succeeds.
func (r *MemoryProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

// ScanAll returns a copy of every stored item.
func (r *MemoryProductRepository) ScanAll(ctx context.Context) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]Item, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, copyItem(item))
	}
	return items, nil
}

// Ping always succeeds for the in-memory store.
func (r *MemoryProductRepository) Ping(ctx context.Context) error {
	return nil
}

// copyItem returns a shallow copy. Attribute values are never mutated in
// place, so sharing them between copies is safe.
func copyItem(item Item) Item {
	out := make(Item, len(item))
	for name, av := range item {
		out[name] = av
	}
	return out
}
