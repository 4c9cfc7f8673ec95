package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Product is a stored product record. The price stays an exact decimal all
// the way to the storage layer; items are only converted to plain numerics at
// the serialization boundary.
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Description string
	Stock       int
	CreatedAt   string
	UpdatedAt   string
}

// CreateProductRequest is the payload for POST /productos. The price is kept
// raw so the validator owns the numeric conversion: JSON numbers and numeric
// strings are both accepted, and a malformed value is reported as an invalid
// price rather than a decode failure.
type CreateProductRequest struct {
	Name        *string         `json:"name" validate:"required"`
	Price       json.RawMessage `json:"price" validate:"required"`
	Description *string         `json:"description"`
	Stock       *StockValue     `json:"stock"`
}

// UpdateProductRequest is the payload for PUT /productos/{id}. Every field is
// optional; only the ones present end up in the patch.
type UpdateProductRequest struct {
	Name        *string         `json:"name"`
	Price       json.RawMessage `json:"price"`
	Description *string         `json:"description"`
	Stock       *StockValue     `json:"stock"`

	hasKeys bool
}

// StockValue decodes the loosely typed stock field. JSON numbers and numeric
// strings are both accepted; fractional values truncate toward zero.
type StockValue int

func (s *StockValue) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*s = StockValue(i)
		return nil
	}
	f, err := n.Float64()
	if err != nil {
		return err
	}
	*s = StockValue(int(f))
	return nil
}

// UnmarshalJSON records whether the payload carried any keys at all, so an
// empty object can be told apart from a body holding only unrecognized
// fields. The latter is accepted and results in a timestamp-only update.
func (r *UpdateProductRequest) UnmarshalJSON(data []byte) error {
	type fields UpdateProductRequest
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	*r = UpdateProductRequest(f)
	r.hasKeys = len(keys) > 0
	return nil
}

// Empty reports whether the request carries nothing to apply.
func (r UpdateProductRequest) Empty() bool {
	return !r.hasKeys && r.Name == nil && r.Price == nil && r.Description == nil && r.Stock == nil
}

// ProductPatch is the sparse set of fields supplied by an update request,
// already validated and normalized. Nil fields are left untouched in storage.
type ProductPatch struct {
	Name        *string
	Price       *decimal.Decimal
	Description *string
	Stock       *int
}
