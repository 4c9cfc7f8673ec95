package repositories

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"productos-api/internal/models"
)

func TestToItem(t *testing.T) {
	item := ToItem(models.Product{
		ID:          "abc",
		Name:        "Laptop",
		Price:       decimal.RequireFromString("19.99"),
		Description: "High end",
		Stock:       3,
		CreatedAt:   "2024-01-01T00:00:00Z",
		UpdatedAt:   "2024-01-01T00:00:00Z",
	})

	// The price attribute carries the exact decimal string.
	price, ok := item["price"].(*types.AttributeValueMemberN)
	assert.True(t, ok)
	assert.Equal(t, "19.99", price.Value)

	stock, ok := item["stock"].(*types.AttributeValueMemberN)
	assert.True(t, ok)
	assert.Equal(t, "3", stock.Value)

	name, ok := item["name"].(*types.AttributeValueMemberS)
	assert.True(t, ok)
	assert.Equal(t, "Laptop", name.Value)

	assert.Len(t, item, 7)
}

func TestFromItem(t *testing.T) {
	item := Item{
		"id":    stringAttr("abc"),
		"name":  stringAttr("Laptop"),
		"price": numberAttr("19.99"),
		"stock": numberAttr("3"),
	}

	out := FromItem(item)

	assert.Equal(t, "abc", out["id"])
	assert.Equal(t, "Laptop", out["name"])
	assert.Equal(t, 19.99, out["price"])
	assert.Equal(t, 3.0, out["stock"])
}

func TestFromItemNestedAttributes(t *testing.T) {
	item := Item{
		"tags": &types.AttributeValueMemberL{Value: []types.AttributeValue{
			numberAttr("1.5"),
			stringAttr("x"),
			&types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
				"depth": numberAttr("2"),
			}},
		}},
		"flag":    &types.AttributeValueMemberBOOL{Value: true},
		"nothing": &types.AttributeValueMemberNULL{Value: true},
		"sizes":   &types.AttributeValueMemberNS{Value: []string{"1", "2.5"}},
	}

	out := FromItem(item)

	assert.Equal(t, []any{1.5, "x", map[string]any{"depth": 2.0}}, out["tags"])
	assert.Equal(t, true, out["flag"])
	assert.Nil(t, out["nothing"])
	assert.Equal(t, []any{1.0, 2.5}, out["sizes"])
}

func TestBuildUpdateAlwaysSetsTimestamp(t *testing.T) {
	expr, names, values := buildUpdate(models.ProductPatch{}, "2024-01-02T00:00:00Z")

	assert.Equal(t, "SET #updated_at = :updated_at", expr)
	assert.Equal(t, map[string]string{"#updated_at": "updated_at"}, names)

	updated, ok := values[":updated_at"].(*types.AttributeValueMemberS)
	assert.True(t, ok)
	assert.Equal(t, "2024-01-02T00:00:00Z", updated.Value)
}

func TestBuildUpdatePartialPatch(t *testing.T) {
	stock := 7
	price := decimal.RequireFromString("10.5")

	expr, names, values := buildUpdate(models.ProductPatch{Stock: &stock, Price: &price}, "2024-01-02T00:00:00Z")

	// Fields appear in a fixed order, and absent ones are left out entirely.
	assert.Equal(t, "SET #updated_at = :updated_at, #price = :price, #stock = :stock", expr)
	assert.Equal(t, "price", names["#price"])
	assert.Equal(t, "stock", names["#stock"])
	assert.NotContains(t, names, "#name")
	assert.NotContains(t, values, ":description")

	priceValue, ok := values[":price"].(*types.AttributeValueMemberN)
	assert.True(t, ok)
	assert.Equal(t, "10.5", priceValue.Value)

	stockValue, ok := values[":stock"].(*types.AttributeValueMemberN)
	assert.True(t, ok)
	assert.Equal(t, "7", stockValue.Value)
}

func TestBuildUpdateFullPatch(t *testing.T) {
	name := "Renamed"
	price := decimal.RequireFromString("1")
	description := ""
	stock := 0

	expr, names, values := buildUpdate(models.ProductPatch{
		Name:        &name,
		Price:       &price,
		Description: &description,
		Stock:       &stock,
	}, "2024-01-02T00:00:00Z")

	assert.Equal(t,
		"SET #updated_at = :updated_at, #name = :name, #price = :price, #description = :description, #stock = :stock",
		expr)
	assert.Len(t, names, 5)
	assert.Len(t, values, 5)

	// Zero values still count as present when the pointer is set.
	descriptionValue, ok := values[":description"].(*types.AttributeValueMemberS)
	assert.True(t, ok)
	assert.Equal(t, "", descriptionValue.Value)
}
