package repositories

import (
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"productos-api/internal/models"
)

// updatableAttributes fixes the order in which patch fields appear in update
// expressions.
var updatableAttributes = []string{"name", "price", "description", "stock"}

// ToItem converts a product into its storage attribute map. The price is
// written from the decimal's string form, so no binary float is ever
// involved on the way in.
func ToItem(p models.Product) Item {
	return Item{
		"id":          stringAttr(p.ID),
		"name":        stringAttr(p.Name),
		"price":       numberAttr(p.Price.String()),
		"description": stringAttr(p.Description),
		"stock":       numberAttr(strconv.Itoa(p.Stock)),
		"created_at":  stringAttr(p.CreatedAt),
		"updated_at":  stringAttr(p.UpdatedAt),
	}
}

// FromItem converts a stored item into its transport form, turning every
// number attribute into a plain float64. Lists and maps are walked
// recursively so nested numbers are converted as well.
func FromItem(item Item) map[string]any {
	out := make(map[string]any, len(item))
	for name, av := range item {
		out[name] = fromAttribute(av)
	}
	return out
}

func fromAttribute(av types.AttributeValue) any {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return v.Value
	case *types.AttributeValueMemberN:
		n, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return v.Value
		}
		return n
	case *types.AttributeValueMemberBOOL:
		return v.Value
	case *types.AttributeValueMemberNULL:
		return nil
	case *types.AttributeValueMemberL:
		list := make([]any, 0, len(v.Value))
		for _, member := range v.Value {
			list = append(list, fromAttribute(member))
		}
		return list
	case *types.AttributeValueMemberM:
		m := make(map[string]any, len(v.Value))
		for name, member := range v.Value {
			m[name] = fromAttribute(member)
		}
		return m
	case *types.AttributeValueMemberSS:
		return v.Value
	case *types.AttributeValueMemberNS:
		nums := make([]any, 0, len(v.Value))
		for _, raw := range v.Value {
			nums = append(nums, fromAttribute(numberAttr(raw)))
		}
		return nums
	default:
		return nil
	}
}

// buildUpdate assembles the UpdateItem expression for a patch. updated_at is
// always set; every attribute is aliased because "name" collides with a
// DynamoDB reserved word.
func buildUpdate(patch models.ProductPatch, updatedAt string) (expr string, names map[string]string, values map[string]types.AttributeValue) {
	expr = "SET #updated_at = :updated_at"
	names = map[string]string{"#updated_at": "updated_at"}
	values = map[string]types.AttributeValue{":updated_at": stringAttr(updatedAt)}

	attrs := patchAttributes(patch)
	for _, attr := range updatableAttributes {
		value, ok := attrs[attr]
		if !ok {
			continue
		}
		expr += fmt.Sprintf(", #%s = :%s", attr, attr)
		names["#"+attr] = attr
		values[":"+attr] = value
	}
	return expr, names, values
}

// patchAttributes returns the storage attribute for every field present in
// the patch, keyed by attribute name.
func patchAttributes(patch models.ProductPatch) map[string]types.AttributeValue {
	attrs := make(map[string]types.AttributeValue)
	if patch.Name != nil {
		attrs["name"] = stringAttr(*patch.Name)
	}
	if patch.Price != nil {
		attrs["price"] = numberAttr(patch.Price.String())
	}
	if patch.Description != nil {
		attrs["description"] = stringAttr(*patch.Description)
	}
	if patch.Stock != nil {
		attrs["stock"] = numberAttr(strconv.Itoa(*patch.Stock))
	}
	return attrs
}

func stringAttr(s string) *types.AttributeValueMemberS {
	return &types.AttributeValueMemberS{Value: s}
}

func numberAttr(n string) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: n}
}
