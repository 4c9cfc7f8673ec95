package repositories

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"productos-api/internal/models"
)

// DynamoProductRepository is a ProductRepository backed by a DynamoDB table.
type DynamoProductRepository struct {
	client *dynamodb.Client
	table  string
}

// NewDynamoProductRepository creates a repository for the given table.
func NewDynamoProductRepository(client *dynamodb.Client, table string) *DynamoProductRepository {
	return &DynamoProductRepository{
		client: client,
		table:  table,
	}
}

// Get fetches a single item by its ID.
func (r *DynamoProductRepository) Get(ctx context.Context, id string) (Item, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       r.key(id),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, ErrNotFound
	}
	return out.Item, nil
}

// Put writes a full item, replacing any existing one with the same key.
func (r *DynamoProductRepository) Put(ctx context.Context, item Item) error {
	_, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	return err
}

// Update applies the patch to the stored item and returns its new state.
// Only the named attributes and updated_at are touched.
func (r *DynamoProductRepository) Update(ctx context.Context, id string, patch models.ProductPatch, updatedAt string) (Item, error) {
	expr, names, values := buildUpdate(patch, updatedAt)
	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       r.key(id),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, err
	}
	return out.Attributes, nil
}

// Delete removes the item with the given ID. Like DynamoDB itself, deleting
// an absent key is not an error; the service checks existence first.
func (r *DynamoProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       r.key(id),
	})
	return err
}

// ScanAll returns every item in the table from a single scan call.
func (r *DynamoProductRepository) ScanAll(ctx context.Context) ([]Item, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(out.Items))
	for _, item := range out.Items {
		items = append(items, item)
	}
	return items, nil
}

// Ping checks that the backing table is reachable.
func (r *DynamoProductRepository) Ping(ctx context.Context) error {
	_, err := r.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.table),
	})
	return err
}

func (r *DynamoProductRepository) key(id string) Item {
	return Item{"id": stringAttr(id)}
}
