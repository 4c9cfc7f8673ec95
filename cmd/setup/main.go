package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/spf13/pflag"

	"productos-api/internal/config"
)

// setup provisions the product tables: one partition key (the product ID)
// and on-demand billing, matching what the API expects per environment.
func main() {
	tables := pflag.StringSlice("tables", []string{"productos_local", "productos_prod"}, "tables to create")
	pflag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	awsCfg, err := cfg.AWS(ctx)
	if err != nil {
		log.Fatalf("Failed to load AWS configuration: %v", err)
	}
	client := dynamodb.NewFromConfig(awsCfg)

	for _, table := range *tables {
		if err := createTable(ctx, client, table); err != nil {
			log.Fatalf("Failed to create table %s: %v", table, err)
		}
	}

	out, err := client.ListTables(ctx, &dynamodb.ListTablesInput{})
	if err != nil {
		log.Fatalf("Failed to list tables: %v", err)
	}
	log.Printf("Tables in %s: %v", cfg.AWSRegion, out.TableNames)
}

// createTable provisions a single table keyed by the product ID and waits
// until it is active. A table that already exists is left untouched.
func createTable(ctx context.Context, client *dynamodb.Client, table string) error {
	_, err := client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(table),
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			log.Printf("Table %s already exists", table)
			return nil
		}
		return err
	}

	log.Printf("Creating table %s...", table)
	waiter := dynamodb.NewTableExistsWaiter(client)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)}, 2*time.Minute); err != nil {
		return err
	}
	log.Printf("Table %s is active", table)
	return nil
}
