package config

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every environment-driven setting, resolved once at startup.
type Config struct {
	Environment     string
	Port            string
	AWSRegion       string
	TableName       string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// Load resolves the configuration from the environment. A .env file in the
// working directory is read first when present; the process environment wins
// over it.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded, relying on process environment: %v", err)
	}

	viper.SetDefault("ENVIRONMENT", "local")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("PORT", "5002")
	viper.AutomaticEnv()

	cfg := Config{
		Environment:     viper.GetString("ENVIRONMENT"),
		Port:            viper.GetString("PORT"),
		AWSRegion:       viper.GetString("AWS_REGION"),
		TableName:       viper.GetString("TABLE_NAME"),
		AccessKeyID:     viper.GetString("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: viper.GetString("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    viper.GetString("AWS_SESSION_TOKEN"),
	}
	if cfg.TableName == "" {
		cfg.TableName = fmt.Sprintf("productos_%s", cfg.Environment)
	}
	return cfg
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// HasStaticCredentials reports whether an explicit key pair was supplied.
// The session token only matters alongside the other two; it marks a
// temporary-credential flow.
func (c Config) HasStaticCredentials() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}

// AWS builds the SDK configuration for the storage client. Explicit
// credentials take precedence; otherwise the SDK default provider chain
// applies (profile, instance role and friends).
func (c Config) AWS(ctx context.Context) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(c.AWSRegion),
	}
	if c.HasStaticCredentials() {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, c.SessionToken),
		))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}
