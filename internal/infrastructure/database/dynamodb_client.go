package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates the DynamoDB client shared by every repository.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb-local:8000)
func ConnectDynamoDB(ctx context.Context) *dynamodb.Client {
	cfg, err := NewAWSConfigFromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	endpoint := os.Getenv("DYNAMODB_ENDPOINT")
	if endpoint != "" {
		log.Printf("[database] using dynamodb endpoint=%s", endpoint)
	}
	return NewDynamoDBClient(cfg, endpoint)
}

// NewDynamoDBClient points the client at endpoint when it is set.
func NewDynamoDBClient(cfg aws.Config, endpoint string) *dynamodb.Client {
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

func NewAWSConfigFromEnv(ctx context.Context) (aws.Config, error) {
	// Local DynamoDB ignores credentials, but the SDK still signs requests.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		os.Getenv("AWS_SESSION_TOKEN"),
	)

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(getenvDefault("AWS_REGION", "us-east-1")),
		config.WithCredentialsProvider(creds),
	)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
