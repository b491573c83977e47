package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pix_storefront/internal/config"
	"pix_storefront/internal/infrastructure/logging"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	PixOrdersChatIDIndex = "chat_id-index"

	tableActiveTimeout = 2 * time.Minute
)

// ConnectDynamoDB creates a DynamoDB client from the dynamodb.* settings.
//
// Static credentials are used when both keys are set (DynamoDB Local does not
// validate them, but the SDK requires some); otherwise the default AWS chain.
// A non-empty endpoint points the client at e.g. http://dynamodb:8000.
func ConnectDynamoDB(ctx context.Context, cfg config.DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}

	var opts []func(*dynamodb.Options)
	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		opts = append(opts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	}
	log := logging.Component("database")
	log.Info().Str("region", cfg.Region).Str("endpoint", cfg.Endpoint).Msg("dynamodb client initialized")
	return dynamodb.NewFromConfig(awsCfg, opts...), nil
}

func NewAWSConfig(ctx context.Context, cfg config.DynamoDBConfig) (aws.Config, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}

// EnsurePixOrdersTable creates the orders table with its chat id index when it
// does not exist yet. Meant for DynamoDB Local and first deployments.
func EnsurePixOrdersTable(ctx context.Context, ddb *dynamodb.Client, table string) error {
	logger := logging.Component("database").With().Str("table", table).Logger()

	_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)})
	if err == nil {
		return nil
	}
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return fmt.Errorf("describe table %s: %w", table, err)
	}

	logger.Info().Msg("creating table")
	_, err = ddb.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:   aws.String(table),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("chat_id"), AttributeType: types.ScalarAttributeTypeN},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{{
			IndexName: aws.String(PixOrdersChatIDIndex),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("chat_id"), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		}},
	})
	if err != nil {
		return fmt.Errorf("create table %s: %w", table, err)
	}

	waiter := dynamodb.NewTableExistsWaiter(ddb)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)}, tableActiveTimeout); err != nil {
		return fmt.Errorf("wait for table %s: %w", table, err)
	}
	logger.Info().Msg("table ready")
	return nil
}
