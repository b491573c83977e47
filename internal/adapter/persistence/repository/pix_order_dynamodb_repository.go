package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"pix_storefront/internal/domain/entities"
	"pix_storefront/internal/infrastructure/database"
	"pix_storefront/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultPixOrdersTableName = "pix_orders"

// dynamoAPI is the subset of *dynamodb.Client the repository calls.
type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type pixOrderItem struct {
	ID                 string `dynamodbav:"id"`
	Reference          string `dynamodbav:"reference"`
	Provider           string `dynamodbav:"provider"`
	ChatID             int64  `dynamodbav:"chat_id,omitempty"`
	CategoryID         string `dynamodbav:"category_id,omitempty"`
	Tier               string `dynamodbav:"tier,omitempty"`
	Amount             string `dynamodbav:"amount"`
	AmountCents        int64  `dynamodbav:"amount_cents"`
	Status             string `dynamodbav:"status"`
	QRCode             string `dynamodbav:"qr_code"`
	QRCodeURL          string `dynamodbav:"qr_code_url,omitempty"`
	ExpiresAt          string `dynamodbav:"expires_at,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

// PixOrderDynamoRepository persists PixOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: chat_id-index (PK: chat_id, number)
type PixOrderDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IPixOrderRepository = (*PixOrderDynamoRepository)(nil)

func NewPixOrderDynamoRepository(ddb dynamoAPI, tableName string) *PixOrderDynamoRepository {
	if tableName == "" {
		tableName = defaultPixOrdersTableName
	}
	return &PixOrderDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *PixOrderDynamoRepository) Create(ctx context.Context, o entities.PixOrder) (entities.PixOrder, error) {
	av, err := attributevalue.MarshalMap(toPixOrderItem(o))
	if err != nil {
		return entities.PixOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PixOrder{}, err
	}
	return o, nil
}

func (r *PixOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.PixOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PixOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.PixOrder{}, nil
	}

	var it pixOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PixOrder{}, err
	}
	return fromPixOrderItem(it), nil
}

// UpdateStatus returns the zero value when the order does not exist.
func (r *PixOrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.PixOrder, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: r.now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return entities.PixOrder{}, nil
		}
		return entities.PixOrder{}, err
	}

	var it pixOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PixOrder{}, err
	}
	return fromPixOrderItem(it), nil
}

// ListByChatID returns the chat's orders, newest first.
func (r *PixOrderDynamoRepository) ListByChatID(ctx context.Context, chatID int64) ([]entities.PixOrder, error) {
	items := make([]entities.PixOrder, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(database.PixOrdersChatIDIndex),
			KeyConditionExpression: aws.String("chat_id = :cid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cid": &types.AttributeValueMemberN{Value: strconv.FormatInt(chatID, 10)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it pixOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromPixOrderItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func toPixOrderItem(o entities.PixOrder) pixOrderItem {
	it := pixOrderItem{
		ID:                 o.ID,
		Reference:          o.Reference,
		Provider:           o.Provider,
		ChatID:             o.ChatID,
		CategoryID:         o.CategoryID,
		Tier:               o.Tier,
		Amount:             o.Amount.StringFixed(2),
		AmountCents:        o.AmountCents,
		Status:             string(o.Status),
		QRCode:             o.QRCode,
		QRCodeURL:          o.QRCodeURL,
		CreatedAt:          o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          o.UpdatedAt.UTC().Format(time.RFC3339Nano),
		ProviderPayloadRaw: string(o.ProviderPayloadRaw),
	}
	if !o.ExpiresAt.IsZero() {
		it.ExpiresAt = o.ExpiresAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPixOrderItem(it pixOrderItem) entities.PixOrder {
	amount, _ := decimal.NewFromString(it.Amount)
	o := entities.PixOrder{
		ID:          it.ID,
		Reference:   it.Reference,
		Provider:    it.Provider,
		ChatID:      it.ChatID,
		CategoryID:  it.CategoryID,
		Tier:        it.Tier,
		Amount:      amount,
		AmountCents: it.AmountCents,
		Status:      entities.PaymentStatus(it.Status),
		QRCode:      it.QRCode,
		QRCodeURL:   it.QRCodeURL,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
		ExpiresAt:   parseTime(it.ExpiresAt),
	}
	if it.ProviderPayloadRaw != "" {
		o.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return o
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
