package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"pix_storefront/internal/domain/entities"
	"pix_storefront/internal/infrastructure/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// fakeDynamo stores items by "id" and understands the requests the repository sends.
type fakeDynamo struct {
	items    map[string]map[string]types.AttributeValue
	lastPut  *dynamodb.PutItemInput
	lastQry  *dynamodb.QueryInput
	queryErr error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: make(map[string]map[string]types.AttributeValue)}
}

func idOf(key map[string]types.AttributeValue) string {
	return key["id"].(*types.AttributeValueMemberS).Value
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.lastPut = in
	id := idOf(in.Item)
	if _, exists := f.items[id]; exists {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.items[idOf(in.Key)]}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	item, ok := f.items[idOf(in.Key)]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	}
	item["status"] = in.ExpressionAttributeValues[":status"]
	item["updated_at"] = in.ExpressionAttributeValues[":updated_at"]
	return &dynamodb.UpdateItemOutput{Attributes: item}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.lastQry = in
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	want := in.ExpressionAttributeValues[":cid"].(*types.AttributeValueMemberN).Value
	var out []map[string]types.AttributeValue
	for _, it := range f.items {
		if n, ok := it["chat_id"].(*types.AttributeValueMemberN); ok && n.Value == want {
			out = append(out, it)
		}
	}
	return &dynamodb.QueryOutput{Items: out}, nil
}

func sampleOrder(id string, chatID int64, created time.Time) entities.PixOrder {
	return entities.PixOrder{
		ID:                 id,
		Reference:          "ref-" + id,
		Provider:           "pagarme",
		ChatID:             chatID,
		CategoryID:         "FKI",
		Tier:               "2K",
		Amount:             decimal.RequireFromString("500.00"),
		AmountCents:        50000,
		Status:             entities.PaymentStatusPending,
		QRCode:             "pix-" + id,
		ExpiresAt:          created.Add(2 * time.Hour),
		CreatedAt:          created,
		UpdatedAt:          created,
		ProviderPayloadRaw: []byte(`{"id":"` + id + `"}`),
	}
}

func TestPixOrderDynamoRepository_CreateAndGet(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewPixOrderDynamoRepository(ddb, "")
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	if _, err := repo.Create(context.Background(), sampleOrder("or_1", 42, now)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if *ddb.lastPut.TableName != "pix_orders" || *ddb.lastPut.ConditionExpression != "attribute_not_exists(#id)" {
		t.Fatalf("unexpected put input: %+v", ddb.lastPut)
	}
	if amount, ok := ddb.items["or_1"]["amount"].(*types.AttributeValueMemberS); !ok || amount.Value != "500.00" {
		t.Fatalf("amount should be stored as a string, got %#v", ddb.items["or_1"]["amount"])
	}

	got, err := repo.GetByID(context.Background(), "or_1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != "or_1" || got.ChatID != 42 || got.Tier != "2K" || !got.Amount.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("unexpected order: %+v", got)
	}
	if !got.CreatedAt.Equal(now) || !got.ExpiresAt.Equal(now.Add(2*time.Hour)) {
		t.Fatalf("unexpected times: %+v", got)
	}
	if string(got.ProviderPayloadRaw) != `{"id":"or_1"}` {
		t.Fatalf("unexpected raw payload: %s", got.ProviderPayloadRaw)
	}

	if _, err := repo.Create(context.Background(), sampleOrder("or_1", 42, now)); err == nil {
		t.Fatalf("expected duplicate create to fail")
	}

	missing, err := repo.GetByID(context.Background(), "or_x")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero value for missing order, got %+v %v", missing, err)
	}
}

func TestPixOrderDynamoRepository_UpdateStatus(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewPixOrderDynamoRepository(ddb, "orders")
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now.Add(time.Minute) }

	_, _ = repo.Create(context.Background(), sampleOrder("or_1", 42, now))

	got, err := repo.UpdateStatus(context.Background(), "or_1", entities.PaymentStatusPaid)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != entities.PaymentStatusPaid || !got.UpdatedAt.Equal(now.Add(time.Minute)) {
		t.Fatalf("unexpected order: %+v", got)
	}

	missing, err := repo.UpdateStatus(context.Background(), "or_x", entities.PaymentStatusPaid)
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero value for missing order, got %+v %v", missing, err)
	}
}

func TestPixOrderDynamoRepository_ListByChatID(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewPixOrderDynamoRepository(ddb, "")
	base := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	_, _ = repo.Create(context.Background(), sampleOrder("or_old", 42, base))
	_, _ = repo.Create(context.Background(), sampleOrder("or_new", 42, base.Add(time.Hour)))
	_, _ = repo.Create(context.Background(), sampleOrder("or_other", 7, base))

	got, err := repo.ListByChatID(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 || got[0].ID != "or_new" || got[1].ID != "or_old" {
		t.Fatalf("unexpected list: %+v", got)
	}
	if *ddb.lastQry.IndexName != database.PixOrdersChatIDIndex {
		t.Fatalf("unexpected index: %s", *ddb.lastQry.IndexName)
	}

	ddb.queryErr = errors.New("throttled")
	if _, err := repo.ListByChatID(context.Background(), 42); err == nil {
		t.Fatalf("expected query error")
	}
}
