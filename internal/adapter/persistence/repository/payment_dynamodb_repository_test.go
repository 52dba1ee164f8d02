package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"propertyhub/internal/domain/entities"
	"propertyhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// fakeDynamo records the last input of each call and answers with canned outputs.
type fakeDynamo struct {
	getOut    *dynamodb.GetItemOutput
	updateOut *dynamodb.UpdateItemOutput
	updateErr error
	queryOut  *dynamodb.QueryOutput
	scanPages []*dynamodb.ScanOutput

	lastUpdate *dynamodb.UpdateItemInput
	lastQuery  *dynamodb.QueryInput
	lastScan   *dynamodb.ScanInput
	scanCalls  int
}

func (f *fakeDynamo) PutItem(ctx context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(ctx context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getOut == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return f.getOut, nil
}

func (f *fakeDynamo) UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.lastUpdate = in
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeDynamo) DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Query(ctx context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.lastQuery = in
	return f.queryOut, nil
}

func (f *fakeDynamo) Scan(ctx context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.lastScan = in
	out := f.scanPages[f.scanCalls]
	f.scanCalls++
	return out, nil
}

func marshalPaymentItem(t *testing.T, p entities.Payment) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func newTestPaymentRepo(f *fakeDynamo) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       f,
		tableName: "payments",
		now:       func() time.Time { return time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC) },
	}
}

func TestPaymentDynamoRepository_GetByID(t *testing.T) {
	t.Run("missing row returns zero value", func(t *testing.T) {
		repo := newTestPaymentRepo(&fakeDynamo{})
		p, err := repo.GetByID(context.Background(), "nope")
		if err != nil || p.ID != "" {
			t.Fatalf("expected zero payment, got %+v %v", p, err)
		}
	})

	t.Run("decodes dates and amount", func(t *testing.T) {
		paid := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
		stored := entities.Payment{
			ID:        "pay-1",
			Amount:    decimal.RequireFromString("180000.50"),
			DueDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
			Status:    entities.PaymentStatusPaid,
			PaidDate:  &paid,
			MoMoFlow:  entities.MoMoFlowInvoice,
			CreatedAt: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		}
		repo := newTestPaymentRepo(&fakeDynamo{getOut: &dynamodb.GetItemOutput{Item: marshalPaymentItem(t, stored)}})

		p, err := repo.GetByID(context.Background(), "pay-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.Amount.Equal(stored.Amount) || !p.DueDate.Equal(stored.DueDate) || p.PaidDate == nil || !p.PaidDate.Equal(paid) {
			t.Fatalf("unexpected payment %+v", p)
		}
	})
}

func TestPaymentDynamoRepository_ApplyReconciliation(t *testing.T) {
	t.Run("builds conditional update for paid", func(t *testing.T) {
		paid := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		updated := entities.Payment{ID: "pay-1", Status: entities.PaymentStatusPaid, PaidDate: &paid}
		f := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: marshalPaymentItem(t, updated)}}
		repo := newTestPaymentRepo(f)

		rec := entities.Reconciliation{
			Status:                 entities.PaymentStatusPaid,
			RawStatus:              "SUCCESSFUL",
			PaidDate:               &paid,
			FinancialTransactionID: "ftx-1",
		}
		got, err := repo.ApplyReconciliation(context.Background(), "pay-1", entities.MoMoFlowRequestToPay, rec, entities.OpenPaymentStatuses())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.PaymentStatusPaid {
			t.Fatalf("unexpected result %+v", got)
		}

		in := f.lastUpdate
		cond := aws.ToString(in.ConditionExpression)
		if !strings.Contains(cond, "attribute_exists(#id)") || !strings.Contains(cond, "#status IN (:from0, :from1, :from2)") {
			t.Fatalf("unexpected condition %q", cond)
		}
		if in.ExpressionAttributeNames["#raw"] != "momo_request_status" {
			t.Fatalf("expected request status attribute, got %q", in.ExpressionAttributeNames["#raw"])
		}
		if v := in.ExpressionAttributeValues[":paid_date"].(*types.AttributeValueMemberS).Value; v != "2026-03-15" {
			t.Fatalf("unexpected paid_date %q", v)
		}
		if _, ok := in.ExpressionAttributeValues[":err_code"]; ok {
			t.Fatalf("did not expect error fields on success")
		}
		if v := in.ExpressionAttributeValues[":from0"].(*types.AttributeValueMemberS).Value; v != "pending" {
			t.Fatalf("unexpected allowed status %q", v)
		}
	})

	t.Run("failed condition is stale status", func(t *testing.T) {
		f := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{Message: aws.String("failed")}}
		repo := newTestPaymentRepo(f)

		rec := entities.Reconciliation{Status: entities.PaymentStatusPending, RawStatus: "PENDING"}
		_, err := repo.ApplyReconciliation(context.Background(), "pay-1", entities.MoMoFlowInvoice, rec, entities.OpenPaymentStatuses())
		if !errors.Is(err, interfaces.ErrStaleStatus) {
			t.Fatalf("expected ErrStaleStatus, got %v", err)
		}
		if f.lastUpdate.ExpressionAttributeNames["#raw"] != "momo_invoice_status" {
			t.Fatalf("expected invoice status attribute")
		}
	})

	t.Run("requires allowed statuses", func(t *testing.T) {
		repo := newTestPaymentRepo(&fakeDynamo{})
		if _, err := repo.ApplyReconciliation(context.Background(), "pay-1", entities.MoMoFlowInvoice, entities.Reconciliation{}, nil); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestPaymentDynamoRepository_LinkProvider(t *testing.T) {
	t.Run("already linked", func(t *testing.T) {
		f := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{Message: aws.String("failed")}}
		repo := newTestPaymentRepo(f)

		_, err := repo.LinkProvider(context.Background(), "pay-1", interfaces.ProviderLink{Flow: entities.MoMoFlowInvoice, ReferenceID: "ref"})
		if !errors.Is(err, interfaces.ErrAlreadyLinked) {
			t.Fatalf("expected ErrAlreadyLinked, got %v", err)
		}
		if !strings.Contains(aws.ToString(f.lastUpdate.ConditionExpression), "attribute_not_exists(#ref)") {
			t.Fatalf("unexpected condition %q", aws.ToString(f.lastUpdate.ConditionExpression))
		}
	})

	t.Run("success", func(t *testing.T) {
		linked := entities.Payment{ID: "pay-1", MoMoReferenceID: "ref", MoMoFlow: entities.MoMoFlowInvoice, MoMoInvoiceStatus: "PENDING"}
		f := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: marshalPaymentItem(t, linked)}}
		repo := newTestPaymentRepo(f)

		got, err := repo.LinkProvider(context.Background(), "pay-1", interfaces.ProviderLink{Flow: entities.MoMoFlowInvoice, ReferenceID: "ref", ExternalID: "pay-1", RawStatus: "PENDING"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.MoMoReferenceID != "ref" || got.MoMoInvoiceStatus != "PENDING" {
			t.Fatalf("unexpected payment %+v", got)
		}
	})
}

func TestPaymentDynamoRepository_Update(t *testing.T) {
	t.Run("writes only patched attributes", func(t *testing.T) {
		stored := entities.Payment{ID: "pay-1", Status: entities.PaymentStatusPaid, MoMoFinancialTransactionID: "ftx-1", Notes: "late"}
		f := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: marshalPaymentItem(t, stored)}}
		repo := newTestPaymentRepo(f)

		notes := "late"
		got, err := repo.Update(context.Background(), "pay-1", interfaces.PaymentUpdate{Notes: &notes})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.PaymentStatusPaid || got.MoMoFinancialTransactionID != "ftx-1" {
			t.Fatalf("expected reconciled fields kept, got %+v", got)
		}

		in := f.lastUpdate
		expr := aws.ToString(in.UpdateExpression)
		if expr != "SET #updated_at = :updated_at, #notes = :notes" {
			t.Fatalf("unexpected update expression %q", expr)
		}
		for _, attr := range in.ExpressionAttributeNames {
			if attr == "status" || attr == "paid_date" || strings.HasPrefix(attr, "momo_") {
				t.Fatalf("did not expect %q in the update", attr)
			}
		}
		if aws.ToString(in.ConditionExpression) != "attribute_exists(#id)" {
			t.Fatalf("unexpected condition %q", aws.ToString(in.ConditionExpression))
		}
	})

	t.Run("status change is conditioned on the status read", func(t *testing.T) {
		f := &fakeDynamo{updateOut: &dynamodb.UpdateItemOutput{Attributes: marshalPaymentItem(t, entities.Payment{ID: "pay-1"})}}
		repo := newTestPaymentRepo(f)

		status := entities.PaymentStatusCancelled
		tenant := ""
		_, err := repo.Update(context.Background(), "pay-1", interfaces.PaymentUpdate{
			Status:         &status,
			TenantID:       &tenant,
			ExpectedStatus: entities.PaymentStatusPending,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		in := f.lastUpdate
		if cond := aws.ToString(in.ConditionExpression); cond != "attribute_exists(#id) AND #status = :expected_status" {
			t.Fatalf("unexpected condition %q", cond)
		}
		if v := in.ExpressionAttributeValues[":expected_status"].(*types.AttributeValueMemberS).Value; v != "pending" {
			t.Fatalf("unexpected expected status %q", v)
		}
		if !strings.HasSuffix(aws.ToString(in.UpdateExpression), " REMOVE #tenant_id") {
			t.Fatalf("expected tenant_id removed, got %q", aws.ToString(in.UpdateExpression))
		}
	})

	t.Run("changed status is stale", func(t *testing.T) {
		f := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{
			Message: aws.String("failed"),
			Item:    marshalPaymentItem(t, entities.Payment{ID: "pay-1", Status: entities.PaymentStatusPaid}),
		}}
		repo := newTestPaymentRepo(f)

		status := entities.PaymentStatusCancelled
		_, err := repo.Update(context.Background(), "pay-1", interfaces.PaymentUpdate{Status: &status, ExpectedStatus: entities.PaymentStatusPending})
		if !errors.Is(err, interfaces.ErrStaleStatus) {
			t.Fatalf("expected ErrStaleStatus, got %v", err)
		}
	})

	t.Run("missing row returns zero value", func(t *testing.T) {
		f := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{Message: aws.String("failed")}}
		repo := newTestPaymentRepo(f)

		notes := "x"
		p, err := repo.Update(context.Background(), "nope", interfaces.PaymentUpdate{Notes: &notes})
		if err != nil || p.ID != "" {
			t.Fatalf("expected zero payment, got %+v %v", p, err)
		}
	})
}

func TestPaymentDynamoRepository_List(t *testing.T) {
	t.Run("status filter queries index", func(t *testing.T) {
		f := &fakeDynamo{queryOut: &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{
			marshalPaymentItem(t, entities.Payment{ID: "a", Status: entities.PaymentStatusPending, TenantID: "t1"}),
			marshalPaymentItem(t, entities.Payment{ID: "b", Status: entities.PaymentStatusPending, TenantID: "t2"}),
		}}}
		repo := newTestPaymentRepo(f)

		got, err := repo.List(context.Background(), interfaces.PaymentFilter{Status: entities.PaymentStatusPending, TenantID: "t2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if aws.ToString(f.lastQuery.IndexName) != paymentsStatusIndex {
			t.Fatalf("expected status index, got %q", aws.ToString(f.lastQuery.IndexName))
		}
		if len(got) != 1 || got[0].ID != "b" {
			t.Fatalf("expected tenant filter applied, got %+v", got)
		}
	})

	t.Run("no filter scans every page", func(t *testing.T) {
		f := &fakeDynamo{scanPages: []*dynamodb.ScanOutput{
			{
				Items:            []map[string]types.AttributeValue{marshalPaymentItem(t, entities.Payment{ID: "a"})},
				LastEvaluatedKey: idKey("a"),
			},
			{
				Items: []map[string]types.AttributeValue{marshalPaymentItem(t, entities.Payment{ID: "b"})},
			},
		}}
		repo := newTestPaymentRepo(f)

		got, err := repo.List(context.Background(), interfaces.PaymentFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || f.scanCalls != 2 {
			t.Fatalf("expected 2 items over 2 pages, got %d items %d calls", len(got), f.scanCalls)
		}
	})
}
