package repository

import (
	"context"
	"testing"

	"propertyhub/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func marshalPropertyItem(t *testing.T, p entities.Property) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toPropertyItem(p))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestPropertyDynamoRepository_List(t *testing.T) {
	f := &fakeDynamo{scanPages: []*dynamodb.ScanOutput{
		{
			Items: []map[string]types.AttributeValue{marshalPropertyItem(t, entities.Property{
				ID:       "p-1",
				Type:     entities.PropertyTypeHouse,
				Bedrooms: 3,
				Rent:     decimal.RequireFromString("950.00"),
				Status:   entities.PropertyStatusOccupied,
				TenantID: "t-1",
			})},
			LastEvaluatedKey: idKey("p-1"),
		},
		{
			Items: []map[string]types.AttributeValue{marshalPropertyItem(t, entities.Property{ID: "p-2", Status: entities.PropertyStatusAvailable})},
		},
	}}
	repo := &PropertyDynamoRepository{ddb: f, tableName: "properties"}

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || f.scanCalls != 2 {
		t.Fatalf("expected 2 items over 2 pages, got %d items %d calls", len(got), f.scanCalls)
	}
	first := got[0]
	if first.Type != entities.PropertyTypeHouse || first.Bedrooms != 3 || !first.Rent.Equal(decimal.RequireFromString("950")) || first.TenantID != "t-1" {
		t.Fatalf("unexpected property %+v", first)
	}
}

func TestPropertyDynamoRepository_GetByIDMissing(t *testing.T) {
	repo := &PropertyDynamoRepository{ddb: &fakeDynamo{}, tableName: "properties"}
	p, err := repo.GetByID(context.Background(), "nope")
	if err != nil || p.ID != "" {
		t.Fatalf("expected zero property, got %+v %v", p, err)
	}
}
