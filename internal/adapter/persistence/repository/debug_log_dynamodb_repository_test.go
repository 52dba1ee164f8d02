package repository

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestDebugLogDynamoRepository_ListRecent(t *testing.T) {
	item := func(id string, at time.Time) map[string]types.AttributeValue {
		av, err := attributevalue.MarshalMap(debugLogItem{ID: id, FunctionName: "fn", Level: "info", Message: "m", CreatedAt: formatTimestamp(at)})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return av
	}
	base := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	f := &fakeDynamo{scanPages: []*dynamodb.ScanOutput{{Items: []map[string]types.AttributeValue{
		item("old", base),
		item("new", base.Add(2*time.Minute)),
		item("mid", base.Add(time.Minute)),
	}}}}
	repo := &DebugLogDynamoRepository{ddb: f, tableName: "debug_logs"}

	got, err := repo.ListRecent(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "new" || got[1].ID != "mid" {
		t.Fatalf("expected newest two first, got %+v", got)
	}
}
