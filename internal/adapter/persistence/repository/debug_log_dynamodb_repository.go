package repository

import (
	"context"
	"sort"

	"propertyhub/internal/domain/entities"
	"propertyhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultDebugLogsTableName = "debug_logs"

type debugLogItem struct {
	ID           string         `dynamodbav:"id"`
	FunctionName string         `dynamodbav:"function_name"`
	Level        string         `dynamodbav:"level"`
	Message      string         `dynamodbav:"message"`
	Metadata     map[string]any `dynamodbav:"metadata,omitempty"`
	UserID       string         `dynamodbav:"user_id,omitempty"`
	CreatedAt    string         `dynamodbav:"created_at"`
}

// DebugLogDynamoRepository persists DebugLog entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type DebugLogDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IDebugLogRepository = (*DebugLogDynamoRepository)(nil)

func NewDebugLogDynamoRepository(ddb *dynamodb.Client) *DebugLogDynamoRepository {
	return &DebugLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DEBUG_LOGS_TABLE", defaultDebugLogsTableName),
	}
}

func (r *DebugLogDynamoRepository) Create(ctx context.Context, l entities.DebugLog) (entities.DebugLog, error) {
	av, err := attributevalue.MarshalMap(debugLogItem{
		ID:           l.ID,
		FunctionName: l.FunctionName,
		Level:        string(l.Level),
		Message:      l.Message,
		Metadata:     l.Metadata,
		UserID:       l.UserID,
		CreatedAt:    formatTimestamp(l.CreatedAt),
	})
	if err != nil {
		return entities.DebugLog{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.DebugLog{}, err
	}
	return l, nil
}

// ListRecent returns the newest entries first.
func (r *DebugLogDynamoRepository) ListRecent(ctx context.Context, limit int) ([]entities.DebugLog, error) {
	raws, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	items := make([]entities.DebugLog, 0, len(raws))
	for _, raw := range raws {
		var it debugLogItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, entities.DebugLog{
			ID:           it.ID,
			FunctionName: it.FunctionName,
			Level:        entities.LogLevel(it.Level),
			Message:      it.Message,
			Metadata:     it.Metadata,
			UserID:       it.UserID,
			CreatedAt:    parseTimestamp(it.CreatedAt),
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
