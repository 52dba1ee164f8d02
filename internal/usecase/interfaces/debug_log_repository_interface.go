package interfaces

import (
	"context"
	"propertyhub/internal/domain/entities"
)

type IDebugLogRepository interface {
	Create(ctx context.Context, l entities.DebugLog) (entities.DebugLog, error)
	ListRecent(ctx context.Context, limit int) ([]entities.DebugLog, error)
}
