package usecase

import (
	"context"
	"errors"
	"propertyhub/internal/domain/entities"
	"propertyhub/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidDebugLog = errors.New("invalid debug log")

const (
	defaultDebugLogLimit = 50
	maxDebugLogLimit     = 500
)

type IDebugLogUseCase interface {
	Record(ctx context.Context, entry entities.DebugLog) (entities.DebugLog, error)
	ListRecent(ctx context.Context, limit int) ([]entities.DebugLog, error)
}

type DebugLogUseCase struct {
	repo interfaces.IDebugLogRepository
	now  func() time.Time
}

var _ IDebugLogUseCase = (*DebugLogUseCase)(nil)

func NewDebugLogUseCase(repo interfaces.IDebugLogRepository) *DebugLogUseCase {
	return &DebugLogUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *DebugLogUseCase) Record(ctx context.Context, entry entities.DebugLog) (entities.DebugLog, error) {
	entry.FunctionName = strings.TrimSpace(entry.FunctionName)
	entry.Message = strings.TrimSpace(entry.Message)
	if entry.Level == "" {
		entry.Level = entities.LogLevelInfo
	}
	if entry.FunctionName == "" || entry.Message == "" || !entry.Level.Valid() {
		return entities.DebugLog{}, ErrInvalidDebugLog
	}

	entry.ID = uuid.NewString()
	entry.CreatedAt = u.now()
	return u.repo.Create(ctx, entry)
}

// ListRecent returns the newest entries first. limit is clamped to 1..500, 0 means 50.
func (u *DebugLogUseCase) ListRecent(ctx context.Context, limit int) ([]entities.DebugLog, error) {
	switch {
	case limit <= 0:
		limit = defaultDebugLogLimit
	case limit > maxDebugLogLimit:
		limit = maxDebugLogLimit
	}
	return u.repo.ListRecent(ctx, limit)
}
