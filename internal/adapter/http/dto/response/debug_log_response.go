package response

import (
	"propertyhub/internal/domain/entities"
	"time"
)

type DebugLogResponse struct {
	ID           string         `json:"id"`
	FunctionName string         `json:"function_name"`
	Level        string         `json:"level"`
	Message      string         `json:"message"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	UserID       string         `json:"user_id,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

func FromDebugLog(l entities.DebugLog) DebugLogResponse {
	return DebugLogResponse{
		ID:           l.ID,
		FunctionName: l.FunctionName,
		Level:        string(l.Level),
		Message:      l.Message,
		Metadata:     l.Metadata,
		UserID:       l.UserID,
		CreatedAt:    l.CreatedAt,
	}
}

func FromDebugLogs(ls []entities.DebugLog) []DebugLogResponse {
	out := make([]DebugLogResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, FromDebugLog(l))
	}
	return out
}
