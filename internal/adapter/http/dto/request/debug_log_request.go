package request

import "propertyhub/internal/domain/entities"

type DebugLogCreateRequest struct {
	FunctionName string         `json:"function_name" binding:"required"`
	Level        string         `json:"level" binding:"omitempty,oneof=debug info warn error"`
	Message      string         `json:"message" binding:"required"`
	Metadata     map[string]any `json:"metadata"`
	UserID       string         `json:"user_id"`
}

func (r DebugLogCreateRequest) ToEntity() entities.DebugLog {
	return entities.DebugLog{
		FunctionName: r.FunctionName,
		Level:        entities.LogLevel(r.Level),
		Message:      r.Message,
		Metadata:     r.Metadata,
		UserID:       r.UserID,
	}
}
