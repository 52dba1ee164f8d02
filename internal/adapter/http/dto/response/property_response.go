package response

import (
	"propertyhub/internal/domain/entities"
	"time"
)

type PropertyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Type        string    `json:"type"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   int       `json:"bathrooms"`
	Size        int       `json:"size"`
	Rent        float64   `json:"rent"`
	Status      string    `json:"status"`
	TenantID    string    `json:"tenant_id,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromProperty(p entities.Property) PropertyResponse {
	return PropertyResponse{
		ID:          p.ID,
		Name:        p.Name,
		Address:     p.Address,
		Type:        string(p.Type),
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		Size:        p.Size,
		Rent:        p.Rent.InexactFloat64(),
		Status:      string(p.Status),
		TenantID:    p.TenantID,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProperties(ps []entities.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProperty(p))
	}
	return out
}
