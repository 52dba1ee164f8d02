package request

import (
	"propertyhub/internal/domain/entities"
	"propertyhub/internal/usecase"
	"strings"

	"github.com/shopspring/decimal"
)

type PropertyCreateRequest struct {
	Name        string          `json:"name" binding:"required"`
	Address     string          `json:"address" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=apartment house condo townhouse studio"`
	Bedrooms    int             `json:"bedrooms" binding:"min=0,max=20"`
	Bathrooms   int             `json:"bathrooms" binding:"min=0,max=20"`
	Size        int             `json:"size" binding:"required,min=1,max=100000"`
	Rent        decimal.Decimal `json:"rent"`
	Status      string          `json:"status" binding:"omitempty,oneof=available occupied maintenance inactive"`
	Description string          `json:"description"`
}

func (r PropertyCreateRequest) ToInput() usecase.PropertyInput {
	return usecase.PropertyInput{
		Name:        r.Name,
		Address:     r.Address,
		Type:        entities.PropertyType(strings.ToLower(r.Type)),
		Bedrooms:    r.Bedrooms,
		Bathrooms:   r.Bathrooms,
		Size:        r.Size,
		Rent:        r.Rent,
		Status:      entities.PropertyStatus(r.Status),
		Description: r.Description,
	}
}

// PropertyUpdateRequest is a partial update; absent fields keep their value.
type PropertyUpdateRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1"`
	Address     *string          `json:"address" binding:"omitempty,min=1"`
	Type        *string          `json:"type" binding:"omitempty,oneof=apartment house condo townhouse studio"`
	Bedrooms    *int             `json:"bedrooms" binding:"omitempty,min=0,max=20"`
	Bathrooms   *int             `json:"bathrooms" binding:"omitempty,min=0,max=20"`
	Size        *int             `json:"size" binding:"omitempty,min=1,max=100000"`
	Rent        *decimal.Decimal `json:"rent"`
	Status      *string          `json:"status" binding:"omitempty,oneof=available occupied maintenance inactive"`
	Description *string          `json:"description"`
}

func (r PropertyUpdateRequest) ToPatch() usecase.PropertyPatch {
	patch := usecase.PropertyPatch{
		Name:        r.Name,
		Address:     r.Address,
		Bedrooms:    r.Bedrooms,
		Bathrooms:   r.Bathrooms,
		Size:        r.Size,
		Rent:        r.Rent,
		Description: r.Description,
	}
	if r.Type != nil {
		t := entities.PropertyType(*r.Type)
		patch.Type = &t
	}
	if r.Status != nil {
		s := entities.PropertyStatus(*r.Status)
		patch.Status = &s
	}
	return patch
}

type AssignTenantRequest struct {
	TenantID string `json:"tenant_id" binding:"required"`
}
