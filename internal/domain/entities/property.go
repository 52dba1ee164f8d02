package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PropertyType string

const (
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeCondo     PropertyType = "condo"
	PropertyTypeTownhouse PropertyType = "townhouse"
	PropertyTypeStudio    PropertyType = "studio"
)

func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeCondo, PropertyTypeTownhouse, PropertyTypeStudio:
		return true
	}
	return false
}

type PropertyStatus string

const (
	PropertyStatusAvailable   PropertyStatus = "available"
	PropertyStatusOccupied    PropertyStatus = "occupied"
	PropertyStatusMaintenance PropertyStatus = "maintenance"
	PropertyStatusInactive    PropertyStatus = "inactive"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusOccupied, PropertyStatusMaintenance, PropertyStatusInactive:
		return true
	}
	return false
}

// Property is a rentable unit.
//
// Storage model (DynamoDB):
//   - PK: id
type Property struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	Type        PropertyType    `json:"type"`
	Bedrooms    int             `json:"bedrooms"`
	Bathrooms   int             `json:"bathrooms"`
	Size        int             `json:"size"`
	Rent        decimal.Decimal `json:"rent"`
	Status      PropertyStatus  `json:"status"`
	TenantID    string          `json:"tenant_id,omitempty"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
