package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type TenantStatus string

const (
	TenantStatusActive   TenantStatus = "active"
	TenantStatusInactive TenantStatus = "inactive"
	TenantStatusOverdue  TenantStatus = "overdue"
	TenantStatusPending  TenantStatus = "pending"
)

func (s TenantStatus) Valid() bool {
	switch s {
	case TenantStatusActive, TenantStatusInactive, TenantStatusOverdue, TenantStatusPending:
		return true
	}
	return false
}

type EmergencyContact struct {
	Name         string `json:"name" dynamodbav:"name"`
	Phone        string `json:"phone" dynamodbav:"phone"`
	Relationship string `json:"relationship,omitempty" dynamodbav:"relationship,omitempty"`
}

// Tenant is a person renting a property.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Document URLs point at blob storage managed elsewhere.
type Tenant struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Email             string             `json:"email"`
	Phone             string             `json:"phone"`
	Rent              decimal.Decimal    `json:"rent"`
	Deposit           decimal.Decimal    `json:"deposit"`
	LeaseStart        *time.Time         `json:"lease_start,omitempty"`
	LeaseEnd          *time.Time         `json:"lease_end,omitempty"`
	Status            TenantStatus       `json:"status"`
	PropertyID        string             `json:"property_id,omitempty"`
	EmergencyContacts []EmergencyContact `json:"emergency_contacts,omitempty"`
	IDDocumentURL     string             `json:"id_document_url,omitempty"`
	LeaseDocumentURL  string             `json:"lease_document_url,omitempty"`
	Notes             string             `json:"notes,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}
