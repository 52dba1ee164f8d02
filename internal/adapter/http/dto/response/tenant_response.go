package response

import (
	"propertyhub/internal/domain/entities"
	"time"
)

type EmergencyContactResponse struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship,omitempty"`
}

type TenantResponse struct {
	ID                string                     `json:"id"`
	Name              string                     `json:"name"`
	Email             string                     `json:"email"`
	Phone             string                     `json:"phone,omitempty"`
	Rent              float64                    `json:"rent"`
	Deposit           float64                    `json:"deposit"`
	LeaseStart        *string                    `json:"lease_start"`
	LeaseEnd          *string                    `json:"lease_end"`
	Status            string                     `json:"status"`
	PropertyID        string                     `json:"property_id,omitempty"`
	EmergencyContacts []EmergencyContactResponse `json:"emergency_contacts"`
	IDDocumentURL     string                     `json:"id_document_url,omitempty"`
	LeaseDocumentURL  string                     `json:"lease_document_url,omitempty"`
	Notes             string                     `json:"notes,omitempty"`
	CreatedAt         time.Time                  `json:"created_at"`
	UpdatedAt         time.Time                  `json:"updated_at"`
}

func FromTenant(t entities.Tenant) TenantResponse {
	contacts := make([]EmergencyContactResponse, 0, len(t.EmergencyContacts))
	for _, c := range t.EmergencyContacts {
		contacts = append(contacts, EmergencyContactResponse{Name: c.Name, Phone: c.Phone, Relationship: c.Relationship})
	}
	return TenantResponse{
		ID:                t.ID,
		Name:              t.Name,
		Email:             t.Email,
		Phone:             t.Phone,
		Rent:              t.Rent.InexactFloat64(),
		Deposit:           t.Deposit.InexactFloat64(),
		LeaseStart:        formatOptionalDate(t.LeaseStart),
		LeaseEnd:          formatOptionalDate(t.LeaseEnd),
		Status:            string(t.Status),
		PropertyID:        t.PropertyID,
		EmergencyContacts: contacts,
		IDDocumentURL:     t.IDDocumentURL,
		LeaseDocumentURL:  t.LeaseDocumentURL,
		Notes:             t.Notes,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func FromTenants(ts []entities.Tenant) []TenantResponse {
	out := make([]TenantResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTenant(t))
	}
	return out
}
