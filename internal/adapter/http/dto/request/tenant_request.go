package request

import (
	"errors"
	"propertyhub/internal/domain/entities"
	"propertyhub/internal/usecase"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidDate = errors.New("dates must use YYYY-MM-DD")

type EmergencyContactRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required,msisdn"`
	Relationship string `json:"relationship"`
}

type TenantCreateRequest struct {
	Name              string                    `json:"name" binding:"required"`
	Email             string                    `json:"email" binding:"required,email"`
	Phone             string                    `json:"phone" binding:"omitempty,msisdn"`
	Rent              decimal.Decimal           `json:"rent"`
	Deposit           decimal.Decimal           `json:"deposit"`
	LeaseStart        string                    `json:"lease_start"`
	LeaseEnd          string                    `json:"lease_end"`
	Status            string                    `json:"status" binding:"omitempty,oneof=active inactive overdue pending"`
	PropertyID        string                    `json:"property_id"`
	EmergencyContacts []EmergencyContactRequest `json:"emergency_contacts" binding:"omitempty,max=5,dive"`
	IDDocumentURL     string                    `json:"id_document_url" binding:"omitempty,url"`
	LeaseDocumentURL  string                    `json:"lease_document_url" binding:"omitempty,url"`
	Notes             string                    `json:"notes"`
}

func (r TenantCreateRequest) ToInput() (usecase.TenantInput, error) {
	start, err := parseOptionalDate(r.LeaseStart)
	if err != nil {
		return usecase.TenantInput{}, err
	}
	end, err := parseOptionalDate(r.LeaseEnd)
	if err != nil {
		return usecase.TenantInput{}, err
	}
	return usecase.TenantInput{
		Name:              r.Name,
		Email:             r.Email,
		Phone:             r.Phone,
		Rent:              r.Rent,
		Deposit:           r.Deposit,
		LeaseStart:        start,
		LeaseEnd:          end,
		Status:            entities.TenantStatus(r.Status),
		PropertyID:        r.PropertyID,
		EmergencyContacts: toEmergencyContacts(r.EmergencyContacts),
		IDDocumentURL:     r.IDDocumentURL,
		LeaseDocumentURL:  r.LeaseDocumentURL,
		Notes:             r.Notes,
	}, nil
}

type TenantUpdateRequest struct {
	Name              *string                    `json:"name" binding:"omitempty,min=1"`
	Email             *string                    `json:"email" binding:"omitempty,email"`
	Phone             *string                    `json:"phone" binding:"omitempty,msisdn"`
	Rent              *decimal.Decimal           `json:"rent"`
	Deposit           *decimal.Decimal           `json:"deposit"`
	LeaseStart        *string                    `json:"lease_start"`
	LeaseEnd          *string                    `json:"lease_end"`
	Status            *string                    `json:"status" binding:"omitempty,oneof=active inactive overdue pending"`
	EmergencyContacts *[]EmergencyContactRequest `json:"emergency_contacts" binding:"omitempty,max=5,dive"`
	IDDocumentURL     *string                    `json:"id_document_url" binding:"omitempty,url"`
	LeaseDocumentURL  *string                    `json:"lease_document_url" binding:"omitempty,url"`
	Notes             *string                    `json:"notes"`
}

func (r TenantUpdateRequest) ToPatch() (usecase.TenantPatch, error) {
	patch := usecase.TenantPatch{
		Name:             r.Name,
		Email:            r.Email,
		Phone:            r.Phone,
		Rent:             r.Rent,
		Deposit:          r.Deposit,
		IDDocumentURL:    r.IDDocumentURL,
		LeaseDocumentURL: r.LeaseDocumentURL,
		Notes:            r.Notes,
	}
	if r.LeaseStart != nil {
		d, err := parseDate(*r.LeaseStart)
		if err != nil {
			return usecase.TenantPatch{}, err
		}
		patch.LeaseStart = &d
	}
	if r.LeaseEnd != nil {
		d, err := parseDate(*r.LeaseEnd)
		if err != nil {
			return usecase.TenantPatch{}, err
		}
		patch.LeaseEnd = &d
	}
	if r.Status != nil {
		s := entities.TenantStatus(*r.Status)
		patch.Status = &s
	}
	if r.EmergencyContacts != nil {
		contacts := toEmergencyContacts(*r.EmergencyContacts)
		patch.EmergencyContacts = &contacts
	}
	return patch, nil
}

func toEmergencyContacts(in []EmergencyContactRequest) []entities.EmergencyContact {
	if len(in) == 0 {
		return nil
	}
	out := make([]entities.EmergencyContact, 0, len(in))
	for _, c := range in {
		out = append(out, entities.EmergencyContact{Name: c.Name, Phone: c.Phone, Relationship: c.Relationship})
	}
	return out
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(entities.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
