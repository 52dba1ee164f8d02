package request

import (
	"propertyhub/internal/domain/entities"
	"propertyhub/internal/usecase"

	"github.com/shopspring/decimal"
)

type PaymentCreateRequest struct {
	TenantID      string          `json:"tenant_id"`
	PropertyID    string          `json:"property_id"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       string          `json:"due_date" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"omitempty,oneof=mtn_momo bank_transfer cash check"`
	Notes         string          `json:"notes"`
}

func (r PaymentCreateRequest) ToInput() (usecase.PaymentInput, error) {
	due, err := parseDate(r.DueDate)
	if err != nil {
		return usecase.PaymentInput{}, err
	}
	return usecase.PaymentInput{
		TenantID:      r.TenantID,
		PropertyID:    r.PropertyID,
		Amount:        r.Amount,
		DueDate:       due,
		PaymentMethod: entities.PaymentMethod(r.PaymentMethod),
		Notes:         r.Notes,
	}, nil
}

// PaymentUpdateRequest holds the admin-editable fields. Provider fields are
// not accepted here.
type PaymentUpdateRequest struct {
	TenantID      *string          `json:"tenant_id"`
	PropertyID    *string          `json:"property_id"`
	Amount        *decimal.Decimal `json:"amount"`
	DueDate       *string          `json:"due_date"`
	PaymentMethod *string          `json:"payment_method" binding:"omitempty,oneof=mtn_momo bank_transfer cash check"`
	Status        *string          `json:"status" binding:"omitempty,oneof=pending paid overdue failed expired cancelled"`
	PaidDate      *string          `json:"paid_date"`
	Notes         *string          `json:"notes"`
}

func (r PaymentUpdateRequest) ToPatch() (usecase.PaymentPatch, error) {
	patch := usecase.PaymentPatch{
		TenantID:   r.TenantID,
		PropertyID: r.PropertyID,
		Amount:     r.Amount,
		Notes:      r.Notes,
	}
	if r.DueDate != nil {
		d, err := parseDate(*r.DueDate)
		if err != nil {
			return usecase.PaymentPatch{}, err
		}
		patch.DueDate = &d
	}
	if r.PaidDate != nil {
		d, err := parseDate(*r.PaidDate)
		if err != nil {
			return usecase.PaymentPatch{}, err
		}
		patch.PaidDate = &d
	}
	if r.PaymentMethod != nil {
		m := entities.PaymentMethod(*r.PaymentMethod)
		patch.PaymentMethod = &m
	}
	if r.Status != nil {
		s := entities.PaymentStatus(*r.Status)
		patch.Status = &s
	}
	return patch, nil
}
