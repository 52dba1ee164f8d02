package response

import (
	"propertyhub/internal/domain/entities"
	"time"
)

type PaymentResponse struct {
	ID            string  `json:"id"`
	TenantID      string  `json:"tenant_id,omitempty"`
	PropertyID    string  `json:"property_id,omitempty"`
	Amount        float64 `json:"amount"`
	DueDate       string  `json:"due_date"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`
	DisplayStatus string  `json:"display_status"`
	PaidDate      *string `json:"paid_date"`
	Notes         string  `json:"notes,omitempty"`

	MoMoFlow                   string `json:"momo_flow,omitempty"`
	MoMoReferenceID            string `json:"momo_reference_id,omitempty"`
	MoMoExternalID             string `json:"momo_external_id,omitempty"`
	MoMoInvoiceStatus          string `json:"momo_invoice_status,omitempty"`
	MoMoRequestStatus          string `json:"momo_request_status,omitempty"`
	MoMoErrorCode              string `json:"momo_error_code,omitempty"`
	MoMoErrorMessage           string `json:"momo_error_message,omitempty"`
	MoMoFinancialTransactionID string `json:"momo_financial_transaction_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                         p.ID,
		TenantID:                   p.TenantID,
		PropertyID:                 p.PropertyID,
		Amount:                     p.Amount.InexactFloat64(),
		DueDate:                    formatDate(p.DueDate),
		PaymentMethod:              string(p.PaymentMethod),
		Status:                     string(p.Status),
		DisplayStatus:              p.DisplayStatus(),
		PaidDate:                   formatOptionalDate(p.PaidDate),
		Notes:                      p.Notes,
		MoMoFlow:                   string(p.MoMoFlow),
		MoMoReferenceID:            p.MoMoReferenceID,
		MoMoExternalID:             p.MoMoExternalID,
		MoMoInvoiceStatus:          p.MoMoInvoiceStatus,
		MoMoRequestStatus:          p.MoMoRequestStatus,
		MoMoErrorCode:              p.MoMoErrorCode,
		MoMoErrorMessage:           p.MoMoErrorMessage,
		MoMoFinancialTransactionID: p.MoMoFinancialTransactionID,
		CreatedAt:                  p.CreatedAt,
		UpdatedAt:                  p.UpdatedAt,
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(entities.DateLayout)
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := formatDate(*t)
	return &s
}
