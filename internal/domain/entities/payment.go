package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used for due, paid and lease dates.
const DateLayout = "2006-01-02"

// PaymentStatus is the local payment status.
//
// It is the single source of truth for expiry: the reconciler persists
// `expired` when a still-open provider request outlives the due date.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusOverdue   PaymentStatus = "overdue"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusExpired   PaymentStatus = "expired"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusOverdue,
		PaymentStatusFailed, PaymentStatusExpired, PaymentStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether reconciliation may no longer change the status.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusFailed, PaymentStatusCancelled:
		return true
	}
	return false
}

// OpenPaymentStatuses lists the statuses a reconciliation is allowed to overwrite.
func OpenPaymentStatuses() []PaymentStatus {
	return []PaymentStatus{PaymentStatusPending, PaymentStatusOverdue, PaymentStatusExpired}
}

type PaymentMethod string

const (
	PaymentMethodMTNMoMo      PaymentMethod = "mtn_momo"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCheck        PaymentMethod = "check"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodMTNMoMo, PaymentMethodBankTransfer, PaymentMethodCash, PaymentMethodCheck:
		return true
	}
	return false
}

// MoMoFlow names the provider endpoint family a payment was linked through.
type MoMoFlow string

const (
	MoMoFlowInvoice      MoMoFlow = "invoice"
	MoMoFlowRequestToPay MoMoFlow = "request_to_pay"
)

func (f MoMoFlow) Valid() bool {
	return f == MoMoFlowInvoice || f == MoMoFlowRequestToPay
}

// Payment is a rent payment row.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (tenant_id-index): tenant_id
//   - GSI (status-index): status
//
// The momo_* fields are written only by the reconciliation path, never by
// the admin update endpoint.
type Payment struct {
	ID            string          `json:"id"`
	TenantID      string          `json:"tenant_id"`
	PropertyID    string          `json:"property_id"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       time.Time       `json:"due_date"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Status        PaymentStatus   `json:"status"`
	PaidDate      *time.Time      `json:"paid_date,omitempty"`
	Notes         string          `json:"notes,omitempty"`

	MoMoFlow                   MoMoFlow `json:"momo_flow,omitempty"`
	MoMoReferenceID            string   `json:"momo_reference_id,omitempty"`
	MoMoExternalID             string   `json:"momo_external_id,omitempty"`
	MoMoInvoiceStatus          string   `json:"momo_invoice_status,omitempty"`
	MoMoRequestStatus          string   `json:"momo_request_status,omitempty"`
	MoMoErrorCode              string   `json:"momo_error_code,omitempty"`
	MoMoErrorMessage           string   `json:"momo_error_message,omitempty"`
	MoMoFinancialTransactionID string   `json:"momo_financial_transaction_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p Payment) HasProviderReference() bool {
	return strings.TrimSpace(p.MoMoReferenceID) != ""
}

// ProviderStatusRaw returns the last raw provider status for the payment's flow.
func (p Payment) ProviderStatusRaw() string {
	if p.MoMoFlow == MoMoFlowRequestToPay {
		return p.MoMoRequestStatus
	}
	return p.MoMoInvoiceStatus
}

// DisplayStatus renders the admin-facing label from persisted fields only.
func (p Payment) DisplayStatus() string {
	switch p.Status {
	case PaymentStatusPaid:
		return "Paid"
	case PaymentStatusExpired:
		return "Expired"
	case PaymentStatusCancelled:
		return "Cancelled"
	case PaymentStatusFailed:
		if p.MoMoErrorMessage != "" {
			return "Failed: " + p.MoMoErrorMessage
		}
		return "Failed"
	case PaymentStatusOverdue:
		return "Overdue"
	}
	if !p.HasProviderReference() {
		return "Pending"
	}
	if ParseProviderStatus(p.ProviderStatusRaw()) == ProviderStatusOngoing {
		return "Processing"
	}
	return "Awaiting payment"
}
