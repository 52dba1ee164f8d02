package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ProviderStatus is the closed set of statuses reported by the mobile-money
// provider across the invoice and request-to-pay endpoint families.
type ProviderStatus string

const (
	ProviderStatusCreated    ProviderStatus = "CREATED"
	ProviderStatusPending    ProviderStatus = "PENDING"
	ProviderStatusOngoing    ProviderStatus = "ONGOING"
	ProviderStatusSuccessful ProviderStatus = "SUCCESSFUL"
	ProviderStatusFailed     ProviderStatus = "FAILED"
	ProviderStatusRejected   ProviderStatus = "REJECTED"
	ProviderStatusCancelled  ProviderStatus = "CANCELLED"
	ProviderStatusUnknown    ProviderStatus = "UNKNOWN"
)

// ParseProviderStatus never fails: unrecognised values become ProviderStatusUnknown.
func ParseProviderStatus(raw string) ProviderStatus {
	switch s := ProviderStatus(strings.ToUpper(strings.TrimSpace(raw))); s {
	case ProviderStatusCreated, ProviderStatusPending, ProviderStatusOngoing,
		ProviderStatusSuccessful, ProviderStatusFailed, ProviderStatusRejected,
		ProviderStatusCancelled:
		return s
	}
	return ProviderStatusUnknown
}

// IsTerminal reports whether the provider will not report a different status later.
func (s ProviderStatus) IsTerminal() bool {
	switch s {
	case ProviderStatusSuccessful, ProviderStatusFailed, ProviderStatusRejected, ProviderStatusCancelled:
		return true
	}
	return false
}

type ProviderReason struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// ProviderTransaction is the provider's view of an invoice or request-to-pay.
type ProviderTransaction struct {
	ReferenceID            string          `json:"reference_id"`
	ExternalID             string          `json:"external_id,omitempty"`
	Status                 ProviderStatus  `json:"status"`
	RawStatus              string          `json:"raw_status"`
	Amount                 decimal.Decimal `json:"amount"`
	Currency               string          `json:"currency,omitempty"`
	FinancialTransactionID string          `json:"financial_transaction_id,omitempty"`
	PayerPartyID           string          `json:"payer_party_id,omitempty"`
	Reason                 ProviderReason  `json:"reason,omitempty"`
}

// Reconciliation is the set of fields a provider status maps onto a payment row.
type Reconciliation struct {
	Status                 PaymentStatus
	ProviderStatus         ProviderStatus
	RawStatus              string
	PaidDate               *time.Time
	FinancialTransactionID string
	ErrorCode              string
	ErrorMessage           string
	Unexpected             bool
}

// MapProviderStatus is total over ProviderStatus.
//
// A zero dueDate never expires. The due date counts from its UTC midnight, so
// a request still open at any later instant, the due date included, expires.
func MapProviderStatus(tx ProviderTransaction, dueDate, now time.Time) Reconciliation {
	today := truncateToDate(now)
	rec := Reconciliation{
		ProviderStatus: tx.Status,
		RawStatus:      tx.RawStatus,
	}
	if rec.RawStatus == "" {
		rec.RawStatus = string(tx.Status)
	}

	switch tx.Status {
	case ProviderStatusCreated, ProviderStatusPending, ProviderStatusOngoing:
		rec.Status = PaymentStatusPending
		if !dueDate.IsZero() && now.After(truncateToDate(dueDate)) {
			rec.Status = PaymentStatusExpired
		}
	case ProviderStatusSuccessful:
		rec.Status = PaymentStatusPaid
		rec.PaidDate = &today
		rec.FinancialTransactionID = tx.FinancialTransactionID
	case ProviderStatusFailed, ProviderStatusRejected, ProviderStatusCancelled:
		rec.Status = PaymentStatusFailed
		rec.ErrorCode = tx.Reason.Code
		rec.ErrorMessage = tx.Reason.Message
	default:
		rec.Status = PaymentStatusPending
		rec.Unexpected = true
	}
	return rec
}

func truncateToDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
