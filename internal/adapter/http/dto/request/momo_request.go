package request

import (
	"encoding/json"
	"propertyhub/internal/domain/entities"
	"propertyhub/internal/usecase"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceRequest asks the payer at Phone (international format, leading +) to pay Amount.
type InvoiceRequest struct {
	Phone         string          `json:"phone" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency" binding:"omitempty,len=3"`
	Description   string          `json:"description" binding:"max=160"`
	ValidityHours int             `json:"validity_hours"`
	Flow          string          `json:"flow" binding:"omitempty,oneof=invoice request_to_pay"`
	PaymentID     string          `json:"payment_id"`
}

// ToCommand builds the command; a non-empty paymentID from the path wins over the body.
func (r InvoiceRequest) ToCommand(paymentID string) usecase.InvoiceCommand {
	if paymentID == "" {
		paymentID = r.PaymentID
	}
	return usecase.InvoiceCommand{
		PaymentID:     paymentID,
		Phone:         r.Phone,
		Amount:        r.Amount,
		Currency:      r.Currency,
		Description:   r.Description,
		ValidityHours: r.ValidityHours,
		Flow:          entities.MoMoFlow(r.Flow),
	}
}

// WaitQuery bounds the wait loop, in seconds.
type WaitQuery struct {
	Timeout  int `form:"timeout" binding:"omitempty,min=1,max=300"`
	Interval int `form:"interval" binding:"omitempty,min=1,max=60"`
}

func (q WaitQuery) Durations() (timeout, interval time.Duration) {
	return time.Duration(q.Timeout) * time.Second, time.Duration(q.Interval) * time.Second
}

// CallbackRequest is the body the provider posts to the callback URL.
type CallbackRequest struct {
	ReferenceID            string          `json:"referenceId"`
	ExternalID             string          `json:"externalId" binding:"required"`
	Status                 string          `json:"status" binding:"required"`
	Amount                 decimal.Decimal `json:"amount"`
	Currency               string          `json:"currency"`
	FinancialTransactionID string          `json:"financialTransactionId"`
	Reason                 json.RawMessage `json:"reason"`
}

func (r CallbackRequest) ToCommand() usecase.CallbackCommand {
	return usecase.CallbackCommand{
		ExternalID:             r.ExternalID,
		ReferenceID:            r.ReferenceID,
		Status:                 r.Status,
		Amount:                 r.Amount,
		Currency:               r.Currency,
		FinancialTransactionID: r.FinancialTransactionID,
		Reason:                 parseReason(r.Reason),
	}
}

// parseReason accepts both {"code","message"} and a bare string.
func parseReason(raw json.RawMessage) entities.ProviderReason {
	if len(raw) == 0 || string(raw) == "null" {
		return entities.ProviderReason{}
	}
	var obj entities.ProviderReason
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj
	}
	var code string
	if err := json.Unmarshal(raw, &code); err == nil {
		return entities.ProviderReason{Code: strings.TrimSpace(code)}
	}
	return entities.ProviderReason{}
}
