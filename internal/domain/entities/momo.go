package entities

import "github.com/shopspring/decimal"

// CollectionRequest is what the provider needs to send a payer a collection request.
type CollectionRequest struct {
	ReferenceID   string
	ExternalID    string
	PayerMSISDN   string
	Amount        decimal.Decimal
	Currency      string
	Description   string
	ValidityHours int
	CallbackURL   string
}

type AccountBalance struct {
	AvailableBalance decimal.Decimal `json:"available_balance"`
	Currency         string          `json:"currency"`
}
