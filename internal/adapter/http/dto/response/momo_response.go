package response

import (
	"propertyhub/internal/domain/entities"
	"propertyhub/internal/usecase"
)

type InvoiceResponse struct {
	ReferenceID string           `json:"reference_id"`
	ExternalID  string           `json:"external_id"`
	Flow        string           `json:"flow"`
	Payment     *PaymentResponse `json:"payment,omitempty"`
}

func FromInvoiceResult(r usecase.InvoiceResult) InvoiceResponse {
	res := InvoiceResponse{ReferenceID: r.ReferenceID, ExternalID: r.ExternalID, Flow: string(r.Flow)}
	if r.Payment != nil {
		p := FromPayment(*r.Payment)
		res.Payment = &p
	}
	return res
}

type ProviderTransactionResponse struct {
	ReferenceID            string  `json:"reference_id"`
	ExternalID             string  `json:"external_id,omitempty"`
	Status                 string  `json:"status"`
	RawStatus              string  `json:"raw_status"`
	Amount                 float64 `json:"amount"`
	Currency               string  `json:"currency,omitempty"`
	FinancialTransactionID string  `json:"financial_transaction_id,omitempty"`
	PayerPartyID           string  `json:"payer_party_id,omitempty"`
	ReasonCode             string  `json:"reason_code,omitempty"`
	ReasonMessage          string  `json:"reason_message,omitempty"`
}

func FromProviderTransaction(tx entities.ProviderTransaction) ProviderTransactionResponse {
	return ProviderTransactionResponse{
		ReferenceID:            tx.ReferenceID,
		ExternalID:             tx.ExternalID,
		Status:                 string(tx.Status),
		RawStatus:              tx.RawStatus,
		Amount:                 tx.Amount.InexactFloat64(),
		Currency:               tx.Currency,
		FinancialTransactionID: tx.FinancialTransactionID,
		PayerPartyID:           tx.PayerPartyID,
		ReasonCode:             tx.Reason.Code,
		ReasonMessage:          tx.Reason.Message,
	}
}

type ReconcileResponse struct {
	Payment     PaymentResponse             `json:"payment"`
	Transaction ProviderTransactionResponse `json:"transaction"`
	Updated     bool                        `json:"updated"`
}

func FromReconcileResult(r usecase.ReconcileResult) ReconcileResponse {
	return ReconcileResponse{
		Payment:     FromPayment(r.Payment),
		Transaction: FromProviderTransaction(r.Transaction),
		Updated:     r.Updated,
	}
}

type CheckFailureResponse struct {
	PaymentID string `json:"payment_id"`
	Error     string `json:"error"`
}

type CheckAllResponse struct {
	Checked  int                    `json:"checked"`
	Updated  int                    `json:"updated"`
	Failed   int                    `json:"failed"`
	Results  []ReconcileResponse    `json:"results"`
	Failures []CheckFailureResponse `json:"failures"`
}

func FromCheckAllSummary(s usecase.CheckAllSummary) CheckAllResponse {
	res := CheckAllResponse{
		Checked:  s.Checked,
		Updated:  s.Updated,
		Failed:   s.Failed,
		Results:  make([]ReconcileResponse, 0, len(s.Results)),
		Failures: make([]CheckFailureResponse, 0, len(s.Failures)),
	}
	for _, r := range s.Results {
		res.Results = append(res.Results, FromReconcileResult(r))
	}
	for _, f := range s.Failures {
		res.Failures = append(res.Failures, CheckFailureResponse{PaymentID: f.PaymentID, Error: f.Err.Error()})
	}
	return res
}

type BalanceResponse struct {
	AvailableBalance float64 `json:"available_balance"`
	Currency         string  `json:"currency"`
}

func FromBalance(b entities.AccountBalance) BalanceResponse {
	return BalanceResponse{AvailableBalance: b.AvailableBalance.InexactFloat64(), Currency: b.Currency}
}
