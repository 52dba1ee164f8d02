package payments

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"propertyhub/internal/domain/entities"
	"propertyhub/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const partyIDTypeMSISDN = "MSISDN"

type party struct {
	PartyIDType string `json:"partyIdType"`
	PartyID     string `json:"partyId"`
}

type invoiceBody struct {
	ExternalID       string `json:"externalId"`
	Amount           string `json:"amount"`
	Currency         string `json:"currency"`
	ValidityDuration string `json:"validityDuration"`
	IntendedPayer    party  `json:"intendedPayer"`
	Payee            *party `json:"payee,omitempty"`
	Description      string `json:"description,omitempty"`
}

type requestToPayBody struct {
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	ExternalID   string `json:"externalId"`
	Payer        party  `json:"payer"`
	PayerMessage string `json:"payerMessage,omitempty"`
	PayeeNote    string `json:"payeeNote,omitempty"`
}

type cancelInvoiceBody struct {
	ExternalID string `json:"externalId"`
}

// statusBody covers both GET requesttopay/{ref} and GET invoice/{ref}.
type statusBody struct {
	ReferenceID            string `json:"referenceId"`
	ExternalID             string `json:"externalId"`
	Amount                 string `json:"amount"`
	Currency               string `json:"currency"`
	Status                 string `json:"status"`
	FinancialTransactionID string `json:"financialTransactionId"`
	Payer                  *party `json:"payer"`
	IntendedPayer          *party `json:"intendedPayer"`
	Reason                 *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"reason"`
	// Some sandbox responses send reason as a bare string.
	ErrorReason string `json:"errorReason"`
}

type balanceBody struct {
	AvailableBalance string `json:"availableBalance"`
	Currency         string `json:"currency"`
}

func (g *MoMoGateway) CreateInvoice(ctx context.Context, req entities.CollectionRequest) (string, error) {
	referenceID := referenceIDFor(req)
	if g.mockMode {
		return g.mock.create(referenceID, req), nil
	}

	body := invoiceBody{
		ExternalID:       req.ExternalID,
		Amount:           req.Amount.String(),
		Currency:         req.Currency,
		ValidityDuration: strconv.Itoa(req.ValidityHours * 3600),
		IntendedPayer:    party{PartyIDType: partyIDTypeMSISDN, PartyID: req.PayerMSISDN},
		Description:      req.Description,
	}
	if g.cfg.PayeeMSISDN != "" {
		body.Payee = &party{PartyIDType: partyIDTypeMSISDN, PartyID: g.cfg.PayeeMSISDN}
	}

	log.Printf("[momo][gateway] create-invoice start reference_id=%s external_id=%s", referenceID, req.ExternalID)
	_, err := g.do(ctx, "create-invoice", http.MethodPost, "/collection/v2_0/invoice", map[string]string{
		headerReferenceID: referenceID,
		headerCallbackURL: g.callbackURL(req),
	}, body, nil)
	if err != nil {
		return "", err
	}
	log.Printf("[momo][gateway] create-invoice success reference_id=%s", referenceID)
	return referenceID, nil
}

func (g *MoMoGateway) GetInvoiceStatus(ctx context.Context, referenceID string) (entities.ProviderTransaction, error) {
	if g.mockMode {
		return g.mock.status(referenceID)
	}
	var resp statusBody
	if _, err := g.do(ctx, "invoice-status", http.MethodGet, "/collection/v2_0/invoice/"+url.PathEscape(referenceID), nil, nil, &resp); err != nil {
		return entities.ProviderTransaction{}, err
	}
	return resp.toTransaction(referenceID), nil
}

func (g *MoMoGateway) CancelInvoice(ctx context.Context, referenceID, externalID string) error {
	if g.mockMode {
		return g.mock.cancel(referenceID)
	}
	log.Printf("[momo][gateway] cancel-invoice start reference_id=%s", referenceID)
	_, err := g.do(ctx, "cancel-invoice", http.MethodDelete, "/collection/v2_0/invoice/"+url.PathEscape(referenceID), map[string]string{
		headerReferenceID: uuid.NewString(),
		headerCallbackURL: g.cfg.CallbackURL,
	}, cancelInvoiceBody{ExternalID: externalID}, nil)
	return err
}

func (g *MoMoGateway) RequestToPay(ctx context.Context, req entities.CollectionRequest) (string, error) {
	referenceID := referenceIDFor(req)
	if g.mockMode {
		return g.mock.create(referenceID, req), nil
	}

	body := requestToPayBody{
		Amount:       req.Amount.String(),
		Currency:     req.Currency,
		ExternalID:   req.ExternalID,
		Payer:        party{PartyIDType: partyIDTypeMSISDN, PartyID: strings.TrimPrefix(req.PayerMSISDN, "+")},
		PayerMessage: req.Description,
		PayeeNote:    req.Description,
	}

	log.Printf("[momo][gateway] request-to-pay start reference_id=%s external_id=%s", referenceID, req.ExternalID)
	_, err := g.do(ctx, "request-to-pay", http.MethodPost, "/collection/v1_0/requesttopay", map[string]string{
		headerReferenceID: referenceID,
		headerCallbackURL: g.callbackURL(req),
	}, body, nil)
	if err != nil {
		return "", err
	}
	log.Printf("[momo][gateway] request-to-pay success reference_id=%s", referenceID)
	return referenceID, nil
}

func (g *MoMoGateway) GetRequestToPayStatus(ctx context.Context, referenceID string) (entities.ProviderTransaction, error) {
	if g.mockMode {
		return g.mock.status(referenceID)
	}
	var resp statusBody
	if _, err := g.do(ctx, "request-to-pay-status", http.MethodGet, "/collection/v1_0/requesttopay/"+url.PathEscape(referenceID), nil, nil, &resp); err != nil {
		return entities.ProviderTransaction{}, err
	}
	return resp.toTransaction(referenceID), nil
}

func (g *MoMoGateway) GetBalance(ctx context.Context) (entities.AccountBalance, error) {
	if g.mockMode {
		return entities.AccountBalance{AvailableBalance: decimal.NewFromInt(1000000), Currency: g.cfg.Currency}, nil
	}
	var resp balanceBody
	if _, err := g.do(ctx, "balance", http.MethodGet, "/collection/v1_0/account/balance", nil, nil, &resp); err != nil {
		return entities.AccountBalance{}, err
	}
	available, err := decimal.NewFromString(resp.AvailableBalance)
	if err != nil {
		return entities.AccountBalance{}, &ProviderError{
			Op:   "balance",
			Body: fmt.Sprintf("invalid availableBalance %q: %v", resp.AvailableBalance, err),
			kind: interfaces.ErrProviderRequest,
		}
	}
	return entities.AccountBalance{AvailableBalance: available, Currency: resp.Currency}, nil
}

func (g *MoMoGateway) callbackURL(req entities.CollectionRequest) string {
	if req.CallbackURL != "" {
		return req.CallbackURL
	}
	return g.cfg.CallbackURL
}

func referenceIDFor(req entities.CollectionRequest) string {
	if req.ReferenceID != "" {
		return req.ReferenceID
	}
	return uuid.NewString()
}

func (b statusBody) toTransaction(referenceID string) entities.ProviderTransaction {
	tx := entities.ProviderTransaction{
		ReferenceID:            referenceID,
		ExternalID:             b.ExternalID,
		Status:                 entities.ParseProviderStatus(b.Status),
		RawStatus:              b.Status,
		Currency:               b.Currency,
		FinancialTransactionID: b.FinancialTransactionID,
	}
	if b.Amount != "" {
		amount, err := decimal.NewFromString(b.Amount)
		if err != nil {
			// The status still drives reconciliation; only the echoed amount is lost.
			log.Printf("[momo] malformed amount reference_id=%s amount=%q err=%v", referenceID, b.Amount, err)
		}
		tx.Amount = amount
	}
	if b.Payer != nil {
		tx.PayerPartyID = b.Payer.PartyID
	} else if b.IntendedPayer != nil {
		tx.PayerPartyID = b.IntendedPayer.PartyID
	}
	if b.Reason != nil {
		tx.Reason = entities.ProviderReason{Code: b.Reason.Code, Message: b.Reason.Message}
	} else if b.ErrorReason != "" {
		tx.Reason = entities.ProviderReason{Code: b.ErrorReason, Message: b.ErrorReason}
	}
	return tx
}
