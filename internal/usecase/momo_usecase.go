package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"propertyhub/internal/domain/entities"
	"propertyhub/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPaymentAlreadyLinked = errors.New("payment already has a provider request")
	ErrPaymentNotLinked     = errors.New("payment has no provider request")
	ErrPaymentFinalized     = errors.New("payment is already in a final status")
	ErrCancelNotSupported   = errors.New("only invoices can be cancelled")
	ErrInvalidFlow          = errors.New("invalid provider flow")
	ErrInvalidValidity      = errors.New("validity_hours must be between 1 and 720")
	ErrInvalidCallback      = errors.New("invalid provider callback")
	ErrCallbackMismatch     = errors.New("callback reference does not match the payment")
	ErrWaitTimeout          = errors.New("timed out waiting for a final provider status")

	ErrTransactionNotFound  = interfaces.ErrTransactionNotFound
	ErrProviderUnauthorized = interfaces.ErrProviderUnauthorized
	ErrProviderForbidden    = interfaces.ErrProviderForbidden
	ErrProviderRequest      = interfaces.ErrProviderRequest
)

const (
	defaultValidityHours = 24
	maxValidityHours     = 720
	defaultDescription   = "Rent payment"
)

// InvoiceCommand asks the provider to collect Amount from Phone. PaymentID is
// optional; when set the payment row is linked to the provider request.
type InvoiceCommand struct {
	PaymentID     string
	Phone         string
	Amount        decimal.Decimal
	Currency      string
	Description   string
	ValidityHours int
	Flow          entities.MoMoFlow
}

type InvoiceResult struct {
	ReferenceID string
	ExternalID  string
	Flow        entities.MoMoFlow
	Payment     *entities.Payment
}

// ReconcileResult is the outcome of one status check. Updated is false when
// the row was already final or changed concurrently.
type ReconcileResult struct {
	Payment     entities.Payment
	Transaction entities.ProviderTransaction
	Updated     bool
}

type CheckFailure struct {
	PaymentID string
	Err       error
}

type CheckAllSummary struct {
	Checked  int
	Updated  int
	Failed   int
	Results  []ReconcileResult
	Failures []CheckFailure
}

// CallbackCommand is the provider's asynchronous status notification.
type CallbackCommand struct {
	ExternalID             string
	ReferenceID            string
	Status                 string
	Amount                 decimal.Decimal
	Currency               string
	FinancialTransactionID string
	Reason                 entities.ProviderReason
}

type IMoMoUseCase interface {
	RequestInvoice(ctx context.Context, cmd InvoiceCommand) (InvoiceResult, error)
	FetchStatus(ctx context.Context, referenceID string, flow entities.MoMoFlow) (entities.ProviderTransaction, error)
	CheckStatus(ctx context.Context, paymentID string) (ReconcileResult, error)
	CheckAll(ctx context.Context) (CheckAllSummary, error)
	WaitForCompletion(ctx context.Context, paymentID string, timeout, interval time.Duration) (ReconcileResult, error)
	CancelInvoice(ctx context.Context, paymentID string) (entities.Payment, error)
	HandleCallback(ctx context.Context, cmd CallbackCommand) (ReconcileResult, error)
	GetBalance(ctx context.Context) (entities.AccountBalance, error)
}

// maxWaitTimeout bounds every wait, whatever the caller or the environment asks for.
const maxWaitTimeout = 300 * time.Second

type MoMoOptions struct {
	DefaultCurrency string
	Concurrency     int
	WaitTimeout     time.Duration
	WaitInterval    time.Duration
}

type MoMoUseCase struct {
	payments interfaces.IPaymentRepository
	gateway  interfaces.IMoMoGateway
	logs     interfaces.IDebugLogRepository
	opts     MoMoOptions
	now      func() time.Time
}

var _ IMoMoUseCase = (*MoMoUseCase)(nil)

// NewMoMoUseCase wires the provider flows. logs may be nil, in which case
// nothing is traced to the debug_logs table.
func NewMoMoUseCase(payments interfaces.IPaymentRepository, gateway interfaces.IMoMoGateway, logs interfaces.IDebugLogRepository, opts MoMoOptions) *MoMoUseCase {
	if opts.DefaultCurrency == "" {
		opts.DefaultCurrency = "EUR"
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 8
	}
	if opts.WaitTimeout > maxWaitTimeout {
		log.Printf("[momo][usecase] wait timeout %s capped at %s", opts.WaitTimeout, maxWaitTimeout)
		opts.WaitTimeout = maxWaitTimeout
	}
	if opts.WaitTimeout <= 0 {
		opts.WaitTimeout = maxWaitTimeout
	}
	if opts.WaitInterval <= 0 {
		opts.WaitInterval = 5 * time.Second
	}
	return &MoMoUseCase{
		payments: payments,
		gateway:  gateway,
		logs:     logs,
		opts:     opts,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// RequestInvoice validates everything locally, then creates the provider
// request and links it to the payment when one is given.
func (u *MoMoUseCase) RequestInvoice(ctx context.Context, cmd InvoiceCommand) (InvoiceResult, error) {
	phone, err := NormalizeMSISDN(cmd.Phone)
	if err != nil {
		return InvoiceResult{}, err
	}
	if err := validateAmount(cmd.Amount); err != nil {
		return InvoiceResult{}, err
	}
	currency, err := normalizeCurrency(cmd.Currency, u.opts.DefaultCurrency)
	if err != nil {
		return InvoiceResult{}, err
	}
	flow := cmd.Flow
	if flow == "" {
		flow = entities.MoMoFlowInvoice
	}
	if !flow.Valid() {
		return InvoiceResult{}, fmt.Errorf("%w: %q", ErrInvalidFlow, cmd.Flow)
	}
	validity := cmd.ValidityHours
	if validity == 0 {
		validity = defaultValidityHours
	}
	if validity < 1 || validity > maxValidityHours {
		return InvoiceResult{}, ErrInvalidValidity
	}
	paymentID := strings.TrimSpace(cmd.PaymentID)
	if paymentID != "" && !isUUID(paymentID) {
		return InvoiceResult{}, fmt.Errorf("%w: payment_id must be a UUID", ErrInvalidID)
	}
	description := strings.TrimSpace(cmd.Description)
	if description == "" {
		description = defaultDescription
	}

	externalID := uuid.NewString()
	if paymentID != "" {
		p, err := loadPayment(ctx, u.payments, paymentID)
		if err != nil {
			return InvoiceResult{}, err
		}
		if p.Status.IsTerminal() {
			return InvoiceResult{}, ErrPaymentFinalized
		}
		if p.HasProviderReference() {
			return InvoiceResult{}, ErrPaymentAlreadyLinked
		}
		externalID = p.ID
	}

	req := entities.CollectionRequest{
		ReferenceID:   uuid.NewString(),
		ExternalID:    externalID,
		PayerMSISDN:   phone,
		Amount:        cmd.Amount,
		Currency:      currency,
		Description:   description,
		ValidityHours: validity,
	}

	var referenceID string
	if flow == entities.MoMoFlowInvoice {
		referenceID, err = u.gateway.CreateInvoice(ctx, req)
	} else {
		referenceID, err = u.gateway.RequestToPay(ctx, req)
	}
	if err != nil {
		log.Printf("[momo][usecase] request failed flow=%s external_id=%s err=%v", flow, externalID, err)
		u.trace(ctx, entities.LogLevelError, "RequestInvoice", "provider request failed", map[string]any{
			"flow": string(flow), "external_id": externalID, "error": err.Error(),
		})
		return InvoiceResult{}, err
	}
	log.Printf("[momo][usecase] request accepted flow=%s reference_id=%s external_id=%s", flow, referenceID, externalID)

	res := InvoiceResult{ReferenceID: referenceID, ExternalID: externalID, Flow: flow}
	if paymentID == "" {
		u.trace(ctx, entities.LogLevelInfo, "RequestInvoice", "standalone provider request accepted", map[string]any{
			"flow": string(flow), "reference_id": referenceID,
		})
		return res, nil
	}

	linked, err := u.payments.LinkProvider(ctx, paymentID, interfaces.ProviderLink{
		Flow:        flow,
		ReferenceID: referenceID,
		ExternalID:  externalID,
		RawStatus:   string(entities.ProviderStatusPending),
	})
	if err != nil {
		// The provider already holds the request; keep the reference in the trace so it can be relinked.
		log.Printf("[momo][usecase] link failed payment_id=%s reference_id=%s err=%v", paymentID, referenceID, err)
		u.trace(ctx, entities.LogLevelError, "RequestInvoice", "could not link provider request", map[string]any{
			"payment_id": paymentID, "reference_id": referenceID, "error": err.Error(),
		})
		if errors.Is(err, interfaces.ErrAlreadyLinked) {
			return InvoiceResult{}, ErrPaymentAlreadyLinked
		}
		return InvoiceResult{}, err
	}
	if linked.ID == "" {
		return InvoiceResult{}, ErrPaymentNotFound
	}

	u.trace(ctx, entities.LogLevelInfo, "RequestInvoice", "provider request linked", map[string]any{
		"payment_id": paymentID, "flow": string(flow), "reference_id": referenceID,
	})
	res.Payment = &linked
	return res, nil
}

// FetchStatus reads the provider state of a reference without touching local rows.
func (u *MoMoUseCase) FetchStatus(ctx context.Context, referenceID string, flow entities.MoMoFlow) (entities.ProviderTransaction, error) {
	referenceID = strings.TrimSpace(referenceID)
	if !isUUID(referenceID) {
		return entities.ProviderTransaction{}, fmt.Errorf("%w: reference_id must be a UUID", ErrInvalidID)
	}
	if flow == "" {
		flow = entities.MoMoFlowInvoice
	}
	if !flow.Valid() {
		return entities.ProviderTransaction{}, fmt.Errorf("%w: %q", ErrInvalidFlow, flow)
	}
	return u.fetch(ctx, referenceID, flow)
}

// CheckStatus polls the provider for a linked payment and reconciles the row.
func (u *MoMoUseCase) CheckStatus(ctx context.Context, paymentID string) (ReconcileResult, error) {
	paymentID = strings.TrimSpace(paymentID)
	if !isUUID(paymentID) {
		return ReconcileResult{}, fmt.Errorf("%w: payment_id must be a UUID", ErrInvalidID)
	}
	p, err := loadPayment(ctx, u.payments, paymentID)
	if err != nil {
		return ReconcileResult{}, err
	}
	if !p.HasProviderReference() {
		return ReconcileResult{}, ErrPaymentNotLinked
	}

	tx, err := u.fetch(ctx, p.MoMoReferenceID, flowOf(p))
	if err != nil {
		log.Printf("[momo][usecase] status failed payment_id=%s reference_id=%s err=%v", p.ID, p.MoMoReferenceID, err)
		u.trace(ctx, entities.LogLevelError, "CheckStatus", "provider status failed", map[string]any{
			"payment_id": p.ID, "reference_id": p.MoMoReferenceID, "error": err.Error(),
		})
		return ReconcileResult{}, err
	}
	return u.reconcile(ctx, p, tx)
}

func (u *MoMoUseCase) CancelInvoice(ctx context.Context, paymentID string) (entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if !isUUID(paymentID) {
		return entities.Payment{}, fmt.Errorf("%w: payment_id must be a UUID", ErrInvalidID)
	}
	p, err := loadPayment(ctx, u.payments, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if !p.HasProviderReference() {
		return entities.Payment{}, ErrPaymentNotLinked
	}
	if flowOf(p) != entities.MoMoFlowInvoice {
		return entities.Payment{}, ErrCancelNotSupported
	}
	if p.Status.IsTerminal() {
		return entities.Payment{}, ErrPaymentFinalized
	}

	externalID := p.MoMoExternalID
	if externalID == "" {
		externalID = p.ID
	}
	if err := u.gateway.CancelInvoice(ctx, p.MoMoReferenceID, externalID); err != nil {
		log.Printf("[momo][usecase] cancel failed payment_id=%s reference_id=%s err=%v", p.ID, p.MoMoReferenceID, err)
		u.trace(ctx, entities.LogLevelError, "CancelInvoice", "provider cancel failed", map[string]any{
			"payment_id": p.ID, "reference_id": p.MoMoReferenceID, "error": err.Error(),
		})
		return entities.Payment{}, err
	}

	rec := entities.Reconciliation{
		Status:         entities.PaymentStatusFailed,
		ProviderStatus: entities.ProviderStatusCancelled,
		RawStatus:      string(entities.ProviderStatusCancelled),
	}
	updated, err := u.payments.ApplyReconciliation(ctx, p.ID, entities.MoMoFlowInvoice, rec, entities.OpenPaymentStatuses())
	if errors.Is(err, interfaces.ErrStaleStatus) {
		return entities.Payment{}, ErrPaymentFinalized
	}
	if err != nil {
		return entities.Payment{}, err
	}
	log.Printf("[momo][usecase] invoice cancelled payment_id=%s reference_id=%s", p.ID, p.MoMoReferenceID)
	u.trace(ctx, entities.LogLevelInfo, "CancelInvoice", "invoice cancelled", map[string]any{
		"payment_id": p.ID, "reference_id": p.MoMoReferenceID,
	})
	return updated, nil
}

// HandleCallback applies a provider notification to the payment named by ExternalID.
func (u *MoMoUseCase) HandleCallback(ctx context.Context, cmd CallbackCommand) (ReconcileResult, error) {
	externalID := strings.TrimSpace(cmd.ExternalID)
	if !isUUID(externalID) {
		return ReconcileResult{}, fmt.Errorf("%w: externalId must name a payment", ErrInvalidCallback)
	}
	if strings.TrimSpace(cmd.Status) == "" {
		return ReconcileResult{}, fmt.Errorf("%w: status is required", ErrInvalidCallback)
	}

	p, err := loadPayment(ctx, u.payments, externalID)
	if err != nil {
		return ReconcileResult{}, err
	}
	if !p.HasProviderReference() {
		return ReconcileResult{}, ErrPaymentNotLinked
	}
	if ref := strings.TrimSpace(cmd.ReferenceID); ref != "" && ref != p.MoMoReferenceID {
		return ReconcileResult{}, ErrCallbackMismatch
	}

	tx := entities.ProviderTransaction{
		ReferenceID:            p.MoMoReferenceID,
		ExternalID:             externalID,
		Status:                 entities.ParseProviderStatus(cmd.Status),
		RawStatus:              strings.TrimSpace(cmd.Status),
		Amount:                 cmd.Amount,
		Currency:               cmd.Currency,
		FinancialTransactionID: cmd.FinancialTransactionID,
		Reason:                 cmd.Reason,
	}
	log.Printf("[momo][usecase] callback received payment_id=%s status=%s", p.ID, tx.RawStatus)
	return u.reconcile(ctx, p, tx)
}

func (u *MoMoUseCase) GetBalance(ctx context.Context) (entities.AccountBalance, error) {
	return u.gateway.GetBalance(ctx)
}

// reconcile maps the provider state and writes it only while the row is still open.
func (u *MoMoUseCase) reconcile(ctx context.Context, p entities.Payment, tx entities.ProviderTransaction) (ReconcileResult, error) {
	if p.Status.IsTerminal() {
		log.Printf("[momo][usecase] reconcile skipped payment_id=%s status=%s provider_status=%s", p.ID, p.Status, tx.RawStatus)
		return ReconcileResult{Payment: p, Transaction: tx}, nil
	}

	rec := entities.MapProviderStatus(tx, p.DueDate, u.now())
	if rec.Unexpected {
		log.Printf("[momo][usecase] unexpected provider status payment_id=%s raw=%q", p.ID, tx.RawStatus)
		u.trace(ctx, entities.LogLevelWarn, "CheckStatus", "unexpected provider status", map[string]any{
			"payment_id": p.ID, "raw_status": tx.RawStatus,
		})
	}

	updated, err := u.payments.ApplyReconciliation(ctx, p.ID, flowOf(p), rec, entities.OpenPaymentStatuses())
	if errors.Is(err, interfaces.ErrStaleStatus) {
		current, getErr := loadPayment(ctx, u.payments, p.ID)
		if getErr != nil {
			return ReconcileResult{}, getErr
		}
		log.Printf("[momo][usecase] reconcile lost race payment_id=%s stored_status=%s", p.ID, current.Status)
		return ReconcileResult{Payment: current, Transaction: tx}, nil
	}
	if err != nil {
		return ReconcileResult{}, err
	}
	if updated.ID == "" {
		return ReconcileResult{}, ErrPaymentNotFound
	}

	log.Printf("[momo][usecase] reconcile success payment_id=%s status=%s provider_status=%s", p.ID, updated.Status, rec.RawStatus)
	if updated.Status != p.Status {
		u.trace(ctx, entities.LogLevelInfo, "CheckStatus", "payment status changed", map[string]any{
			"payment_id": p.ID, "from": string(p.Status), "to": string(updated.Status), "provider_status": rec.RawStatus,
		})
	}
	return ReconcileResult{Payment: updated, Transaction: tx, Updated: true}, nil
}

func (u *MoMoUseCase) fetch(ctx context.Context, referenceID string, flow entities.MoMoFlow) (entities.ProviderTransaction, error) {
	if flow == entities.MoMoFlowRequestToPay {
		return u.gateway.GetRequestToPayStatus(ctx, referenceID)
	}
	return u.gateway.GetInvoiceStatus(ctx, referenceID)
}

// trace records to debug_logs; failures are logged and dropped.
func (u *MoMoUseCase) trace(ctx context.Context, level entities.LogLevel, fn, msg string, meta map[string]any) {
	if u.logs == nil {
		return
	}
	entry := entities.DebugLog{
		ID:           uuid.NewString(),
		FunctionName: fn,
		Level:        level,
		Message:      msg,
		Metadata:     meta,
		CreatedAt:    u.now(),
	}
	if _, err := u.logs.Create(ctx, entry); err != nil {
		log.Printf("[momo][usecase] debug log write failed function=%s err=%v", fn, err)
	}
}

// flowOf treats rows linked before flows were recorded as invoices.
func flowOf(p entities.Payment) entities.MoMoFlow {
	if p.MoMoFlow == "" {
		return entities.MoMoFlowInvoice
	}
	return p.MoMoFlow
}
