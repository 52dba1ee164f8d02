package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"propertyhub/internal/adapter/http/dto/request"
	"propertyhub/internal/adapter/http/dto/response"
	"propertyhub/internal/domain/entities"
	"propertyhub/internal/usecase"
	"propertyhub/internal/usecase/interfaces"
	"propertyhub/pkg"

	"github.com/gin-gonic/gin"
)

// MoMoHandler exposes the MTN MoMo collection flows.
type MoMoHandler struct {
	usecase usecase.IMoMoUseCase
}

func NewMoMoHandler(uc usecase.IMoMoUseCase) *MoMoHandler {
	return &MoMoHandler{usecase: uc}
}

// RequestPaymentInvoice godoc
// @Summary  Request a MoMo invoice for a payment
// @Tags     momo
// @Accept   json
// @Produce  json
// @Param    id    path      string                  true  "Payment ID"
// @Param    body  body      request.InvoiceRequest  true  "Invoice"
// @Success  201   {object}  response.InvoiceResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  409   {object}  pkg.HTTPError
// @Failure  502   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /payments/{id}/momo/invoice [post]
func (h *MoMoHandler) RequestPaymentInvoice(c *gin.Context) {
	h.requestInvoice(c, c.Param("id"))
}

// RequestInvoice godoc
// @Summary  Request a MoMo invoice not tied to a payment
// @Tags     momo
// @Accept   json
// @Produce  json
// @Param    body  body      request.InvoiceRequest  true  "Invoice"
// @Success  201   {object}  response.InvoiceResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  502   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /momo/request [post]
func (h *MoMoHandler) RequestInvoice(c *gin.Context) {
	h.requestInvoice(c, "")
}

func (h *MoMoHandler) requestInvoice(c *gin.Context, paymentID string) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[momo][handler] invalid invoice payload payment_id=%s err=%v", paymentID, err)
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	cmd := payload.ToCommand(paymentID)
	log.Printf("[momo][handler] invoice start payment_id=%s flow=%s", cmd.PaymentID, cmd.Flow)

	result, err := h.usecase.RequestInvoice(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapMoMoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[momo][handler] invoice success payment_id=%s reference_id=%s", cmd.PaymentID, result.ReferenceID)

	c.JSON(http.StatusCreated, response.FromInvoiceResult(result))
}

// CheckPaymentStatus godoc
// @Summary  Poll the provider and reconcile a payment
// @Tags     momo
// @Produce  json
// @Param    id   path      string  true  "Payment ID"
// @Success  200  {object}  response.ReconcileResponse
// @Failure  404  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Failure  502  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /payments/{id}/momo/status [post]
func (h *MoMoHandler) CheckPaymentStatus(c *gin.Context) {
	result, err := h.usecase.CheckStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapMoMoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReconcileResult(result))
}

// WaitForPayment godoc
// @Summary  Poll until the payment reaches a final status
// @Tags     momo
// @Produce  json
// @Param    id        path      string  true   "Payment ID"
// @Param    timeout   query     int     false  "Seconds to wait, up to 300"
// @Param    interval  query     int     false  "Seconds between polls, up to 60"
// @Success  200       {object}  response.ReconcileResponse
// @Failure  504       {object}  pkg.HTTPError
// @Security Bearer
// @Router   /payments/{id}/momo/wait [post]
func (h *MoMoHandler) WaitForPayment(c *gin.Context) {
	var query request.WaitQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}

	timeout, interval := query.Durations()
	result, err := h.usecase.WaitForCompletion(c.Request.Context(), c.Param("id"), timeout, interval)
	if err != nil {
		appErr := mapMoMoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReconcileResult(result))
}

// CancelPaymentInvoice godoc
// @Summary  Cancel a pending MoMo invoice
// @Tags     momo
// @Produce  json
// @Param    id   path      string  true  "Payment ID"
// @Success  200  {object}  response.PaymentResponse
// @Failure  409  {object}  pkg.HTTPError
// @Failure  502  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /payments/{id}/momo/cancel [post]
func (h *MoMoHandler) CancelPaymentInvoice(c *gin.Context) {
	p, err := h.usecase.CancelInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapMoMoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[momo][handler] cancel success payment_id=%s", p.ID)
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// CheckAllPayments godoc
// @Summary  Reconcile every open payment with a provider request
// @Tags     momo
// @Produce  json
// @Success  200  {object}  response.CheckAllResponse
// @Security Bearer
// @Router   /payments/momo/check-all [post]
func (h *MoMoHandler) CheckAllPayments(c *gin.Context) {
	summary, err := h.usecase.CheckAll(c.Request.Context())
	if err != nil {
		appErr := mapMoMoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[momo][handler] check all done checked=%d updated=%d failed=%d", summary.Checked, summary.Updated, summary.Failed)
	c.JSON(http.StatusOK, response.FromCheckAllSummary(summary))
}

// GetProviderStatus godoc
// @Summary  Raw provider status for a reference
// @Tags     momo
// @Produce  json
// @Param    reference_id  path      string  true   "Provider reference ID"
// @Param    flow          query     string  false  "invoice or request_to_pay"
// @Success  200           {object}  response.ProviderTransactionResponse
// @Failure  404           {object}  pkg.HTTPError
// @Security Bearer
// @Router   /momo/status/{reference_id} [get]
func (h *MoMoHandler) GetProviderStatus(c *gin.Context) {
	flow := entities.MoMoFlow(c.Query("flow"))
	tx, err := h.usecase.FetchStatus(c.Request.Context(), c.Param("reference_id"), flow)
	if err != nil {
		appErr := mapMoMoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProviderTransaction(tx))
}

// GetBalance godoc
// @Summary  Collection account balance
// @Tags     momo
// @Produce  json
// @Success  200  {object}  response.BalanceResponse
// @Failure  502  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /momo/balance [get]
func (h *MoMoHandler) GetBalance(c *gin.Context) {
	b, err := h.usecase.GetBalance(c.Request.Context())
	if err != nil {
		appErr := mapMoMoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBalance(b))
}

// HandleCallback godoc
// @Summary  Provider status notification
// @Tags     momo
// @Accept   json
// @Produce  json
// @Param    body  body      request.CallbackRequest  true  "Notification"
// @Success  200   {object}  response.ReconcileResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Router   /momo/callback [post]
func (h *MoMoHandler) HandleCallback(c *gin.Context) {
	var payload request.CallbackRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[momo][handler] invalid callback payload err=%v", err)
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.HandleCallback(c.Request.Context(), payload.ToCommand())
	if err != nil {
		log.Printf("[momo][handler] callback rejected external_id=%s err=%v", payload.ExternalID, err)
		appErr := mapMoMoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReconcileResult(result))
}

func mapMoMoError(err error) *pkg.AppError {
	if appErr, ok := mapValidationError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidFlow):
		return pkg.NewDomainErrorSimple("INVALID_FLOW", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidValidity):
		return pkg.NewDomainErrorSimple("INVALID_VALIDITY", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCallback):
		return pkg.NewDomainErrorSimple("INVALID_CALLBACK", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Provider transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentAlreadyLinked):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_LINKED", "Payment already has a provider request", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotLinked):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_LINKED", "Payment has no provider request", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentFinalized):
		return pkg.NewDomainErrorSimple("PAYMENT_FINALIZED", "Payment is already in a final status", http.StatusConflict)
	case errors.Is(err, usecase.ErrCancelNotSupported):
		return pkg.NewDomainErrorSimple("CANCEL_NOT_SUPPORTED", "Only invoices can be cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrCallbackMismatch):
		return pkg.NewDomainErrorSimple("CALLBACK_MISMATCH", "Callback reference does not match the payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrProviderUnauthorized),
		errors.Is(err, usecase.ErrProviderForbidden),
		errors.Is(err, usecase.ErrProviderRequest):
		return mapProviderError(err)
	case errors.Is(err, usecase.ErrWaitTimeout), errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("WAIT_TIMEOUT", "Payment did not reach a final status in time", err, http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapProviderError passes the provider's status code and raw body through so
// the admin can see why MoMo refused the call.
func mapProviderError(err error) *pkg.AppError {
	appErr := pkg.NewDomainError("PROVIDER_ERROR", "Payment provider request failed", err, http.StatusBadGateway)
	var pr interfaces.ProviderResponder
	if !errors.As(err, &pr) {
		return appErr
	}
	status, body := pr.ProviderResponse()
	if status != 0 {
		appErr.Message = fmt.Sprintf("Payment provider error %d: %s", status, body)
	} else {
		appErr.Message = "Payment provider request failed: " + body
	}
	appErr.Details = map[string]any{"provider_status": status, "provider_body": body}
	return appErr
}
