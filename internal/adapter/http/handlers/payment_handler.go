package handlers

import (
	"errors"
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

// PaymentHandler serves the rent payment records. Provider actions live in MoMoHandler.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment godoc
// @Summary  Create a payment
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    body  body      request.PaymentCreateRequest  true  "Payment"
// @Success  201   {object}  response.PaymentResponse
// @Failure  400   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success payment_id=%s tenant_id=%s", created.ID, created.TenantID)

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

// ListPayments godoc
// @Summary  List payments
// @Tags     payments
// @Produce  json
// @Param    status     query  string  false  "Payment status"
// @Param    tenant_id  query  string  false  "Tenant ID"
// @Success  200        {array}  response.PaymentResponse
// @Security Bearer
// @Router   /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	filter := interfaces.PaymentFilter{
		Status:   entities.PaymentStatus(c.Query("status")),
		TenantID: c.Query("tenant_id"),
	}
	payments, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// GetPayment godoc
// @Summary  Get a payment
// @Tags     payments
// @Produce  json
// @Param    id   path      string  true  "Payment ID"
// @Success  200  {object}  response.PaymentResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// UpdatePayment godoc
// @Summary  Update a payment
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    id    path      string                        true  "Payment ID"
// @Param    body  body      request.PaymentUpdateRequest  true  "Fields to change"
// @Success  200   {object}  response.PaymentResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Failure  409   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /payments/{id} [patch]
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	var payload request.PaymentUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload payment_id=%s err=%v", c.Param("id"), err)
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] update success payment_id=%s status=%s", updated.ID, updated.Status)
	c.JSON(http.StatusOK, response.FromPayment(updated))
}

// DeletePayment godoc
// @Summary  Delete a payment
// @Tags     payments
// @Param    id  path  string  true  "Payment ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /payments/{id} [delete]
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapPaymentError(err error) *pkg.AppError {
	if appErr, ok := mapValidationError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidPayment):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentStatusConflict):
		return pkg.NewDomainErrorSimple("PAYMENT_STATUS_CONFLICT", "Payment status changed, reload and retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
