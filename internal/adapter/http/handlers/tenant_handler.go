package handlers

import (
	"errors"
	"log"
	"net/http"
	"propertyhub/internal/adapter/http/dto/request"
	"propertyhub/internal/adapter/http/dto/response"
	"propertyhub/internal/domain/entities"
	"propertyhub/internal/usecase"
	"propertyhub/pkg"

	"github.com/gin-gonic/gin"
)

type TenantHandler struct {
	usecase usecase.ITenantUseCase
}

func NewTenantHandler(uc usecase.ITenantUseCase) *TenantHandler {
	return &TenantHandler{usecase: uc}
}

// CreateTenant godoc
// @Summary  Create a tenant
// @Tags     tenants
// @Accept   json
// @Produce  json
// @Param    body  body      request.TenantCreateRequest  true  "Tenant"
// @Success  201   {object}  response.TenantResponse
// @Failure  400   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var payload request.TenantCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[tenant][handler] invalid payload err=%v", err)
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[tenant][handler] create success tenant_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromTenant(created))
}

// ListTenants godoc
// @Summary  List tenants
// @Tags     tenants
// @Produce  json
// @Param    status  query  string  false  "active, inactive, overdue or pending"
// @Success  200     {array}  response.TenantResponse
// @Security Bearer
// @Router   /tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	tenants, err := h.usecase.List(c.Request.Context(), entities.TenantStatus(c.Query("status")))
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTenants(tenants))
}

// GetTenant godoc
// @Summary  Get a tenant
// @Tags     tenants
// @Produce  json
// @Param    id   path      string  true  "Tenant ID"
// @Success  200  {object}  response.TenantResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /tenants/{id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	t, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTenant(t))
}

// UpdateTenant godoc
// @Summary  Update a tenant
// @Tags     tenants
// @Accept   json
// @Produce  json
// @Param    id    path      string                       true  "Tenant ID"
// @Param    body  body      request.TenantUpdateRequest  true  "Fields to change"
// @Success  200   {object}  response.TenantResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /tenants/{id} [patch]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	var payload request.TenantUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[tenant][handler] invalid payload tenant_id=%s err=%v", c.Param("id"), err)
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTenant(updated))
}

// DeleteTenant godoc
// @Summary  Delete a tenant
// @Tags     tenants
// @Param    id  path  string  true  "Tenant ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /tenants/{id} [delete]
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapTenantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[tenant][handler] delete success tenant_id=%s", c.Param("id"))
	c.Status(http.StatusNoContent)
}

func mapTenantError(err error) *pkg.AppError {
	if appErr, ok := mapValidationError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidTenant):
		return pkg.NewDomainErrorSimple("INVALID_TENANT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
