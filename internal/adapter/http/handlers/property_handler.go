package handlers

import (
	"errors"
	"log"
	"net/http"
	"propertyhub/internal/adapter/http/dto/request"
	"propertyhub/internal/adapter/http/dto/response"
	"propertyhub/internal/usecase"
	"propertyhub/pkg"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	usecase usecase.IPropertyUseCase
}

func NewPropertyHandler(uc usecase.IPropertyUseCase) *PropertyHandler {
	return &PropertyHandler{usecase: uc}
}

// CreateProperty godoc
// @Summary  Create a property
// @Tags     properties
// @Accept   json
// @Produce  json
// @Param    body  body      request.PropertyCreateRequest  true  "Property"
// @Success  201   {object}  response.PropertyResponse
// @Failure  400   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var payload request.PropertyCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[property][handler] invalid payload err=%v", err)
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[property][handler] create success property_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromProperty(created))
}

// ListProperties godoc
// @Summary  List properties
// @Tags     properties
// @Produce  json
// @Success  200  {array}  response.PropertyResponse
// @Security Bearer
// @Router   /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	props, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProperties(props))
}

// GetProperty godoc
// @Summary  Get a property
// @Tags     properties
// @Produce  json
// @Param    id   path      string  true  "Property ID"
// @Success  200  {object}  response.PropertyResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProperty(p))
}

// UpdateProperty godoc
// @Summary  Update a property
// @Tags     properties
// @Accept   json
// @Produce  json
// @Param    id    path      string                         true  "Property ID"
// @Param    body  body      request.PropertyUpdateRequest  true  "Fields to change"
// @Success  200   {object}  response.PropertyResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /properties/{id} [patch]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	var payload request.PropertyUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[property][handler] invalid payload property_id=%s err=%v", c.Param("id"), err)
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProperty(updated))
}

// DeleteProperty godoc
// @Summary  Delete a property
// @Tags     properties
// @Param    id  path  string  true  "Property ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[property][handler] delete success property_id=%s", c.Param("id"))
	c.Status(http.StatusNoContent)
}

// AssignTenant godoc
// @Summary  Assign a tenant to a property
// @Tags     properties
// @Accept   json
// @Produce  json
// @Param    id    path      string                       true  "Property ID"
// @Param    body  body      request.AssignTenantRequest  true  "Tenant"
// @Success  200   {object}  response.PropertyResponse
// @Failure  404   {object}  pkg.HTTPError
// @Failure  409   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /properties/{id}/tenant [post]
func (h *PropertyHandler) AssignTenant(c *gin.Context) {
	var payload request.AssignTenantRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.AssignTenant(c.Request.Context(), c.Param("id"), payload.TenantID)
	if err != nil {
		log.Printf("[property][handler] assign failed property_id=%s tenant_id=%s err=%v", c.Param("id"), payload.TenantID, err)
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProperty(p))
}

// UnassignTenant godoc
// @Summary  Remove the tenant from a property
// @Tags     properties
// @Produce  json
// @Param    id   path      string  true  "Property ID"
// @Success  200  {object}  response.PropertyResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /properties/{id}/tenant [delete]
func (h *PropertyHandler) UnassignTenant(c *gin.Context) {
	p, err := h.usecase.UnassignTenant(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPropertyError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProperty(p))
}

func mapPropertyError(err error) *pkg.AppError {
	if appErr, ok := mapValidationError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidProperty):
		return pkg.NewDomainErrorSimple("INVALID_PROPERTY", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPropertyNotFound):
		return pkg.NewDomainErrorSimple("PROPERTY_NOT_FOUND", "Property not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTenantNotFound):
		return pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPropertyOccupied):
		return pkg.NewDomainErrorSimple("PROPERTY_OCCUPIED", "Property already has a tenant", http.StatusConflict)
	case errors.Is(err, usecase.ErrTenantAlreadyAssigned):
		return pkg.NewDomainErrorSimple("TENANT_ALREADY_ASSIGNED", "Tenant is assigned to another property", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
