package handlers

import (
	"errors"
	"net/http"
	"propertyhub/internal/adapter/http/dto/request"
	"propertyhub/internal/adapter/http/dto/response"
	"propertyhub/internal/usecase"
	"propertyhub/pkg"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DebugLogHandler struct {
	usecase usecase.IDebugLogUseCase
}

func NewDebugLogHandler(uc usecase.IDebugLogUseCase) *DebugLogHandler {
	return &DebugLogHandler{usecase: uc}
}

// CreateDebugLog godoc
// @Summary  Record a debug log entry
// @Tags     debug-logs
// @Accept   json
// @Produce  json
// @Param    body  body      request.DebugLogCreateRequest  true  "Entry"
// @Success  201   {object}  response.DebugLogResponse
// @Failure  400   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /debug-logs [post]
func (h *DebugLogHandler) CreateDebugLog(c *gin.Context) {
	var payload request.DebugLogCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	entry, err := h.usecase.Record(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapDebugLogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromDebugLog(entry))
}

// ListDebugLogs godoc
// @Summary  Most recent debug log entries
// @Tags     debug-logs
// @Produce  json
// @Param    limit  query  int  false  "Max entries, default 50, up to 500"
// @Success  200    {array}  response.DebugLogResponse
// @Security Bearer
// @Router   /debug-logs [get]
func (h *DebugLogHandler) ListDebugLogs(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
			return
		}
		limit = n
	}

	entries, err := h.usecase.ListRecent(c.Request.Context(), limit)
	if err != nil {
		appErr := mapDebugLogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDebugLogs(entries))
}

func mapDebugLogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDebugLog):
		return pkg.NewDomainErrorSimple("INVALID_DEBUG_LOG", "function_name and message are required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
