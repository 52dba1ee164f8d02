package handlers

import (
	"net/http"
	"propertyhub/internal/adapter/http/dto/response"
	"propertyhub/internal/usecase"
	"propertyhub/pkg"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetSummary godoc
// @Summary  Portfolio totals for the admin dashboard
// @Tags     dashboard
// @Produce  json
// @Success  200  {object}  response.DashboardResponse
// @Security Bearer
// @Router   /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardSummary(summary))
}
