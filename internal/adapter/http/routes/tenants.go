package routes

import (
	"propertyhub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathTenants = "/tenants"

func addTenantRoutes(rg *gin.RouterGroup, h *handlers.TenantHandler) {
	tenants := rg.Group(PathTenants)
	{
		tenants.GET("", h.ListTenants)
		tenants.POST("", h.CreateTenant)
		tenants.GET("/:id", h.GetTenant)
		tenants.PATCH("/:id", h.UpdateTenant)
		tenants.DELETE("/:id", h.DeleteTenant)
	}
}
