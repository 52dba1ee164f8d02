package routes

import (
	"propertyhub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathProperties = "/properties"

func addPropertyRoutes(rg *gin.RouterGroup, h *handlers.PropertyHandler) {
	properties := rg.Group(PathProperties)
	{
		properties.GET("", h.ListProperties)
		properties.POST("", h.CreateProperty)
		properties.GET("/:id", h.GetProperty)
		properties.PATCH("/:id", h.UpdateProperty)
		properties.DELETE("/:id", h.DeleteProperty)
		properties.POST("/:id/tenant", h.AssignTenant)
		properties.DELETE("/:id/tenant", h.UnassignTenant)
	}
}
