package routes

import (
	"propertyhub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathMoMo = "/momo"

func addMoMoRoutes(rg *gin.RouterGroup, h *handlers.MoMoHandler) {
	momo := rg.Group(PathMoMo)
	{
		momo.POST("/request", h.RequestInvoice)
		momo.GET("/status/:reference_id", h.GetProviderStatus)
		momo.GET("/balance", h.GetBalance)
	}
}

// addCallbackRoutes stays outside the admin group: the provider cannot send a bearer token.
func addCallbackRoutes(rg *gin.RouterGroup, h *handlers.MoMoHandler) {
	rg.POST(PathMoMo+"/callback", h.HandleCallback)
}
