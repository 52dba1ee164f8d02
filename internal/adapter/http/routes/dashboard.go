package routes

import (
	"propertyhub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDashboard = "/dashboard"
	PathDebugLogs = "/debug-logs"
)

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	rg.GET(PathDashboard+"/summary", h.GetSummary)
}

func addDebugLogRoutes(rg *gin.RouterGroup, h *handlers.DebugLogHandler) {
	logs := rg.Group(PathDebugLogs)
	{
		logs.GET("", h.ListDebugLogs)
		logs.POST("", h.CreateDebugLog)
	}
}
