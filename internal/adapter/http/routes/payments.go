package routes

import (
	"propertyhub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPayments = "/payments"

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler, momo *handlers.MoMoHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("", h.ListPayments)
		payments.POST("", h.CreatePayment)
		payments.GET("/:id", h.GetPayment)
		payments.PATCH("/:id", h.UpdatePayment)
		payments.DELETE("/:id", h.DeletePayment)

		// Provider actions on a single payment row.
		payments.POST("/:id/momo/invoice", momo.RequestPaymentInvoice)
		payments.POST("/:id/momo/status", momo.CheckPaymentStatus)
		payments.POST("/:id/momo/wait", momo.WaitForPayment)
		payments.POST("/:id/momo/cancel", momo.CancelPaymentInvoice)
		payments.POST("/momo/check-all", momo.CheckAllPayments)
	}
}
