package routes

import (
	"printworks/internal/adapter/http/handlers"
	"printworks/internal/adapter/http/middleware"
	"printworks/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests        = "/requests"
	PathSundryTemplates = "/sundry-templates"
	PathWebhooks        = "/webhooks"
)

func addPrintshopRoutes(
	rg *gin.RouterGroup,
	auth *middleware.AuthMiddleware,
	requestHandler *handlers.RequestHandler,
	checkoutHandler *handlers.CheckoutHandler,
	productionHandler *handlers.ProductionHandler,
) {
	anyCaller := auth.WithAuthCheck()
	staffOnly := auth.WithAuthCheck(entities.RoleOperator, entities.RoleAdmin)

	requests := rg.Group(PathRequests)
	{
		requests.POST("", anyCaller, requestHandler.Submit)
		requests.GET("", staffOnly, requestHandler.ListRecords)
		requests.GET("/:id", anyCaller, requestHandler.GetByID)

		requests.PATCH("/:id/review", staffOnly, requestHandler.StartReview)
		requests.PATCH("/:id/approve", staffOnly, requestHandler.Approve)
		requests.PATCH("/:id/reject", staffOnly, requestHandler.Reject)
		requests.PATCH("/:id/cancel", anyCaller, requestHandler.Cancel)
		requests.PATCH("/:id/accept-without-payment", staffOnly, requestHandler.AcceptWithoutPayment)

		requests.POST("/:id/sundries", staffOnly, requestHandler.AddSundry)

		requests.POST("/:id/checkout", anyCaller, checkoutHandler.CreateCheckout)
		requests.GET("/:id/payments", staffOnly, checkoutHandler.ListPaymentEvents)

		requests.PATCH("/:id/production", staffOnly, productionHandler.Advance)
	}

	rg.GET(PathSundryTemplates, staffOnly, requestHandler.ListSundryTemplates)

	// Processor callbacks carry no bearer token; identity is the payment
	// reference inside the payload.
	rg.POST(PathWebhooks+"/payments", checkoutHandler.HandleNotification)
}
