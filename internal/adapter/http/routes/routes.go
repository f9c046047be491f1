package routes

import (
	"log"
	"os"
	"strconv"

	_ "printworks/docs" // This will be auto-generated
	"printworks/internal/adapter/http/handlers"
	"printworks/internal/adapter/http/middleware"
	repository2 "printworks/internal/adapter/persistence/repository"
	"printworks/internal/domain/entities"
	"printworks/internal/infrastructure/database"
	"printworks/internal/infrastructure/payments"
	"printworks/internal/usecase"
	"printworks/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	requestRepo := repository2.NewRequestDynamoRepository(ddb)
	eventRepo := repository2.NewPaymentEventDynamoRepository(ddb)
	templateRepo := repository2.NewSundryTemplateDynamoRepository(ddb)
	catalog := repository2.NewProductCatalogDynamoRepository(ddb)

	requestUseCase := usecase.NewRequestUseCase(requestRepo, catalog, templateRepo, eventRepo, standardTaxFromEnv())
	productionUseCase := usecase.NewProductionUseCase(requestRepo)

	var checkoutGateway interfaces.ICheckoutGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), os.Getenv("PAYMENT_NOTIFICATION_URL"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		checkoutGateway = mpGateway
	}

	checkoutUseCase := usecase.NewCheckoutUseCase(
		requestRepo,
		eventRepo,
		checkoutGateway,
		getenvDefault("PAYMENT_CURRENCY", "GBP"),
		os.Getenv("PAYMENT_SUCCESS_URL"),
		os.Getenv("PAYMENT_CANCEL_URL"),
	)

	requestHandler := handlers.NewRequestHandler(requestUseCase, templateRepo)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	productionHandler := handlers.NewProductionHandler(productionUseCase)

	auth := middleware.NewAuthMiddleware(getenvDefault("JWT_SECRET", "dev-secret"))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPrintshopRoutes(v1, auth, requestHandler, checkoutHandler, productionHandler)
}

// standardTaxFromEnv is the tax policy stamped on standard orders at intake.
// Quotes get their policy at approval time instead.
func standardTaxFromEnv() entities.TaxPolicy {
	applicable := true
	if v := os.Getenv("TAX_APPLICABLE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			applicable = b
		}
	}

	rate := decimal.NewFromFloat(0.20)
	if v := os.Getenv("TAX_RATE"); v != "" {
		d, err := decimal.NewFromString(v)
		if err == nil && d.Sign() >= 0 {
			rate = d
		}
	}

	return entities.TaxPolicy{Applicable: applicable, Rate: rate}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
