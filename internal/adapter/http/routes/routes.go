package routes

import (
	"log"
	"os"
	"strconv"

	_ "xtagy_banho/docs" // This will be auto-generated
	"xtagy_banho/internal/adapter/http/handlers"
	"xtagy_banho/internal/adapter/http/middleware"
	repository2 "xtagy_banho/internal/adapter/persistence/repository"
	"xtagy_banho/internal/infrastructure/database"
	"xtagy_banho/internal/infrastructure/goldquote"
	"xtagy_banho/internal/infrastructure/payments"
	"xtagy_banho/internal/usecase"
	"xtagy_banho/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
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
	settings := repository2.NewSettingsFromEnv()

	companyRepo := repository2.NewCompanyDynamoRepository(ddb, settings)
	userRepo := repository2.NewUserDynamoRepository(ddb, settings)
	orderRepo := repository2.NewOrderDynamoRepository(ddb, settings)
	pieceRepo := repository2.NewPieceDynamoRepository(ddb, settings)
	webhookEventRepo := repository2.NewWebhookEventDynamoRepository(ddb, settings)
	eventLogRepo := repository2.NewEventLogDynamoRepository(ddb, settings)

	goldProvider := goldquote.NewStaticProvider()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	companyUseCase := usecase.NewCompanyUseCase(companyRepo, userRepo, eventLogRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, eventLogRepo)
	pieceUseCase := usecase.NewPieceUseCase(pieceRepo, orderRepo, eventLogRepo)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(companyRepo, webhookEventRepo, eventLogRepo)
	paymentIntentUseCase := usecase.NewPaymentIntentUseCase(paymentGateway, settings.Environment)
	analyticsUseCase := usecase.NewAnalyticsUseCase(orderUseCase, pieceUseCase)

	auth, err := middleware.NewAuthenticator(os.Getenv("AUTH_JWKS_URL"))
	if err != nil {
		log.Fatalf("Failed to configure authentication: %v", err)
	}

	publicBaseURL := os.Getenv("PUBLIC_BASE_URL")
	if publicBaseURL == "" {
		publicBaseURL = "http://localhost:8080"
	}

	companyHandler := handlers.NewCompanyHandler(companyUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase, companyUseCase, goldProvider)
	pieceHandler := handlers.NewPieceHandler(pieceUseCase, publicBaseURL)
	paymentHandler := handlers.NewPaymentHandler(paymentIntentUseCase, subscriptionUseCase)
	webhookHandler := handlers.NewWebhookHandler(subscriptionUseCase)
	goldHandler := handlers.NewGoldHandler(goldProvider)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUseCase, companyUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWebhookRoutes(v1, webhookHandler)

	// Rotas autenticadas
	authed := v1.Group("", auth.Handler())
	addWorkflowRoutes(authed, companyHandler, orderHandler, pieceHandler, goldHandler, analyticsHandler)
	addPaymentRoutes(authed, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
