package routes

import (
	_ "eventos_xpto/docs" // This will be auto-generated
	"eventos_xpto/internal/adapter/http/handlers"
	repository2 "eventos_xpto/internal/adapter/persistence/repository"
	"eventos_xpto/internal/infrastructure/config"
	"eventos_xpto/internal/infrastructure/database"
	"eventos_xpto/internal/infrastructure/mail"
	"eventos_xpto/internal/infrastructure/payments"
	"eventos_xpto/internal/usecase"
	"eventos_xpto/internal/usecase/interfaces"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err.Error())
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.App) {
	registrationRepo := newRegistrationRepository(cfg)

	var paymentGateway interfaces.IPaymentGateway
	rzpGateway, err := payments.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret, cfg.RazorpayWebhookSecret)
	if err != nil {
		log.Printf("Razorpay gateway not configured: %v", err)
	} else {
		paymentGateway = rzpGateway
	}

	notifier := newNotifier(cfg)

	registrationUseCase := usecase.NewRegistrationUseCase(registrationRepo)
	paymentUseCase := usecase.NewPaymentUseCase(registrationRepo, paymentGateway, notifier, cfg.FeeAmount, cfg.FeeCurrency)

	registrationHandler := handlers.NewRegistrationHandler(registrationUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	webhookHandler := handlers.NewWebhookHandler(paymentUseCase)
	adminHandler := handlers.NewAdminHandler(registrationUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRegistrationRoutes(v1, registrationHandler, paymentHandler, webhookHandler)
	addAdminRoutes(v1, adminHandler, cfg.AdminJWTSecret)
}

func newRegistrationRepository(cfg config.App) interfaces.IRegistrationRepository {
	if strings.EqualFold(cfg.RegistrationStore, "memory") {
		log.Printf("[registration][routes] using in-memory registration store")
		return repository2.NewRegistrationMemoryRepository()
	}

	ddb := database.ConnectDynamoDB()
	return repository2.NewRegistrationDynamoRepository(ddb)
}

func newNotifier(cfg config.App) interfaces.INotifier {
	notifier, err := mail.NewSMTPNotifier(mail.SMTPConfig{
		Host:          cfg.SMTPHost,
		Port:          cfg.SMTPPort,
		Username:      cfg.SMTPUsername,
		Password:      cfg.SMTPPassword,
		From:          cfg.MailFrom,
		OperatorEmail: cfg.OperatorEmail,
		EventName:     cfg.EventName,
	})
	if err != nil {
		log.Printf("SMTP notifier not configured: %v; notifications will be logged", err)
		return &mail.ConsoleNotifier{EventName: cfg.EventName}
	}
	return notifier
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
