package routes

import (
	"eventos_xpto/internal/adapter/http/handlers"
	"eventos_xpto/internal/adapter/http/middleware"
	"log"

	"github.com/gin-gonic/gin"
)

const (
	PathRegister           = "/register"
	PathCreatePaymentOrder = "/create-payment-order"
	PathCheckPayment       = "/check-payment"
	PathConfirmPayment     = "/confirm-payment"
	PathRazorpayWebhook    = "/razorpay-webhook"
	PathAdmin              = "/admin"
)

func addRegistrationRoutes(rg *gin.RouterGroup, registrationHandler *handlers.RegistrationHandler, paymentHandler *handlers.PaymentHandler, webhookHandler *handlers.WebhookHandler) {
	rg.POST(PathRegister, registrationHandler.Register)
	rg.GET(PathCheckPayment, registrationHandler.CheckPayment)

	rg.POST(PathCreatePaymentOrder, paymentHandler.CreatePaymentOrder)
	rg.POST(PathConfirmPayment, paymentHandler.ConfirmPayment)

	rg.POST(PathRazorpayWebhook, webhookHandler.HandleRazorpayWebhook)
}

func addAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminHandler, jwtSecret string) {
	if jwtSecret == "" {
		log.Printf("[admin][routes] ADMIN_JWT_SECRET not set; admin routes disabled")
		return
	}

	admin := rg.Group(PathAdmin, middleware.Authenticate(jwtSecret), middleware.RequireRole("admin"))
	{
		admin.GET("/registrations", adminHandler.ListRegistrations)
	}
}
