package handlers

import (
	"errors"
	response "eventos_xpto/internal/adapter/http/dto/response"
	"eventos_xpto/internal/usecase"
	"eventos_xpto/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const razorpaySignatureHeader = "X-Razorpay-Signature"

// WebhookHandler receives server-to-server payment events from Razorpay.

type WebhookHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewWebhookHandler(uc usecase.IPaymentUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandleRazorpayWebhook verifies the event signature against the raw request
// body and dispatches it. Once the signature checks out the endpoint always
// acks with 200 so the provider does not retry events we chose to ignore.
func (h *WebhookHandler) HandleRazorpayWebhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] read body failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	signature := c.GetHeader(razorpaySignatureHeader)

	if err := h.usecase.HandleWebhook(c.Request.Context(), body, signature); err != nil {
		log.Printf("[webhook][handler] rejected err=%v", err)
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.WebhookAckResponse{Success: true})
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider is not configured", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
