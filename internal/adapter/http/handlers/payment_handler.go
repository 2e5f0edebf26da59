package handlers

import (
	"errors"
	request "eventos_xpto/internal/adapter/http/dto/request"
	response "eventos_xpto/internal/adapter/http/dto/response"
	"eventos_xpto/internal/usecase"
	"eventos_xpto/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for order creation and the
// client-side payment confirmation callback.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePaymentOrder creates (or re-issues) the gateway order for a registration.
func (h *PaymentHandler) CreatePaymentOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create-order start reference_id=%s", payload.ReferenceID)

	order, err := h.usecase.CreateOrder(c.Request.Context(), payload.ReferenceID)
	if err != nil {
		log.Printf("[payment][handler] create-order failed reference_id=%s err=%v", payload.ReferenceID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create-order success reference_id=%s order_id=%s", order.ReferenceID, order.OrderID)

	c.JSON(http.StatusOK, response.FromPaymentOrder(order))
}

// ConfirmPayment settles a registration from the checkout success callback.
// The signature is verified before any state is touched.
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var payload request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] confirm start reference_id=%s order_id=%s", payload.ReferenceID, payload.OrderID)

	reg, err := h.usecase.ConfirmCallback(c.Request.Context(), usecase.ConfirmCommand{
		ReferenceID: payload.ReferenceID,
		OrderID:     payload.OrderID,
		PaymentID:   payload.PaymentID,
		Signature:   payload.Signature,
	})
	if err != nil {
		log.Printf("[payment][handler] confirm failed reference_id=%s err=%v", payload.ReferenceID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] confirm success reference_id=%s transaction_id=%s", reg.ReferenceID, reg.TransactionID)

	c.JSON(http.StatusOK, response.ConfirmPaymentResponse{
		Success:       true,
		ReferenceID:   reg.ReferenceID,
		TransactionID: reg.TransactionID,
	})
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReferenceID), errors.Is(err, usecase.ErrInvalidConfirmPayload), errors.Is(err, usecase.ErrOrderReferenceMismatch):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Payment signature verification failed", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrRegistrationNotFound):
		return pkg.NewDomainErrorSimple("REGISTRATION_NOT_FOUND", "Registration not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotCreated):
		return pkg.NewDomainErrorSimple("ORDER_NOT_CREATED", "No payment order exists for this registration", http.StatusConflict)
	case errors.Is(err, usecase.ErrRegistrationClosed):
		return pkg.NewDomainErrorSimple("REGISTRATION_CLOSED", "Registration is already closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider is not configured", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrGatewayOrderCreate):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider rejected the order", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
