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

var errInvalidRegistrationPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid registration payload", http.StatusBadRequest)

// RegistrationHandler handles HTTP requests for registration intake and
// payment status polling.

type RegistrationHandler struct {
	usecase usecase.IRegistrationUseCase
}

func NewRegistrationHandler(uc usecase.IRegistrationUseCase) *RegistrationHandler {
	return &RegistrationHandler{usecase: uc}
}

// Register creates a registration and returns its reference id.
func (h *RegistrationHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegistrationPayload.HTTPStatus, errInvalidRegistrationPayload.ToHTTPError())
		return
	}

	reg, err := h.usecase.Register(c.Request.Context(), payload.FullName, payload.Email, payload.Phone)
	if err != nil {
		log.Printf("[registration][handler] register failed err=%v", err)
		appErr := mapRegistrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[registration][handler] registered reference_id=%s", reg.ReferenceID)

	c.JSON(http.StatusCreated, response.FromRegistration(reg))
}

// CheckPayment answers a polling client with the derived payment status.
// An unknown reference id is not an error; the status is UNKNOWN.
func (h *RegistrationHandler) CheckPayment(c *gin.Context) {
	referenceID := c.Query("reference_id")

	view, err := h.usecase.CheckPayment(c.Request.Context(), referenceID)
	if err != nil {
		appErr := mapRegistrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PaymentStatusResponse{ReferenceID: referenceID, Status: string(view)})
}

func mapRegistrationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFullName),
		errors.Is(err, usecase.ErrInvalidEmail),
		errors.Is(err, usecase.ErrInvalidPhone),
		errors.Is(err, usecase.ErrInvalidReferenceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRegistrationNotFound):
		return pkg.NewDomainErrorSimple("REGISTRATION_NOT_FOUND", "Registration not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
