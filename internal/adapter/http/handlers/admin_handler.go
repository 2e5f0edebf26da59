package handlers

import (
	response "eventos_xpto/internal/adapter/http/dto/response"
	"eventos_xpto/internal/usecase"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes operator-only views of the registration book.

type AdminHandler struct {
	usecase usecase.IRegistrationUseCase
}

func NewAdminHandler(uc usecase.IRegistrationUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// ListRegistrations returns every registration with its current status.
func (h *AdminHandler) ListRegistrations(c *gin.Context) {
	regs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[admin][handler] list failed err=%v", err)
		appErr := mapRegistrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRegistrations(regs))
}
