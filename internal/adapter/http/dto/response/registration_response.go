package response

import (
	"time"

	"eventos_xpto/internal/domain/entities"
)

type RegistrationResponse struct {
	ReferenceID string     `json:"reference_id"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	OrderID     string     `json:"order_id,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

func FromRegistration(r entities.Registration) RegistrationResponse {
	return RegistrationResponse{
		ReferenceID: r.ReferenceID,
		FullName:    r.FullName,
		Email:       r.Email,
		Phone:       r.Phone,
		OrderID:     r.OrderID,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		PaidAt:      r.PaidAt,
	}
}

func FromRegistrations(regs []entities.Registration) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		out = append(out, FromRegistration(r))
	}
	return out
}

// PaymentStatusResponse is the polling answer for check-payment.

type PaymentStatusResponse struct {
	ReferenceID string `json:"reference_id"`
	Status      string `json:"status"`
}
