package entities

import "time"

// RegistrationStatus represents the lifecycle of a registration.
//
// Transitions are monotonic:
//
//	CREATED -> ORDER_CREATED -> PAID
//	                         -> FAILED
//
// PAID and FAILED are terminal. A failed-payment event must never overwrite
// a confirmed payment.

type RegistrationStatus string

const (
	RegistrationStatusCreated      RegistrationStatus = "CREATED"
	RegistrationStatusOrderCreated RegistrationStatus = "ORDER_CREATED"
	RegistrationStatusPaid         RegistrationStatus = "PAID"
	RegistrationStatusFailed       RegistrationStatus = "FAILED"
)

// PaymentStatusView is the externally visible status returned by the
// check-payment endpoint, derived from RegistrationStatus.

type PaymentStatusView string

const (
	PaymentStatusViewPaid    PaymentStatusView = "PAID"
	PaymentStatusViewPending PaymentStatusView = "PENDING"
	PaymentStatusViewFailed  PaymentStatusView = "FAILED"
	PaymentStatusViewUnknown PaymentStatusView = "UNKNOWN"
)

// Registration is the central entity persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: reference_id
//   - GSI1 (order_id-index): order_id, used to resolve webhook events that
//     only carry the gateway order id.
//
// Contact fields are immutable after creation. OrderID is set once at
// order-creation time and is unique across registrations. TransactionID is
// present if and only if Status == PAID.

type Registration struct {
	ReferenceID string `json:"reference_id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`

	OrderID       string             `json:"order_id,omitempty"`
	Status        RegistrationStatus `json:"status"`
	TransactionID string             `json:"transaction_id,omitempty"`
	FailureReason string             `json:"failure_reason,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	FailedAt  *time.Time `json:"failed_at,omitempty"`
}

// StatusView maps the internal state machine onto the polling contract.
func (r Registration) StatusView() PaymentStatusView {
	switch r.Status {
	case RegistrationStatusPaid:
		return PaymentStatusViewPaid
	case RegistrationStatusFailed:
		return PaymentStatusViewFailed
	case RegistrationStatusCreated, RegistrationStatusOrderCreated:
		return PaymentStatusViewPending
	default:
		return PaymentStatusViewUnknown
	}
}
