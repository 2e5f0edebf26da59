package request

// CreateOrderRequest asks for a gateway order for an existing registration.

type CreateOrderRequest struct {
	ReferenceID string `json:"reference_id" binding:"required"`
}

// ConfirmPaymentRequest is the synchronous checkout callback payload. The
// signature covers "order_id|payment_id" with the gateway key secret.

type ConfirmPaymentRequest struct {
	ReferenceID string `json:"reference_id" binding:"required"`
	OrderID     string `json:"order_id" binding:"required"`
	PaymentID   string `json:"payment_id" binding:"required"`
	Signature   string `json:"signature" binding:"required"`
}
