package response

import "eventos_xpto/internal/usecase"

// PaymentOrderResponse carries what the checkout page needs to open the
// gateway widget.

type PaymentOrderResponse struct {
	ReferenceID string `json:"reference_id"`
	OrderID     string `json:"order_id"`
	KeyID       string `json:"key_id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
}

func FromPaymentOrder(o usecase.PaymentOrder) PaymentOrderResponse {
	return PaymentOrderResponse{
		ReferenceID: o.ReferenceID,
		OrderID:     o.OrderID,
		KeyID:       o.KeyID,
		Amount:      o.Amount,
		Currency:    o.Currency,
	}
}

type ConfirmPaymentResponse struct {
	Success       bool   `json:"success"`
	ReferenceID   string `json:"reference_id"`
	TransactionID string `json:"transaction_id"`
}

type WebhookAckResponse struct {
	Success bool `json:"success"`
}
