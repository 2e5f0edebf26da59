package interfaces

import "context"

// IPaymentGateway abstracts the external payment provider (Razorpay).
//
// The gateway owns both secrets: the key secret that signs the synchronous
// checkout callback (order_id|payment_id) and the webhook secret that signs
// the raw webhook body. Verification must be constant-time.

type IPaymentGateway interface {
	// CreateOrder creates a gateway order for the given amount (minor units)
	// and returns the gateway-assigned order id. Not idempotent across calls;
	// callers must not retry blindly.
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (orderID string, err error)

	// KeyID is the public key the browser checkout needs.
	KeyID() string

	VerifyPaymentSignature(orderID, paymentID, signature string) bool
	VerifyWebhookSignature(body []byte, signature string) bool
}
