package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
)

var (
	ErrMissingRazorpayCredentials = errors.New("missing RAZORPAY_KEY_ID/RAZORPAY_KEY_SECRET")
	ErrRazorpayNotConfigured      = errors.New("razorpay gateway not configured")
)

const orderCreateTimeoutSeconds = 15

// RazorpayGateway creates gateway orders and verifies both signature
// variants. In mock mode (local development, no credentials needed) order ids
// are fabricated and every signature check uses the configured secrets the
// same way, so the full flow stays exercisable offline.

type RazorpayGateway struct {
	client        *razorpay.Client
	keyID         string
	keySecret     string
	webhookSecret string
	mockMode      bool
	mockSeq       atomic.Int64
}

func NewRazorpayGateway(keyID, keySecret, webhookSecret string) (*RazorpayGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &RazorpayGateway{keyID: keyID, keySecret: keySecret, webhookSecret: webhookSecret, mockMode: true}, nil
	}

	if keyID == "" || keySecret == "" {
		log.Printf("[payment][gateway] missing razorpay credentials")
		return nil, ErrMissingRazorpayCredentials
	}

	client := razorpay.NewClient(keyID, keySecret)
	client.SetTimeout(orderCreateTimeoutSeconds)
	log.Printf("[payment][gateway] razorpay client initialized key_id=%s", keyID)

	return &RazorpayGateway{
		client:        client,
		keyID:         keyID,
		keySecret:     keySecret,
		webhookSecret: webhookSecret,
	}, nil
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error) {
	if g != nil && g.mockMode {
		id := fmt.Sprintf("order_mock_%d_%d", time.Now().UTC().UnixNano(), g.mockSeq.Add(1))
		log.Printf("[payment][gateway] mock order created order_id=%s amount=%d %s", id, amount, currency)
		return id, nil
	}

	if g == nil || g.client == nil {
		return "", ErrRazorpayNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		// The SDK error message carries the provider code/description; it is
		// passed through untouched for the caller to act on.
		log.Printf("[payment][gateway] order create failed receipt=%s err=%v", receipt, err)
		return "", err
	}

	id, _ := order["id"].(string)
	if id == "" {
		return "", errors.New("razorpay order response missing id")
	}
	log.Printf("[payment][gateway] order created order_id=%s amount=%d %s", id, amount, currency)
	return id, nil
}

func (g *RazorpayGateway) KeyID() string { return g.keyID }

func (g *RazorpayGateway) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	return VerifyPaymentSignature(orderID, paymentID, signature, g.keySecret)
}

func (g *RazorpayGateway) VerifyWebhookSignature(body []byte, signature string) bool {
	return VerifyWebhookSignature(body, signature, g.webhookSecret)
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "RAZORPAY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
