package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func sign(msg, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(msg))
	return hex.EncodeToString(h.Sum(nil))
}

func TestVerifyPaymentSignature(t *testing.T) {
	secret := "key-secret"
	good := sign("order_1|pay_1", secret)

	if !VerifyPaymentSignature("order_1", "pay_1", good, secret) {
		t.Fatalf("expected valid signature to verify")
	}

	t.Run("single flipped bit rejected", func(t *testing.T) {
		raw, _ := hex.DecodeString(good)
		raw[0] ^= 0x01
		tampered := hex.EncodeToString(raw)
		if VerifyPaymentSignature("order_1", "pay_1", tampered, secret) {
			t.Fatalf("expected tampered signature to fail")
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		if VerifyPaymentSignature("order_1", "pay_1", good, "other-secret") {
			t.Fatalf("expected signature with wrong secret to fail")
		}
	})

	t.Run("swapped ids rejected", func(t *testing.T) {
		if VerifyPaymentSignature("pay_1", "order_1", good, secret) {
			t.Fatalf("expected swapped message to fail")
		}
	})
}

func TestVerifyWebhookSignature(t *testing.T) {
	secret := "webhook-secret"
	body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_1"}}}}`)
	good := sign(string(body), secret)

	if !VerifyWebhookSignature(body, good, secret) {
		t.Fatalf("expected valid webhook signature to verify")
	}

	t.Run("re-serialized body is not equivalent", func(t *testing.T) {
		// Same JSON with different whitespace must not verify against the
		// signature computed over the original bytes.
		reserialized := []byte(`{"event": "payment.captured", "payload": {"payment": {"entity": {"id": "pay_1", "order_id": "order_1"}}}}`)
		if VerifyWebhookSignature(reserialized, good, secret) {
			t.Fatalf("expected reserialized body to fail verification")
		}
	})

	t.Run("empty signature rejected", func(t *testing.T) {
		if VerifyWebhookSignature(body, "", secret) {
			t.Fatalf("expected empty signature to fail")
		}
	})
}
