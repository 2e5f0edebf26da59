package mail

import (
	"context"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"eventos_xpto/internal/domain/entities"
)

func sampleRegistration() entities.Registration {
	now := time.Now().UTC()
	return entities.Registration{
		ReferenceID: "ref-1",
		FullName:    "A",
		Email:       "a@x.com",
		Phone:       "+910000000000",
		OrderID:     "order_1",
		Status:      entities.RegistrationStatusPaid,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestRenderParticipantConfirmation(t *testing.T) {
	data := NewConfirmationData(sampleRegistration(), "pay_1", "GopherConf 2026")

	subject, body, err := RenderParticipantConfirmation(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(subject, "GopherConf 2026") {
		t.Fatalf("subject missing event name: %q", subject)
	}
	for _, want := range []string{"Hello A,", "ref-1", "pay_1"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}

func TestRenderOperatorNotification(t *testing.T) {
	data := NewConfirmationData(sampleRegistration(), "pay_1", "GopherConf 2026")

	subject, body, err := RenderOperatorNotification(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(subject, "ref-1") {
		t.Fatalf("subject missing reference id: %q", subject)
	}
	for _, want := range []string{"A <a@x.com> (+910000000000)", "ref-1", "pay_1"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}

func TestSMTPNotifier_SendsBothMessages(t *testing.T) {
	n, err := NewSMTPNotifier(SMTPConfig{
		Host:          "smtp.test",
		From:          "noreply@test",
		OperatorEmail: "ops@test",
		EventName:     "GopherConf 2026",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sent []string
	n.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		sent = append(sent, to[0])
		if !strings.Contains(string(msg), "ref-1") {
			t.Fatalf("message missing reference id:\n%s", msg)
		}
		return nil
	}

	if err := n.SendPaymentConfirmation(context.Background(), sampleRegistration(), "pay_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sent) != 2 || sent[0] != "a@x.com" || sent[1] != "ops@test" {
		t.Fatalf("expected participant and operator delivery, got %v", sent)
	}
}

func TestNewSMTPNotifier_MissingConfig(t *testing.T) {
	if _, err := NewSMTPNotifier(SMTPConfig{Host: "smtp.test"}); err == nil {
		t.Fatalf("expected missing config error")
	}
}
