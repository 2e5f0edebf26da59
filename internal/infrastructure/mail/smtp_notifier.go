package mail

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"eventos_xpto/internal/domain/entities"
	"eventos_xpto/internal/usecase/interfaces"
)

var ErrMissingSMTPConfig = errors.New("missing SMTP configuration")

// SMTPConfig carries the mail transport credentials.

type SMTPConfig struct {
	Host          string
	Port          int
	Username      string
	Password      string
	From          string
	OperatorEmail string
	EventName     string
}

// SMTPNotifier sends the participant confirmation and the operator
// notification over plain SMTP. Delivery is best-effort: callers log errors
// and move on, the PAID state is never rolled back.

type SMTPNotifier struct {
	cfg SMTPConfig

	// send is swappable for tests; defaults to smtp.SendMail.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

var _ interfaces.INotifier = (*SMTPNotifier)(nil)

func NewSMTPNotifier(cfg SMTPConfig) (*SMTPNotifier, error) {
	if cfg.Host == "" || cfg.From == "" || cfg.OperatorEmail == "" {
		return nil, ErrMissingSMTPConfig
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &SMTPNotifier{cfg: cfg, send: smtp.SendMail}, nil
}

func (n *SMTPNotifier) SendPaymentConfirmation(ctx context.Context, reg entities.Registration, transactionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data := NewConfirmationData(reg, transactionID, n.cfg.EventName)

	pSubject, pBody, err := RenderParticipantConfirmation(data)
	if err != nil {
		return err
	}
	oSubject, oBody, err := RenderOperatorNotification(data)
	if err != nil {
		return err
	}

	var errs []error
	if err := n.deliver(reg.Email, pSubject, pBody); err != nil {
		log.Printf("[mail][notifier] participant mail failed reference_id=%s err=%v", reg.ReferenceID, err)
		errs = append(errs, err)
	}
	if err := n.deliver(n.cfg.OperatorEmail, oSubject, oBody); err != nil {
		log.Printf("[mail][notifier] operator mail failed reference_id=%s err=%v", reg.ReferenceID, err)
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (n *SMTPNotifier) deliver(to, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + n.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}
	return n.send(addr, auth, n.cfg.From, []string{to}, []byte(msg))
}

// ConsoleNotifier logs instead of sending. Used when SMTP is not configured
// so local runs still show what would have gone out.

type ConsoleNotifier struct {
	EventName string
}

var _ interfaces.INotifier = (*ConsoleNotifier)(nil)

func (n *ConsoleNotifier) SendPaymentConfirmation(_ context.Context, reg entities.Registration, transactionID string) error {
	data := NewConfirmationData(reg, transactionID, n.EventName)
	subject, body, err := RenderParticipantConfirmation(data)
	if err != nil {
		return err
	}
	log.Printf("[mail][notifier] console delivery to=%s subject=%q\n%s", reg.Email, subject, body)
	return nil
}
