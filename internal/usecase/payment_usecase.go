package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"eventos_xpto/internal/domain/entities"
	"eventos_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidSignature       = errors.New("invalid signature")
	ErrInvalidConfirmPayload  = errors.New("invalid confirmation payload")
	ErrOrderNotCreated        = errors.New("payment order not created yet")
	ErrRegistrationClosed     = errors.New("registration already failed")
	ErrGatewayNotConfigured   = errors.New("payment gateway not configured")
	ErrGatewayOrderCreate     = errors.New("payment gateway order creation failed")
	ErrOrderReferenceMismatch = errors.New("order id does not belong to this registration")
)

// PaymentOrder is what the checkout page needs to open the gateway widget.

type PaymentOrder struct {
	ReferenceID string
	OrderID     string
	KeyID       string
	Amount      int64
	Currency    string
}

// ConfirmCommand is the synchronous client-callback confirmation input.

type ConfirmCommand struct {
	ReferenceID string
	OrderID     string
	PaymentID   string
	Signature   string
}

// IPaymentUseCase covers order creation and both confirmation paths.

type IPaymentUseCase interface {
	CreateOrder(ctx context.Context, referenceID string) (PaymentOrder, error)
	ConfirmCallback(ctx context.Context, cmd ConfirmCommand) (entities.Registration, error)
	HandleWebhook(ctx context.Context, body []byte, signature string) error
}

type PaymentUseCase struct {
	repo     interfaces.IRegistrationRepository
	gateway  interfaces.IPaymentGateway
	notifier interfaces.INotifier

	amount   int64
	currency string
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

// NewPaymentUseCase wires the confirmation state machine. amount is the fixed
// program fee in the currency's minor unit.
func NewPaymentUseCase(repo interfaces.IRegistrationRepository, gateway interfaces.IPaymentGateway, notifier interfaces.INotifier, amount int64, currency string) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, gateway: gateway, notifier: notifier, amount: amount, currency: currency}
}

// CreateOrder is idempotent for a registration already in ORDER_CREATED: it
// re-issues the stored order id instead of creating a second gateway order.
func (u *PaymentUseCase) CreateOrder(ctx context.Context, referenceID string) (PaymentOrder, error) {
	referenceID = strings.TrimSpace(referenceID)
	if referenceID == "" {
		return PaymentOrder{}, ErrInvalidReferenceID
	}
	if u.gateway == nil {
		return PaymentOrder{}, ErrGatewayNotConfigured
	}

	reg, err := u.repo.GetByReferenceID(ctx, referenceID)
	if err != nil {
		return PaymentOrder{}, err
	}
	if reg.ReferenceID == "" {
		return PaymentOrder{}, ErrRegistrationNotFound
	}

	switch reg.Status {
	case entities.RegistrationStatusOrderCreated:
		log.Printf("[payment][usecase] order re-issue reference_id=%s order_id=%s", referenceID, reg.OrderID)
		return u.orderFor(reg), nil
	case entities.RegistrationStatusPaid:
		return u.orderFor(reg), nil
	case entities.RegistrationStatusFailed:
		return PaymentOrder{}, ErrRegistrationClosed
	}

	orderID, err := u.gateway.CreateOrder(ctx, u.amount, u.currency, referenceID)
	if err != nil {
		// Surfaced as-is (provider code/description included); retries are
		// the client's call, gateway order creation is not idempotent.
		log.Printf("[payment][usecase] gateway order create failed reference_id=%s err=%v", referenceID, err)
		return PaymentOrder{}, errors.Join(ErrGatewayOrderCreate, err)
	}

	updated, err := u.repo.AttachOrder(ctx, referenceID, orderID)
	if err != nil {
		return PaymentOrder{}, err
	}
	log.Printf("[payment][usecase] order created reference_id=%s order_id=%s", referenceID, orderID)
	return u.orderFor(updated), nil
}

func (u *PaymentUseCase) orderFor(reg entities.Registration) PaymentOrder {
	return PaymentOrder{
		ReferenceID: reg.ReferenceID,
		OrderID:     reg.OrderID,
		KeyID:       u.gateway.KeyID(),
		Amount:      u.amount,
		Currency:    u.currency,
	}
}

// ConfirmCallback handles the synchronous checkout callback. Signature is
// checked before anything else; a mismatch changes no state. A registration
// already PAID is an idempotent success: the stored transaction id is
// returned and no second notification goes out.
func (u *PaymentUseCase) ConfirmCallback(ctx context.Context, cmd ConfirmCommand) (entities.Registration, error) {
	if strings.TrimSpace(cmd.ReferenceID) == "" || strings.TrimSpace(cmd.OrderID) == "" || strings.TrimSpace(cmd.PaymentID) == "" || strings.TrimSpace(cmd.Signature) == "" {
		return entities.Registration{}, ErrInvalidConfirmPayload
	}
	if u.gateway == nil {
		return entities.Registration{}, ErrGatewayNotConfigured
	}

	if !u.gateway.VerifyPaymentSignature(cmd.OrderID, cmd.PaymentID, cmd.Signature) {
		log.Printf("[payment][usecase] callback signature mismatch reference_id=%s order_id=%s", cmd.ReferenceID, cmd.OrderID)
		return entities.Registration{}, ErrInvalidSignature
	}

	reg, err := u.repo.GetByReferenceID(ctx, cmd.ReferenceID)
	if err != nil {
		return entities.Registration{}, err
	}
	if reg.ReferenceID == "" {
		return entities.Registration{}, ErrRegistrationNotFound
	}
	if reg.OrderID != cmd.OrderID {
		return entities.Registration{}, ErrOrderReferenceMismatch
	}

	return u.settle(ctx, reg.ReferenceID, cmd.PaymentID)
}

// razorpayWebhookEvent mirrors the gateway's webhook envelope. Only the
// fields the tracker consumes are declared.

type razorpayWebhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID               string `json:"id"`
				OrderID          string `json:"order_id"`
				ErrorCode        string `json:"error_code"`
				ErrorDescription string `json:"error_description"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// HandleWebhook processes an asynchronous gateway push. The HMAC over the
// exact raw body bytes is verified before the JSON is parsed or any field is
// trusted. Everything after a valid signature is acknowledged to the sender
// even when internal processing fails, so transient errors are not amplified
// into redelivery storms; only an unverifiable event is rejected.
func (u *PaymentUseCase) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if u.gateway == nil {
		return ErrGatewayNotConfigured
	}
	if !u.gateway.VerifyWebhookSignature(body, signature) {
		log.Printf("[payment][usecase] webhook signature mismatch body_len=%d", len(body))
		return ErrInvalidSignature
	}

	var ev razorpayWebhookEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		log.Printf("[payment][usecase] webhook payload unmarshal failed err=%v", err)
		return nil
	}

	entity := ev.Payload.Payment.Entity
	switch ev.Event {
	case "payment.captured", "payment.authorized":
		u.webhookCaptured(ctx, entity.OrderID, entity.ID)
	case "payment.failed":
		u.webhookFailed(ctx, entity.OrderID, entity.ErrorCode, entity.ErrorDescription)
	default:
		log.Printf("[payment][usecase] webhook event ignored event=%s", ev.Event)
	}
	return nil
}

func (u *PaymentUseCase) webhookCaptured(ctx context.Context, orderID, paymentID string) {
	if orderID == "" || paymentID == "" {
		log.Printf("[payment][usecase] webhook captured missing ids order_id=%q payment_id=%q", orderID, paymentID)
		return
	}

	reg, err := u.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		log.Printf("[payment][usecase] webhook captured lookup failed order_id=%s err=%v", orderID, err)
		return
	}
	if reg.ReferenceID == "" {
		log.Printf("[payment][usecase] webhook captured unknown order order_id=%s", orderID)
		return
	}

	if _, err := u.settle(ctx, reg.ReferenceID, paymentID); err != nil {
		log.Printf("[payment][usecase] webhook captured settle failed reference_id=%s err=%v", reg.ReferenceID, err)
	}
}

func (u *PaymentUseCase) webhookFailed(ctx context.Context, orderID, code, description string) {
	if orderID == "" {
		return
	}

	reg, err := u.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		log.Printf("[payment][usecase] webhook failed lookup failed order_id=%s err=%v", orderID, err)
		return
	}
	if reg.ReferenceID == "" {
		log.Printf("[payment][usecase] webhook failed unknown order order_id=%s", orderID)
		return
	}

	reason := strings.TrimSpace(strings.TrimSpace(code) + " " + strings.TrimSpace(description))
	if reason == "" {
		reason = "payment failed"
	}

	// Conditional write: only ORDER_CREATED records move to FAILED. A failure
	// event arriving after a capture leaves PAID untouched.
	updated, transitioned, err := u.repo.MarkFailed(ctx, reg.ReferenceID, reason, time.Now().UTC())
	if err != nil {
		log.Printf("[payment][usecase] mark failed errored reference_id=%s err=%v", reg.ReferenceID, err)
		return
	}
	if !transitioned {
		log.Printf("[payment][usecase] failure event ignored reference_id=%s status=%s", reg.ReferenceID, updated.Status)
		return
	}
	log.Printf("[payment][usecase] registration failed reference_id=%s reason=%q", reg.ReferenceID, reason)
}

// settle performs the single PAID transition shared by both confirmation
// paths. The repository write is conditional on ORDER_CREATED, so of two
// racing confirmations exactly one observes transitioned=true and only that
// one dispatches the notification.
func (u *PaymentUseCase) settle(ctx context.Context, referenceID, paymentID string) (entities.Registration, error) {
	updated, transitioned, err := u.repo.MarkPaid(ctx, referenceID, paymentID, time.Now().UTC())
	if err != nil {
		return entities.Registration{}, err
	}

	if !transitioned {
		switch updated.Status {
		case entities.RegistrationStatusPaid:
			log.Printf("[payment][usecase] duplicate confirmation reference_id=%s transaction_id=%s", referenceID, updated.TransactionID)
			return updated, nil
		case entities.RegistrationStatusCreated:
			return entities.Registration{}, ErrOrderNotCreated
		default:
			return entities.Registration{}, ErrRegistrationClosed
		}
	}

	log.Printf("[payment][usecase] payment confirmed reference_id=%s transaction_id=%s", referenceID, paymentID)

	if u.notifier != nil {
		if err := u.notifier.SendPaymentConfirmation(ctx, updated, paymentID); err != nil {
			// Best-effort: payment truth is authoritative, mail is not.
			log.Printf("[payment][usecase] confirmation notification failed reference_id=%s err=%v", referenceID, err)
		}
	}
	return updated, nil
}
