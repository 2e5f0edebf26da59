package interfaces

import (
	"context"

	"eventos_xpto/internal/domain/entities"
)

// INotifier delivers the two confirmation messages (participant + operator)
// after a payment is confirmed. Best-effort: callers log returned errors and
// never let them roll back the PAID transition.

type INotifier interface {
	SendPaymentConfirmation(ctx context.Context, reg entities.Registration, transactionID string) error
}
