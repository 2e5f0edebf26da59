package interfaces

import (
	"context"
	"time"

	"eventos_xpto/internal/domain/entities"
)

// IRegistrationRepository abstracts persistence for Registration.
//
// Lookups return a zero-value Registration (ReferenceID == "") when no record
// exists; callers translate that into their own not-found errors.
//
// AttachOrder, MarkPaid and MarkFailed are conditional writes: they only apply
// when the record is in the expected prior state, and report through the
// returned entity (and the transitioned flag) what the record looks like
// afterwards. This is what guarantees at-most-one transition into PAID when a
// client callback races a webhook for the same payment.

type IRegistrationRepository interface {
	Create(ctx context.Context, r entities.Registration) (entities.Registration, error)
	GetByReferenceID(ctx context.Context, referenceID string) (entities.Registration, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.Registration, error)

	// AttachOrder sets order_id and moves CREATED -> ORDER_CREATED.
	AttachOrder(ctx context.Context, referenceID, orderID string) (entities.Registration, error)

	// MarkPaid moves ORDER_CREATED -> PAID recording the gateway transaction id.
	// transitioned is false when the record was not in ORDER_CREATED; the
	// returned entity then reflects the current stored state.
	MarkPaid(ctx context.Context, referenceID, transactionID string, paidAt time.Time) (reg entities.Registration, transitioned bool, err error)

	// MarkFailed moves ORDER_CREATED -> FAILED. It never overwrites PAID.
	MarkFailed(ctx context.Context, referenceID, reason string, failedAt time.Time) (reg entities.Registration, transitioned bool, err error)

	List(ctx context.Context) ([]entities.Registration, error)
}
