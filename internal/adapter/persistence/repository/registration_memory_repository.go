package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"eventos_xpto/internal/domain/entities"
	"eventos_xpto/internal/usecase/interfaces"
)

var ErrDuplicateReferenceID = errors.New("duplicate reference id")

// RegistrationMemoryRepository is an in-memory IRegistrationRepository with
// the same compare-and-set transition semantics as the DynamoDB one. Used for
// local runs (REGISTRATION_STORE=memory) and in tests that exercise the
// confirmation race.

type RegistrationMemoryRepository struct {
	mu      sync.Mutex
	byRef   map[string]entities.Registration
	byOrder map[string]string
}

var _ interfaces.IRegistrationRepository = (*RegistrationMemoryRepository)(nil)

func NewRegistrationMemoryRepository() *RegistrationMemoryRepository {
	return &RegistrationMemoryRepository{
		byRef:   make(map[string]entities.Registration),
		byOrder: make(map[string]string),
	}
}

func (r *RegistrationMemoryRepository) Create(_ context.Context, reg entities.Registration) (entities.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byRef[reg.ReferenceID]; ok {
		return entities.Registration{}, ErrDuplicateReferenceID
	}
	r.byRef[reg.ReferenceID] = reg
	return reg, nil
}

func (r *RegistrationMemoryRepository) GetByReferenceID(_ context.Context, referenceID string) (entities.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byRef[referenceID], nil
}

func (r *RegistrationMemoryRepository) GetByOrderID(_ context.Context, orderID string) (entities.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ref, ok := r.byOrder[orderID]
	if !ok {
		return entities.Registration{}, nil
	}
	return r.byRef[ref], nil
}

func (r *RegistrationMemoryRepository) AttachOrder(_ context.Context, referenceID, orderID string) (entities.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.byRef[referenceID]
	if !ok {
		return entities.Registration{}, nil
	}
	if reg.Status != entities.RegistrationStatusCreated {
		return reg, nil
	}

	reg.Status = entities.RegistrationStatusOrderCreated
	reg.OrderID = orderID
	reg.UpdatedAt = time.Now().UTC()
	r.byRef[referenceID] = reg
	r.byOrder[orderID] = referenceID
	return reg, nil
}

func (r *RegistrationMemoryRepository) MarkPaid(_ context.Context, referenceID, transactionID string, paidAt time.Time) (entities.Registration, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.byRef[referenceID]
	if !ok {
		return entities.Registration{}, false, nil
	}
	if reg.Status != entities.RegistrationStatusOrderCreated {
		return reg, false, nil
	}

	reg.Status = entities.RegistrationStatusPaid
	reg.TransactionID = transactionID
	reg.PaidAt = &paidAt
	reg.UpdatedAt = paidAt
	r.byRef[referenceID] = reg
	return reg, true, nil
}

func (r *RegistrationMemoryRepository) MarkFailed(_ context.Context, referenceID, reason string, failedAt time.Time) (entities.Registration, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.byRef[referenceID]
	if !ok {
		return entities.Registration{}, false, nil
	}
	if reg.Status != entities.RegistrationStatusOrderCreated {
		return reg, false, nil
	}

	reg.Status = entities.RegistrationStatusFailed
	reg.FailureReason = reason
	reg.FailedAt = &failedAt
	reg.UpdatedAt = failedAt
	r.byRef[referenceID] = reg
	return reg, true, nil
}

func (r *RegistrationMemoryRepository) List(_ context.Context) ([]entities.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	regs := make([]entities.Registration, 0, len(r.byRef))
	for _, reg := range r.byRef {
		regs = append(regs, reg)
	}
	sort.Slice(regs, func(i, j int) bool { return regs[i].CreatedAt.Before(regs[j].CreatedAt) })
	return regs, nil
}
