package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"eventos_xpto/internal/domain/entities"
	"eventos_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidFullName      = errors.New("invalid full_name")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrInvalidPhone         = errors.New("invalid phone")
	ErrInvalidReferenceID   = errors.New("invalid reference id")
	ErrRegistrationNotFound = errors.New("registration not found")
)

// IRegistrationUseCase exposes registration intake and status polling.

type IRegistrationUseCase interface {
	Register(ctx context.Context, fullName, email, phone string) (entities.Registration, error)
	CheckPayment(ctx context.Context, referenceID string) (entities.PaymentStatusView, error)
	List(ctx context.Context) ([]entities.Registration, error)
}

type RegistrationUseCase struct {
	repo interfaces.IRegistrationRepository
}

var _ IRegistrationUseCase = (*RegistrationUseCase)(nil)

func NewRegistrationUseCase(repo interfaces.IRegistrationRepository) *RegistrationUseCase {
	return &RegistrationUseCase{repo: repo}
}

func (u *RegistrationUseCase) Register(ctx context.Context, fullName, email, phone string) (entities.Registration, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if fullName == "" {
		return entities.Registration{}, ErrInvalidFullName
	}
	if email == "" || !strings.Contains(email, "@") {
		return entities.Registration{}, ErrInvalidEmail
	}
	if phone == "" {
		return entities.Registration{}, ErrInvalidPhone
	}

	now := time.Now().UTC()
	r := entities.Registration{
		// uuid v4 carries 122 random bits, comfortably above the entropy
		// floor required for reference ids.
		ReferenceID: uuid.NewString(),
		FullName:    fullName,
		Email:       email,
		Phone:       phone,
		Status:      entities.RegistrationStatusCreated,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.Printf("[registration][usecase] create failed reference_id=%s err=%v", r.ReferenceID, err)
		return entities.Registration{}, err
	}
	log.Printf("[registration][usecase] registered reference_id=%s", created.ReferenceID)
	return created, nil
}

// CheckPayment never errors on an unknown reference id; the polling contract
// reports UNKNOWN instead.
func (u *RegistrationUseCase) CheckPayment(ctx context.Context, referenceID string) (entities.PaymentStatusView, error) {
	referenceID = strings.TrimSpace(referenceID)
	if referenceID == "" {
		return entities.PaymentStatusViewUnknown, ErrInvalidReferenceID
	}

	r, err := u.repo.GetByReferenceID(ctx, referenceID)
	if err != nil {
		return entities.PaymentStatusViewUnknown, err
	}
	if r.ReferenceID == "" {
		return entities.PaymentStatusViewUnknown, nil
	}
	return r.StatusView(), nil
}

func (u *RegistrationUseCase) List(ctx context.Context) ([]entities.Registration, error) {
	return u.repo.List(ctx)
}
