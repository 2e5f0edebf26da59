package usecase

import (
	"context"
	"errors"
	"testing"

	"eventos_xpto/internal/domain/entities"
	mock_interfaces "eventos_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRegistrationUseCase_Register_Validations(t *testing.T) {
	uc := NewRegistrationUseCase(nil)

	cases := []struct {
		name                   string
		fullName, email, phone string
		want                   error
	}{
		{"empty full name", " ", "a@x.com", "+910000000000", ErrInvalidFullName},
		{"empty email", "A", "", "+910000000000", ErrInvalidEmail},
		{"email without at-sign", "A", "not-an-email", "+910000000000", ErrInvalidEmail},
		{"empty phone", "A", "a@x.com", "  ", ErrInvalidPhone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Register(context.Background(), tc.fullName, tc.email, tc.phone)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestRegistrationUseCase_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIRegistrationRepository(ctrl)
	uc := NewRegistrationUseCase(repo)

	var stored entities.Registration
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r entities.Registration) (entities.Registration, error) {
			stored = r
			return r, nil
		})

	reg, err := uc.Register(context.Background(), "  A  ", "a@x.com", "+910000000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.ReferenceID == "" {
		t.Fatalf("expected a generated reference id")
	}
	if reg.Status != entities.RegistrationStatusCreated {
		t.Fatalf("expected CREATED, got %s", reg.Status)
	}
	if stored.FullName != "A" {
		t.Fatalf("expected trimmed full name, got %q", stored.FullName)
	}
	if stored.OrderID != "" || stored.TransactionID != "" {
		t.Fatalf("fresh registration must carry no order or transaction: %+v", stored)
	}
}

func TestRegistrationUseCase_Register_ReferenceIDsAreUnique(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIRegistrationRepository(ctrl)
	uc := NewRegistrationUseCase(repo)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r entities.Registration) (entities.Registration, error) {
			return r, nil
		}).Times(10000)

	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		reg, err := uc.Register(context.Background(), "A", "a@x.com", "+910000000000")
		if err != nil {
			t.Fatalf("unexpected error at %d: %v", i, err)
		}
		if _, dup := seen[reg.ReferenceID]; dup {
			t.Fatalf("duplicate reference id after %d registrations: %s", i, reg.ReferenceID)
		}
		seen[reg.ReferenceID] = struct{}{}
	}
}

func TestRegistrationUseCase_CheckPayment(t *testing.T) {
	t.Run("empty reference id", func(t *testing.T) {
		uc := NewRegistrationUseCase(nil)
		if _, err := uc.CheckPayment(context.Background(), "  "); !errors.Is(err, ErrInvalidReferenceID) {
			t.Fatalf("expected ErrInvalidReferenceID, got %v", err)
		}
	})

	t.Run("unknown registration reports UNKNOWN", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRegistrationRepository(ctrl)
		uc := NewRegistrationUseCase(repo)

		repo.EXPECT().GetByReferenceID(gomock.Any(), "nope").Return(entities.Registration{}, nil)

		view, err := uc.CheckPayment(context.Background(), "nope")
		if err != nil || view != entities.PaymentStatusViewUnknown {
			t.Fatalf("expected UNKNOWN without error, got %s err=%v", view, err)
		}
	})

	t.Run("status mapping", func(t *testing.T) {
		cases := []struct {
			status entities.RegistrationStatus
			want   entities.PaymentStatusView
		}{
			{entities.RegistrationStatusCreated, entities.PaymentStatusViewPending},
			{entities.RegistrationStatusOrderCreated, entities.PaymentStatusViewPending},
			{entities.RegistrationStatusPaid, entities.PaymentStatusViewPaid},
			{entities.RegistrationStatusFailed, entities.PaymentStatusViewFailed},
		}

		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIRegistrationRepository(ctrl)
			uc := NewRegistrationUseCase(repo)

			repo.EXPECT().GetByReferenceID(gomock.Any(), "ref-1").Return(entities.Registration{ReferenceID: "ref-1", Status: tc.status}, nil)

			view, err := uc.CheckPayment(context.Background(), "ref-1")
			if err != nil || view != tc.want {
				t.Fatalf("status %s: expected %s, got %s err=%v", tc.status, tc.want, view, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("repo error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRegistrationRepository(ctrl)
		uc := NewRegistrationUseCase(repo)

		repo.EXPECT().GetByReferenceID(gomock.Any(), "ref-1").Return(entities.Registration{}, errors.New("db"))

		if _, err := uc.CheckPayment(context.Background(), "ref-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
