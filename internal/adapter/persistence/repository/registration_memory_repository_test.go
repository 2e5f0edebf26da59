package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"eventos_xpto/internal/domain/entities"
)

func seedOrderCreated(t *testing.T, repo *RegistrationMemoryRepository) entities.Registration {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	reg, err := repo.Create(ctx, entities.Registration{
		ReferenceID: "ref-1",
		FullName:    "A",
		Email:       "a@x.com",
		Phone:       "+910000000000",
		Status:      entities.RegistrationStatusCreated,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	reg, err = repo.AttachOrder(ctx, reg.ReferenceID, "order_1")
	if err != nil {
		t.Fatalf("attach order failed: %v", err)
	}
	if reg.Status != entities.RegistrationStatusOrderCreated {
		t.Fatalf("expected ORDER_CREATED, got %s", reg.Status)
	}
	return reg
}

func TestMemoryRepository_DuplicateCreateRejected(t *testing.T) {
	repo := NewRegistrationMemoryRepository()
	seedOrderCreated(t, repo)

	if _, err := repo.Create(context.Background(), entities.Registration{ReferenceID: "ref-1"}); err == nil {
		t.Fatalf("expected duplicate reference id error")
	}
}

func TestMemoryRepository_OrderIDLookup(t *testing.T) {
	repo := NewRegistrationMemoryRepository()
	seedOrderCreated(t, repo)

	reg, err := repo.GetByOrderID(context.Background(), "order_1")
	if err != nil || reg.ReferenceID != "ref-1" {
		t.Fatalf("expected lookup by order id, got %+v err=%v", reg, err)
	}

	reg, err = repo.GetByOrderID(context.Background(), "order_unknown")
	if err != nil || reg.ReferenceID != "" {
		t.Fatalf("expected empty result for unknown order, got %+v err=%v", reg, err)
	}
}

func TestMemoryRepository_MarkPaidIsCompareAndSet(t *testing.T) {
	repo := NewRegistrationMemoryRepository()
	seedOrderCreated(t, repo)
	ctx := context.Background()

	reg, transitioned, err := repo.MarkPaid(ctx, "ref-1", "pay_1", time.Now().UTC())
	if err != nil || !transitioned {
		t.Fatalf("expected first MarkPaid to transition, got transitioned=%v err=%v", transitioned, err)
	}
	if reg.Status != entities.RegistrationStatusPaid || reg.TransactionID != "pay_1" {
		t.Fatalf("unexpected record after MarkPaid: %+v", reg)
	}

	reg, transitioned, err = repo.MarkPaid(ctx, "ref-1", "pay_2", time.Now().UTC())
	if err != nil || transitioned {
		t.Fatalf("expected second MarkPaid to be a no-op, got transitioned=%v err=%v", transitioned, err)
	}
	if reg.TransactionID != "pay_1" {
		t.Fatalf("transaction id overwritten by duplicate confirmation: %+v", reg)
	}
}

func TestMemoryRepository_FailedNeverOverwritesPaid(t *testing.T) {
	repo := NewRegistrationMemoryRepository()
	seedOrderCreated(t, repo)
	ctx := context.Background()

	if _, ok, _ := repo.MarkPaid(ctx, "ref-1", "pay_1", time.Now().UTC()); !ok {
		t.Fatalf("expected MarkPaid to transition")
	}

	reg, transitioned, err := repo.MarkFailed(ctx, "ref-1", "payment failed", time.Now().UTC())
	if err != nil || transitioned {
		t.Fatalf("expected MarkFailed after PAID to be a no-op, got transitioned=%v err=%v", transitioned, err)
	}
	if reg.Status != entities.RegistrationStatusPaid {
		t.Fatalf("PAID reverted to %s", reg.Status)
	}
}

func TestMemoryRepository_ConcurrentMarkPaid(t *testing.T) {
	repo := NewRegistrationMemoryRepository()
	seedOrderCreated(t, repo)
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, transitioned, err := repo.MarkPaid(ctx, "ref-1", "pay_1", time.Now().UTC())
			if err != nil {
				t.Errorf("MarkPaid errored: %v", err)
				return
			}
			if transitioned {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Fatalf("expected exactly one winning transition, got %d", wins)
	}
}
