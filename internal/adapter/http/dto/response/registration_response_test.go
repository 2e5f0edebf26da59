package response

import (
	"testing"
	"time"

	"eventos_xpto/internal/domain/entities"
)

func TestFromRegistration(t *testing.T) {
	now := time.Now().UTC()
	paidAt := now.Add(time.Minute)

	r := entities.Registration{
		ReferenceID:   "ref-1",
		FullName:      "A",
		Email:         "a@x.com",
		Phone:         "+910000000000",
		OrderID:       "order_1",
		Status:        entities.RegistrationStatusPaid,
		TransactionID: "pay_1",
		CreatedAt:     now,
		PaidAt:        &paidAt,
	}

	res := FromRegistration(r)
	if res.ReferenceID != "ref-1" || res.Status != "PAID" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.OrderID != "order_1" || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.PaidAt == nil || !res.PaidAt.Equal(paidAt) {
		t.Fatalf("unexpected paid_at: %+v", res.PaidAt)
	}
}

func TestFromRegistrations(t *testing.T) {
	out := FromRegistrations([]entities.Registration{
		{ReferenceID: "ref-1", Status: entities.RegistrationStatusCreated},
		{ReferenceID: "ref-2", Status: entities.RegistrationStatusPaid},
	})
	if len(out) != 2 || out[0].ReferenceID != "ref-1" || out[1].Status != "PAID" {
		t.Fatalf("unexpected list: %+v", out)
	}

	if got := FromRegistrations(nil); len(got) != 0 {
		t.Fatalf("expected empty slice for nil input, got %+v", got)
	}
}
