package response

import (
	"errors"
	"testing"
	"time"

	"propertyhub/internal/domain/entities"
	"propertyhub/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromPayment(t *testing.T) {
	paid := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	p := entities.Payment{
		ID:                "pay-1",
		Amount:            decimal.RequireFromString("180000.50"),
		DueDate:           time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Status:            entities.PaymentStatusPaid,
		PaidDate:          &paid,
		MoMoFlow:          entities.MoMoFlowInvoice,
		MoMoReferenceID:   "ref-1",
		MoMoInvoiceStatus: "SUCCESSFUL",
	}

	res := FromPayment(p)
	if res.Amount != 180000.5 || res.DueDate != "2026-03-31" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.PaidDate == nil || *res.PaidDate != "2026-03-15" {
		t.Fatalf("unexpected paid date: %v", res.PaidDate)
	}
	if res.DisplayStatus != "Paid" || res.MoMoFlow != "invoice" {
		t.Fatalf("unexpected status fields: %+v", res)
	}

	open := FromPayment(entities.Payment{ID: "pay-2", Status: entities.PaymentStatusPending})
	if open.PaidDate != nil || open.DisplayStatus != "Pending" {
		t.Fatalf("unexpected open payment: %+v", open)
	}
}

func TestFromTenant(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	res := FromTenant(entities.Tenant{
		ID: "t1", Rent: decimal.NewFromInt(1200), LeaseStart: &start,
		EmergencyContacts: []entities.EmergencyContact{{Name: "Joe", Phone: "+256700000001"}},
	})
	if res.Rent != 1200 || res.LeaseStart == nil || *res.LeaseStart != "2026-01-01" || res.LeaseEnd != nil {
		t.Fatalf("unexpected tenant: %+v", res)
	}
	if len(res.EmergencyContacts) != 1 || res.EmergencyContacts[0].Name != "Joe" {
		t.Fatalf("unexpected contacts: %+v", res.EmergencyContacts)
	}
	if empty := FromTenant(entities.Tenant{}); empty.EmergencyContacts == nil {
		t.Fatalf("expected empty slice, not nil")
	}
}

func TestFromCheckAllSummary(t *testing.T) {
	res := FromCheckAllSummary(usecase.CheckAllSummary{
		Checked: 2, Updated: 1, Failed: 1,
		Results:  []usecase.ReconcileResult{{Payment: entities.Payment{ID: "a"}, Updated: true}},
		Failures: []usecase.CheckFailure{{PaymentID: "b", Err: errors.New("boom")}},
	})
	if res.Checked != 2 || len(res.Results) != 1 || !res.Results[0].Updated {
		t.Fatalf("unexpected results: %+v", res)
	}
	if len(res.Failures) != 1 || res.Failures[0].PaymentID != "b" || res.Failures[0].Error != "boom" {
		t.Fatalf("unexpected failures: %+v", res.Failures)
	}
}

func TestFromInvoiceResult(t *testing.T) {
	p := entities.Payment{ID: "pay-1", Status: entities.PaymentStatusPending, MoMoReferenceID: "ref-1"}
	res := FromInvoiceResult(usecase.InvoiceResult{ReferenceID: "ref-1", Flow: entities.MoMoFlowInvoice, Payment: &p})
	if res.ReferenceID != "ref-1" || res.Payment == nil || res.Payment.DisplayStatus != "Awaiting payment" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if standalone := FromInvoiceResult(usecase.InvoiceResult{ReferenceID: "ref-2"}); standalone.Payment != nil {
		t.Fatalf("expected no payment on standalone request")
	}
}
