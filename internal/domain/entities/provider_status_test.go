package entities

import (
	"testing"
	"time"
)

func TestParseProviderStatus(t *testing.T) {
	cases := map[string]ProviderStatus{
		"CREATED":    ProviderStatusCreated,
		"pending":    ProviderStatusPending,
		" ONGOING ":  ProviderStatusOngoing,
		"SUCCESSFUL": ProviderStatusSuccessful,
		"FAILED":     ProviderStatusFailed,
		"REJECTED":   ProviderStatusRejected,
		"CANCELLED":  ProviderStatusCancelled,
		"EXPIRED":    ProviderStatusUnknown,
		"":           ProviderStatusUnknown,
	}
	for raw, want := range cases {
		if got := ParseProviderStatus(raw); got != want {
			t.Fatalf("ParseProviderStatus(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestMapProviderStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	future := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	past := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("open statuses before due date stay pending", func(t *testing.T) {
		for _, s := range []ProviderStatus{ProviderStatusCreated, ProviderStatusPending, ProviderStatusOngoing} {
			rec := MapProviderStatus(ProviderTransaction{Status: s}, future, now)
			if rec.Status != PaymentStatusPending {
				t.Fatalf("%s: expected pending, got %s", s, rec.Status)
			}
			if rec.PaidDate != nil || rec.ErrorCode != "" {
				t.Fatalf("%s: unexpected side effects %+v", s, rec)
			}
		}
	})

	t.Run("open statuses after due date expire", func(t *testing.T) {
		for _, s := range []ProviderStatus{ProviderStatusCreated, ProviderStatusPending, ProviderStatusOngoing} {
			rec := MapProviderStatus(ProviderTransaction{Status: s}, past, now)
			if rec.Status != PaymentStatusExpired {
				t.Fatalf("%s: expected expired, got %s", s, rec.Status)
			}
		}
	})

	t.Run("due today expires once the day has started", func(t *testing.T) {
		today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		rec := MapProviderStatus(ProviderTransaction{Status: ProviderStatusPending}, today, now)
		if rec.Status != PaymentStatusExpired {
			t.Fatalf("expected expired, got %s", rec.Status)
		}
	})

	t.Run("exactly at due midnight stays pending", func(t *testing.T) {
		midnight := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		rec := MapProviderStatus(ProviderTransaction{Status: ProviderStatusOngoing}, midnight, midnight)
		if rec.Status != PaymentStatusPending {
			t.Fatalf("expected pending, got %s", rec.Status)
		}
	})

	t.Run("zero due date never expires", func(t *testing.T) {
		rec := MapProviderStatus(ProviderTransaction{Status: ProviderStatusPending}, time.Time{}, now)
		if rec.Status != PaymentStatusPending {
			t.Fatalf("expected pending, got %s", rec.Status)
		}
	})

	t.Run("successful marks paid today", func(t *testing.T) {
		rec := MapProviderStatus(ProviderTransaction{Status: ProviderStatusSuccessful, FinancialTransactionID: "ftx-1"}, past, now)
		if rec.Status != PaymentStatusPaid {
			t.Fatalf("expected paid, got %s", rec.Status)
		}
		if rec.PaidDate == nil || rec.PaidDate.Format(DateLayout) != "2026-03-15" {
			t.Fatalf("expected paid date 2026-03-15, got %v", rec.PaidDate)
		}
		if rec.FinancialTransactionID != "ftx-1" {
			t.Fatalf("expected financial transaction id, got %q", rec.FinancialTransactionID)
		}
	})

	t.Run("failures keep provider reason", func(t *testing.T) {
		for _, s := range []ProviderStatus{ProviderStatusFailed, ProviderStatusRejected, ProviderStatusCancelled} {
			tx := ProviderTransaction{Status: s, Reason: ProviderReason{Code: "PAYER_NOT_FOUND", Message: "Payer not found"}}
			rec := MapProviderStatus(tx, future, now)
			if rec.Status != PaymentStatusFailed {
				t.Fatalf("%s: expected failed, got %s", s, rec.Status)
			}
			if rec.ErrorCode != "PAYER_NOT_FOUND" || rec.ErrorMessage != "Payer not found" {
				t.Fatalf("%s: reason not kept: %+v", s, rec)
			}
		}
	})

	t.Run("unknown falls back to pending and is flagged", func(t *testing.T) {
		rec := MapProviderStatus(ProviderTransaction{Status: ProviderStatusUnknown, RawStatus: "WEIRD"}, past, now)
		if rec.Status != PaymentStatusPending || !rec.Unexpected {
			t.Fatalf("expected flagged pending, got %+v", rec)
		}
		if rec.RawStatus != "WEIRD" {
			t.Fatalf("expected raw status kept, got %q", rec.RawStatus)
		}
	})
}

func TestPaymentDisplayStatus(t *testing.T) {
	cases := []struct {
		name string
		p    Payment
		want string
	}{
		{name: "paid", p: Payment{Status: PaymentStatusPaid}, want: "Paid"},
		{name: "failed with message", p: Payment{Status: PaymentStatusFailed, MoMoErrorMessage: "Payer not found"}, want: "Failed: Payer not found"},
		{name: "failed without message", p: Payment{Status: PaymentStatusFailed}, want: "Failed"},
		{name: "expired", p: Payment{Status: PaymentStatusExpired}, want: "Expired"},
		{name: "no reference", p: Payment{Status: PaymentStatusPending}, want: "Pending"},
		{name: "awaiting", p: Payment{Status: PaymentStatusPending, MoMoReferenceID: "r", MoMoInvoiceStatus: "CREATED"}, want: "Awaiting payment"},
		{name: "ongoing", p: Payment{Status: PaymentStatusPending, MoMoReferenceID: "r", MoMoFlow: MoMoFlowRequestToPay, MoMoRequestStatus: "ONGOING"}, want: "Processing"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.DisplayStatus(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
