package usecase

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalizeMSISDN(t *testing.T) {
	valid := map[string]string{
		"+2348012345678":    "+2348012345678",
		"+234 801 234 5678": "+2348012345678",
		"+1 (555) 010-9999": "+15550109999",
		" +46733123453 ":    "+46733123453",
	}
	for in, want := range valid {
		got, err := NormalizeMSISDN(in)
		if err != nil || got != want {
			t.Fatalf("NormalizeMSISDN(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	invalid := []string{"2348012345678", "+0348012345678", "+23480abc45678", "+1234567890123456", "", "+"}
	for _, in := range invalid {
		if _, err := NormalizeMSISDN(in); !errors.Is(err, ErrInvalidPhone) {
			t.Fatalf("NormalizeMSISDN(%q) expected ErrInvalidPhone, got %v", in, err)
		}
	}
}

func TestNormalizeContactPhone(t *testing.T) {
	if got, err := normalizeContactPhone("256 700 123456"); err != nil || got != "256700123456" {
		t.Fatalf("expected lenient phone accepted, got %q %v", got, err)
	}
	if got, err := normalizeContactPhone(""); err != nil || got != "" {
		t.Fatalf("expected empty phone accepted, got %q %v", got, err)
	}
	if _, err := normalizeContactPhone("call me"); !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("expected ErrInvalidPhone, got %v", err)
	}
}

func TestValidateAmount(t *testing.T) {
	for _, s := range []string{"0.01", "180000", "1000000000", "12.5"} {
		if err := validateAmount(decimal.RequireFromString(s)); err != nil {
			t.Fatalf("validateAmount(%s) unexpected error: %v", s, err)
		}
	}
	for _, s := range []string{"0", "-5", "1000000000.01", "1.234"} {
		if err := validateAmount(decimal.RequireFromString(s)); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("validateAmount(%s) expected ErrInvalidAmount, got %v", s, err)
		}
	}
}

func TestNormalizeCurrency(t *testing.T) {
	if c, err := normalizeCurrency("", "eur"); err != nil || c != "EUR" {
		t.Fatalf("expected default EUR, got %q %v", c, err)
	}
	if c, err := normalizeCurrency("ugx", "EUR"); err != nil || c != "UGX" {
		t.Fatalf("expected UGX, got %q %v", c, err)
	}
	if _, err := normalizeCurrency("NGN", "EUR"); !errors.Is(err, ErrInvalidCurrency) {
		t.Fatalf("expected ErrInvalidCurrency, got %v", err)
	}
}
