package usecase

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidID       = errors.New("invalid id")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidCurrency = errors.New("unsupported currency")
)

var (
	// invoiceMSISDN is the payer format the provider accepts: E.164 with the plus.
	invoiceMSISDN = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
	contactPhone  = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")

	maxAmount = decimal.NewFromInt(1_000_000_000)

	supportedCurrencies = map[string]bool{"EUR": true, "UGX": true, "USD": true}
)

// NormalizeMSISDN strips separators and requires an international number with a leading plus.
func NormalizeMSISDN(raw string) (string, error) {
	phone := phoneSeparators.Replace(strings.TrimSpace(raw))
	if !invoiceMSISDN.MatchString(phone) {
		return "", fmt.Errorf("%w: %q is not an international MSISDN (+<country><number>)", ErrInvalidPhone, raw)
	}
	return phone, nil
}

// normalizeContactPhone is the lenient form used for tenant records; empty is allowed.
func normalizeContactPhone(raw string) (string, error) {
	phone := phoneSeparators.Replace(strings.TrimSpace(raw))
	if phone == "" {
		return "", nil
	}
	if !contactPhone.MatchString(phone) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}
	return phone, nil
}

// validateAmount accepts positive amounts up to maxAmount with at most two decimals.
func validateAmount(amount decimal.Decimal) error {
	switch {
	case !amount.IsPositive():
		return fmt.Errorf("%w: must be greater than zero", ErrInvalidAmount)
	case amount.GreaterThan(maxAmount):
		return fmt.Errorf("%w: must not exceed %s", ErrInvalidAmount, maxAmount)
	case !amount.Equal(amount.Truncate(2)):
		return fmt.Errorf("%w: at most two decimal places", ErrInvalidAmount)
	}
	return nil
}

func validateMoney(field string, amount decimal.Decimal) error {
	if amount.IsNegative() || !amount.Equal(amount.Truncate(2)) {
		return fmt.Errorf("%s must be a non-negative amount with at most two decimals", field)
	}
	return nil
}

func normalizeCurrency(raw, def string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(raw))
	if c == "" {
		c = strings.ToUpper(def)
	}
	if !supportedCurrencies[c] {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, raw)
	}
	return c, nil
}

func isUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
