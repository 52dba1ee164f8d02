package payments

import (
	"fmt"
	"log"
	"sync"

	"propertyhub/internal/domain/entities"
	"propertyhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// mockLedger backs PAYMENT_GATEWAY_MOCK. Requests it created report SUCCESSFUL
// and cancelled invoices report CANCELLED. Any other reference fails with
// ErrTransactionNotFound.
type mockLedger struct {
	mu       sync.Mutex
	requests map[string]entities.ProviderTransaction
}

func newMockLedger() *mockLedger {
	return &mockLedger{requests: map[string]entities.ProviderTransaction{}}
}

func (m *mockLedger) create(referenceID string, req entities.CollectionRequest) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[referenceID] = entities.ProviderTransaction{
		ReferenceID:            referenceID,
		ExternalID:             req.ExternalID,
		Status:                 entities.ProviderStatusSuccessful,
		RawStatus:              string(entities.ProviderStatusSuccessful),
		Amount:                 req.Amount,
		Currency:               req.Currency,
		FinancialTransactionID: uuid.NewString(),
		PayerPartyID:           req.PayerMSISDN,
	}
	log.Printf("[momo][gateway] mock request created reference_id=%s external_id=%s", referenceID, req.ExternalID)
	return referenceID
}

func (m *mockLedger) status(referenceID string) (entities.ProviderTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.requests[referenceID]
	if !ok {
		return entities.ProviderTransaction{}, fmt.Errorf("mock reference %s: %w", referenceID, interfaces.ErrTransactionNotFound)
	}
	return tx, nil
}

func (m *mockLedger) cancel(referenceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.requests[referenceID]
	if !ok {
		return fmt.Errorf("mock reference %s: %w", referenceID, interfaces.ErrTransactionNotFound)
	}
	tx.Status = entities.ProviderStatusCancelled
	tx.RawStatus = string(entities.ProviderStatusCancelled)
	tx.FinancialTransactionID = ""
	m.requests[referenceID] = tx
	return nil
}
