package interfaces

import (
	"context"
	"errors"
	"propertyhub/internal/domain/entities"
)

// Errors every IMoMoGateway implementation wraps so callers can branch with errors.Is.
var (
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrProviderUnauthorized = errors.New("payment provider unauthorized")
	ErrProviderForbidden    = errors.New("payment provider forbidden")
	ErrProviderRequest      = errors.New("payment provider request failed")
)

// ProviderResponder is implemented by gateway errors that carry the provider's
// HTTP status code and raw response body. The status code is 0 for transport failures.
type ProviderResponder interface {
	error
	ProviderResponse() (statusCode int, body string)
}

// IMoMoGateway abstracts the MTN MoMo collection API.
//
// Every call acquires (or reuses) a bearer token first. Create calls return
// the reference id the caller later polls with.
type IMoMoGateway interface {
	CreateInvoice(ctx context.Context, req entities.CollectionRequest) (referenceID string, err error)
	GetInvoiceStatus(ctx context.Context, referenceID string) (entities.ProviderTransaction, error)
	CancelInvoice(ctx context.Context, referenceID, externalID string) error

	RequestToPay(ctx context.Context, req entities.CollectionRequest) (referenceID string, err error)
	GetRequestToPayStatus(ctx context.Context, referenceID string) (entities.ProviderTransaction, error)

	GetBalance(ctx context.Context) (entities.AccountBalance, error)
}
