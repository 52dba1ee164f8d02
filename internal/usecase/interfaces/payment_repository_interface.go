package interfaces

import (
	"context"
	"errors"
	"propertyhub/internal/domain/entities"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrStaleStatus is returned by conditional status writes when the persisted
	// status is no longer one of the allowed source statuses.
	ErrStaleStatus = errors.New("payment status changed concurrently")
	// ErrAlreadyLinked is returned by LinkProvider when the row already has a reference.
	ErrAlreadyLinked = errors.New("payment already linked to a provider request")
)

// PaymentFilter narrows List. Empty fields match everything.
type PaymentFilter struct {
	Status   entities.PaymentStatus
	TenantID string
}

// PaymentUpdate lists the admin-editable attributes a PATCH writes. Nil fields
// keep their stored value and provider attributes are never part of it.
type PaymentUpdate struct {
	TenantID      *string
	PropertyID    *string
	Amount        *decimal.Decimal
	DueDate       *time.Time
	PaymentMethod *entities.PaymentMethod
	Status        *entities.PaymentStatus
	PaidDate      *time.Time
	Notes         *string

	// ExpectedStatus, when set, must still be the persisted status.
	ExpectedStatus entities.PaymentStatus
	UpdatedAt      time.Time
}

// ProviderLink is written once a provider request has been accepted.
type ProviderLink struct {
	Flow        entities.MoMoFlow
	ReferenceID string
	ExternalID  string
	RawStatus   string
}

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// GetByID and Update return a zero Payment (empty ID) when the row does not exist.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	List(ctx context.Context, filter PaymentFilter) ([]entities.Payment, error)
	// Update returns ErrStaleStatus when upd.ExpectedStatus no longer matches.
	Update(ctx context.Context, id string, upd PaymentUpdate) (entities.Payment, error)
	Delete(ctx context.Context, id string) (bool, error)

	// LinkProvider stores the provider reference only while the row has none.
	LinkProvider(ctx context.Context, id string, link ProviderLink) (entities.Payment, error)
	// ApplyReconciliation writes the mapped provider fields only while the
	// persisted status is one of allowedFrom. Otherwise it returns ErrStaleStatus.
	ApplyReconciliation(ctx context.Context, id string, flow entities.MoMoFlow, rec entities.Reconciliation, allowedFrom []entities.PaymentStatus) (entities.Payment, error)
}
