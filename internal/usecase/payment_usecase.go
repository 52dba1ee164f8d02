package usecase

import (
	"context"
	"errors"
	"fmt"
	"propertyhub/internal/domain/entities"
	"propertyhub/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrInvalidPayment        = errors.New("invalid payment")
	ErrPaymentStatusConflict = errors.New("payment status changed while it was being edited")
)

type PaymentInput struct {
	TenantID      string
	PropertyID    string
	Amount        decimal.Decimal
	DueDate       time.Time
	PaymentMethod entities.PaymentMethod
	Notes         string
}

// PaymentPatch carries the admin-editable fields. Only the fields it sets are
// written, so provider attributes stored by reconciliation survive an edit.
type PaymentPatch struct {
	TenantID      *string
	PropertyID    *string
	Amount        *decimal.Decimal
	DueDate       *time.Time
	PaymentMethod *entities.PaymentMethod
	Status        *entities.PaymentStatus
	PaidDate      *time.Time
	Notes         *string
}

type IPaymentUseCase interface {
	Create(ctx context.Context, in PaymentInput) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	List(ctx context.Context, filter interfaces.PaymentFilter) ([]entities.Payment, error)
	Update(ctx context.Context, id string, patch PaymentPatch) (entities.Payment, error)
	Delete(ctx context.Context, id string) error
}

type PaymentUseCase struct {
	repo interfaces.IPaymentRepository
	now  func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// Create stores a pending payment without any provider reference.
func (u *PaymentUseCase) Create(ctx context.Context, in PaymentInput) (entities.Payment, error) {
	now := u.now()
	p := entities.Payment{
		ID:            uuid.NewString(),
		TenantID:      strings.TrimSpace(in.TenantID),
		PropertyID:    strings.TrimSpace(in.PropertyID),
		Amount:        in.Amount,
		DueDate:       in.DueDate,
		PaymentMethod: in.PaymentMethod,
		Status:        entities.PaymentStatusPending,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if p.PaymentMethod == "" {
		p.PaymentMethod = entities.PaymentMethodMTNMoMo
	}
	if err := validatePayment(p); err != nil {
		return entities.Payment{}, err
	}
	return u.repo.Create(ctx, p)
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	return loadPayment(ctx, u.repo, id)
}

func (u *PaymentUseCase) List(ctx context.Context, filter interfaces.PaymentFilter) ([]entities.Payment, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidPayment, filter.Status)
	}
	filter.TenantID = strings.TrimSpace(filter.TenantID)
	return u.repo.List(ctx, filter)
}

// Update validates the patched payment as a whole but writes only the patched
// attributes. A status change is conditioned on the status that was read.
func (u *PaymentUseCase) Update(ctx context.Context, id string, patch PaymentPatch) (entities.Payment, error) {
	p, err := loadPayment(ctx, u.repo, id)
	if err != nil {
		return entities.Payment{}, err
	}

	upd := interfaces.PaymentUpdate{}
	if patch.TenantID != nil {
		v := strings.TrimSpace(*patch.TenantID)
		p.TenantID, upd.TenantID = v, &v
	}
	if patch.PropertyID != nil {
		v := strings.TrimSpace(*patch.PropertyID)
		p.PropertyID, upd.PropertyID = v, &v
	}
	if patch.Amount != nil {
		p.Amount, upd.Amount = *patch.Amount, patch.Amount
	}
	if patch.DueDate != nil {
		p.DueDate, upd.DueDate = *patch.DueDate, patch.DueDate
	}
	if patch.PaymentMethod != nil {
		p.PaymentMethod, upd.PaymentMethod = *patch.PaymentMethod, patch.PaymentMethod
	}
	if patch.Notes != nil {
		p.Notes, upd.Notes = *patch.Notes, patch.Notes
	}
	if patch.PaidDate != nil {
		paid := *patch.PaidDate
		p.PaidDate, upd.PaidDate = &paid, &paid
	}
	if patch.Status != nil {
		upd.ExpectedStatus = p.Status
		p.Status, upd.Status = *patch.Status, patch.Status
		// Manually settled payments (cash, bank transfer) get a paid date when none was given.
		if p.Status == entities.PaymentStatusPaid && p.PaidDate == nil {
			today := truncateDay(u.now())
			p.PaidDate, upd.PaidDate = &today, &today
		}
	}
	if err := validatePayment(p); err != nil {
		return entities.Payment{}, err
	}

	upd.UpdatedAt = u.now()
	saved, err := u.repo.Update(ctx, p.ID, upd)
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleStatus) {
			return entities.Payment{}, fmt.Errorf("%w: expected %s", ErrPaymentStatusConflict, upd.ExpectedStatus)
		}
		return entities.Payment{}, err
	}
	if saved.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return saved, nil
}

func (u *PaymentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPaymentNotFound
	}
	return nil
}

func loadPayment(ctx context.Context, repo interfaces.IPaymentRepository, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidID
	}

	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func validatePayment(p entities.Payment) error {
	if err := validateAmount(p.Amount); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayment, err)
	}
	switch {
	case p.DueDate.IsZero():
		return fmt.Errorf("%w: due_date is required", ErrInvalidPayment)
	case !p.PaymentMethod.Valid():
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidPayment, p.PaymentMethod)
	case !p.Status.Valid():
		return fmt.Errorf("%w: unknown status %q", ErrInvalidPayment, p.Status)
	}
	return nil
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
