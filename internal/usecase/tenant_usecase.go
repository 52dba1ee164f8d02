package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"propertyhub/internal/domain/entities"
	"propertyhub/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrTenantNotFound = errors.New("tenant not found")
	ErrInvalidTenant  = errors.New("invalid tenant")
)

type TenantInput struct {
	Name              string
	Email             string
	Phone             string
	Rent              decimal.Decimal
	Deposit           decimal.Decimal
	LeaseStart        *time.Time
	LeaseEnd          *time.Time
	Status            entities.TenantStatus
	PropertyID        string
	EmergencyContacts []entities.EmergencyContact
	IDDocumentURL     string
	LeaseDocumentURL  string
	Notes             string
}

// TenantPatch carries a partial update. Nil fields are left untouched; a
// non-nil EmergencyContacts replaces the whole list.
type TenantPatch struct {
	Name              *string
	Email             *string
	Phone             *string
	Rent              *decimal.Decimal
	Deposit           *decimal.Decimal
	LeaseStart        *time.Time
	LeaseEnd          *time.Time
	Status            *entities.TenantStatus
	EmergencyContacts *[]entities.EmergencyContact
	IDDocumentURL     *string
	LeaseDocumentURL  *string
	Notes             *string
}

type ITenantUseCase interface {
	Create(ctx context.Context, in TenantInput) (entities.Tenant, error)
	GetByID(ctx context.Context, id string) (entities.Tenant, error)
	List(ctx context.Context, status entities.TenantStatus) ([]entities.Tenant, error)
	Update(ctx context.Context, id string, patch TenantPatch) (entities.Tenant, error)
	Delete(ctx context.Context, id string) error
}

type TenantUseCase struct {
	repo       interfaces.ITenantRepository
	properties interfaces.IPropertyRepository
	now        func() time.Time
}

var _ ITenantUseCase = (*TenantUseCase)(nil)

func NewTenantUseCase(repo interfaces.ITenantRepository, properties interfaces.IPropertyRepository) *TenantUseCase {
	return &TenantUseCase{repo: repo, properties: properties, now: func() time.Time { return time.Now().UTC() }}
}

func (u *TenantUseCase) Create(ctx context.Context, in TenantInput) (entities.Tenant, error) {
	now := u.now()
	t := entities.Tenant{
		ID:                uuid.NewString(),
		Name:              strings.TrimSpace(in.Name),
		Email:             strings.TrimSpace(in.Email),
		Phone:             in.Phone,
		Rent:              in.Rent,
		Deposit:           in.Deposit,
		LeaseStart:        in.LeaseStart,
		LeaseEnd:          in.LeaseEnd,
		Status:            in.Status,
		PropertyID:        strings.TrimSpace(in.PropertyID),
		EmergencyContacts: in.EmergencyContacts,
		IDDocumentURL:     strings.TrimSpace(in.IDDocumentURL),
		LeaseDocumentURL:  strings.TrimSpace(in.LeaseDocumentURL),
		Notes:             in.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if t.Status == "" {
		t.Status = entities.TenantStatusPending
	}
	if err := normalizeTenant(&t); err != nil {
		return entities.Tenant{}, err
	}
	return u.repo.Create(ctx, t)
}

func (u *TenantUseCase) GetByID(ctx context.Context, id string) (entities.Tenant, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Tenant{}, ErrInvalidID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Tenant{}, err
	}
	if t.ID == "" {
		return entities.Tenant{}, ErrTenantNotFound
	}
	return t, nil
}

func (u *TenantUseCase) List(ctx context.Context, status entities.TenantStatus) ([]entities.Tenant, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTenant, status)
	}
	return u.repo.List(ctx, status)
}

func (u *TenantUseCase) Update(ctx context.Context, id string, patch TenantPatch) (entities.Tenant, error) {
	t, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Tenant{}, err
	}

	if patch.Name != nil {
		t.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Email != nil {
		t.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.Phone != nil {
		t.Phone = *patch.Phone
	}
	if patch.Rent != nil {
		t.Rent = *patch.Rent
	}
	if patch.Deposit != nil {
		t.Deposit = *patch.Deposit
	}
	if patch.LeaseStart != nil {
		t.LeaseStart = patch.LeaseStart
	}
	if patch.LeaseEnd != nil {
		t.LeaseEnd = patch.LeaseEnd
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.EmergencyContacts != nil {
		t.EmergencyContacts = *patch.EmergencyContacts
	}
	if patch.IDDocumentURL != nil {
		t.IDDocumentURL = strings.TrimSpace(*patch.IDDocumentURL)
	}
	if patch.LeaseDocumentURL != nil {
		t.LeaseDocumentURL = strings.TrimSpace(*patch.LeaseDocumentURL)
	}
	if patch.Notes != nil {
		t.Notes = *patch.Notes
	}
	if err := normalizeTenant(&t); err != nil {
		return entities.Tenant{}, err
	}

	t.UpdatedAt = u.now()
	saved, err := u.repo.Update(ctx, t)
	if err != nil {
		return entities.Tenant{}, err
	}
	if saved.ID == "" {
		return entities.Tenant{}, ErrTenantNotFound
	}
	return saved, nil
}

// Delete removes the tenant and frees the property it occupied, if any.
func (u *TenantUseCase) Delete(ctx context.Context, id string) error {
	t, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if t.PropertyID != "" {
		p, err := u.properties.GetByID(ctx, t.PropertyID)
		if err != nil {
			return err
		}
		if p.ID != "" && p.TenantID == t.ID {
			p.TenantID = ""
			p.Status = entities.PropertyStatusAvailable
			p.UpdatedAt = u.now()
			if _, err := u.properties.Update(ctx, p); err != nil {
				return err
			}
		}
	}

	ok, err := u.repo.Delete(ctx, t.ID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrTenantNotFound
	}
	return nil
}

func normalizeTenant(t *entities.Tenant) error {
	if t.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTenant)
	}
	if _, err := mail.ParseAddress(t.Email); err != nil || strings.Contains(t.Email, "<") {
		return fmt.Errorf("%w: invalid email %q", ErrInvalidTenant, t.Email)
	}
	if !t.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTenant, t.Status)
	}

	phone, err := normalizeContactPhone(t.Phone)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTenant, err)
	}
	t.Phone = phone

	for i, c := range t.EmergencyContacts {
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			return fmt.Errorf("%w: emergency contact %d needs a name", ErrInvalidTenant, i+1)
		}
		if c.Phone, err = normalizeContactPhone(c.Phone); err != nil {
			return fmt.Errorf("%w: emergency contact %d: %v", ErrInvalidTenant, i+1, err)
		}
		t.EmergencyContacts[i] = c
	}

	if err := validateMoney("rent", t.Rent); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTenant, err)
	}
	if err := validateMoney("deposit", t.Deposit); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTenant, err)
	}
	if t.LeaseStart != nil && t.LeaseEnd != nil && t.LeaseEnd.Before(*t.LeaseStart) {
		return fmt.Errorf("%w: lease_end must not be before lease_start", ErrInvalidTenant)
	}
	return nil
}
