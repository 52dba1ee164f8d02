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
	ErrPropertyNotFound      = errors.New("property not found")
	ErrInvalidProperty       = errors.New("invalid property")
	ErrPropertyOccupied      = errors.New("property already has a tenant")
	ErrTenantAlreadyAssigned = errors.New("tenant already assigned to another property")
)

// PropertyInput carries the fields accepted on create.
type PropertyInput struct {
	Name        string
	Address     string
	Type        entities.PropertyType
	Bedrooms    int
	Bathrooms   int
	Size        int
	Rent        decimal.Decimal
	Status      entities.PropertyStatus
	Description string
}

// PropertyPatch carries a partial update. Nil fields are left untouched.
type PropertyPatch struct {
	Name        *string
	Address     *string
	Type        *entities.PropertyType
	Bedrooms    *int
	Bathrooms   *int
	Size        *int
	Rent        *decimal.Decimal
	Status      *entities.PropertyStatus
	Description *string
}

type IPropertyUseCase interface {
	Create(ctx context.Context, in PropertyInput) (entities.Property, error)
	GetByID(ctx context.Context, id string) (entities.Property, error)
	List(ctx context.Context) ([]entities.Property, error)
	Update(ctx context.Context, id string, patch PropertyPatch) (entities.Property, error)
	Delete(ctx context.Context, id string) error
	AssignTenant(ctx context.Context, propertyID, tenantID string) (entities.Property, error)
	UnassignTenant(ctx context.Context, propertyID string) (entities.Property, error)
}

type PropertyUseCase struct {
	repo    interfaces.IPropertyRepository
	tenants interfaces.ITenantRepository
	now     func() time.Time
}

var _ IPropertyUseCase = (*PropertyUseCase)(nil)

func NewPropertyUseCase(repo interfaces.IPropertyRepository, tenants interfaces.ITenantRepository) *PropertyUseCase {
	return &PropertyUseCase{repo: repo, tenants: tenants, now: func() time.Time { return time.Now().UTC() }}
}

func (u *PropertyUseCase) Create(ctx context.Context, in PropertyInput) (entities.Property, error) {
	now := u.now()
	p := entities.Property{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Address:     strings.TrimSpace(in.Address),
		Type:        in.Type,
		Bedrooms:    in.Bedrooms,
		Bathrooms:   in.Bathrooms,
		Size:        in.Size,
		Rent:        in.Rent,
		Status:      in.Status,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.Status == "" {
		p.Status = entities.PropertyStatusAvailable
	}
	if err := validateProperty(p); err != nil {
		return entities.Property{}, err
	}
	return u.repo.Create(ctx, p)
}

func (u *PropertyUseCase) GetByID(ctx context.Context, id string) (entities.Property, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Property{}, ErrInvalidID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Property{}, err
	}
	if p.ID == "" {
		return entities.Property{}, ErrPropertyNotFound
	}
	return p, nil
}

func (u *PropertyUseCase) List(ctx context.Context) ([]entities.Property, error) {
	return u.repo.List(ctx)
}

func (u *PropertyUseCase) Update(ctx context.Context, id string, patch PropertyPatch) (entities.Property, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Property{}, err
	}

	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Address != nil {
		p.Address = strings.TrimSpace(*patch.Address)
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Bedrooms != nil {
		p.Bedrooms = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		p.Bathrooms = *patch.Bathrooms
	}
	if patch.Size != nil {
		p.Size = *patch.Size
	}
	if patch.Rent != nil {
		p.Rent = *patch.Rent
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Description != nil {
		p.Description = strings.TrimSpace(*patch.Description)
	}
	if err := validateProperty(p); err != nil {
		return entities.Property{}, err
	}

	p.UpdatedAt = u.now()
	return u.save(ctx, p)
}

func (u *PropertyUseCase) Delete(ctx context.Context, id string) error {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.TenantID != "" {
		return ErrPropertyOccupied
	}

	ok, err := u.repo.Delete(ctx, p.ID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPropertyNotFound
	}
	return nil
}

// AssignTenant links both records and marks the property occupied.
func (u *PropertyUseCase) AssignTenant(ctx context.Context, propertyID, tenantID string) (entities.Property, error) {
	p, err := u.GetByID(ctx, propertyID)
	if err != nil {
		return entities.Property{}, err
	}
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.Property{}, ErrInvalidID
	}
	if p.TenantID != "" && p.TenantID != tenantID {
		return entities.Property{}, ErrPropertyOccupied
	}

	t, err := u.tenants.GetByID(ctx, tenantID)
	if err != nil {
		return entities.Property{}, err
	}
	if t.ID == "" {
		return entities.Property{}, ErrTenantNotFound
	}
	if t.PropertyID != "" && t.PropertyID != p.ID {
		return entities.Property{}, ErrTenantAlreadyAssigned
	}

	now := u.now()
	if t.PropertyID != p.ID {
		t.PropertyID = p.ID
		t.UpdatedAt = now
		saved, err := u.tenants.Update(ctx, t)
		if err != nil {
			return entities.Property{}, err
		}
		if saved.ID == "" {
			return entities.Property{}, ErrTenantNotFound
		}
	}

	p.TenantID = t.ID
	p.Status = entities.PropertyStatusOccupied
	p.UpdatedAt = now
	return u.save(ctx, p)
}

// UnassignTenant clears the link on both sides and makes the property available again.
func (u *PropertyUseCase) UnassignTenant(ctx context.Context, propertyID string) (entities.Property, error) {
	p, err := u.GetByID(ctx, propertyID)
	if err != nil {
		return entities.Property{}, err
	}
	if p.TenantID == "" {
		return p, nil
	}

	now := u.now()
	t, err := u.tenants.GetByID(ctx, p.TenantID)
	if err != nil {
		return entities.Property{}, err
	}
	// A tenant deleted out from under the property only leaves the dangling id to clear.
	if t.ID != "" && t.PropertyID == p.ID {
		t.PropertyID = ""
		t.UpdatedAt = now
		if _, err := u.tenants.Update(ctx, t); err != nil {
			return entities.Property{}, err
		}
	}

	p.TenantID = ""
	p.Status = entities.PropertyStatusAvailable
	p.UpdatedAt = now
	return u.save(ctx, p)
}

func (u *PropertyUseCase) save(ctx context.Context, p entities.Property) (entities.Property, error) {
	saved, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Property{}, err
	}
	if saved.ID == "" {
		return entities.Property{}, ErrPropertyNotFound
	}
	return saved, nil
}

func validateProperty(p entities.Property) error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidProperty)
	case p.Address == "":
		return fmt.Errorf("%w: address is required", ErrInvalidProperty)
	case !p.Type.Valid():
		return fmt.Errorf("%w: unknown type %q", ErrInvalidProperty, p.Type)
	case !p.Status.Valid():
		return fmt.Errorf("%w: unknown status %q", ErrInvalidProperty, p.Status)
	case p.Bedrooms < 0 || p.Bedrooms > 20:
		return fmt.Errorf("%w: bedrooms must be between 0 and 20", ErrInvalidProperty)
	case p.Bathrooms < 0 || p.Bathrooms > 20:
		return fmt.Errorf("%w: bathrooms must be between 0 and 20", ErrInvalidProperty)
	case p.Size < 1 || p.Size > 100000:
		return fmt.Errorf("%w: size must be between 1 and 100000", ErrInvalidProperty)
	}
	if err := validateMoney("rent", p.Rent); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProperty, err)
	}
	return nil
}
