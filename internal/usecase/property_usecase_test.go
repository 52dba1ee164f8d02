package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"propertyhub/internal/domain/entities"
	mock_interfaces "propertyhub/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func validPropertyInput() PropertyInput {
	return PropertyInput{
		Name:     " Kololo Flats 2B ",
		Address:  "Plot 4 Acacia Ave",
		Type:     entities.PropertyTypeApartment,
		Bedrooms: 2, Bathrooms: 1, Size: 850,
		Rent: decimal.NewFromInt(180000),
	}
}

func TestPropertyUseCase_Create(t *testing.T) {
	t.Run("invalid bedrooms", func(t *testing.T) {
		uc := NewPropertyUseCase(nil, nil)
		in := validPropertyInput()
		in.Bedrooms = 21
		if _, err := uc.Create(context.Background(), in); !errors.Is(err, ErrInvalidProperty) {
			t.Fatalf("expected ErrInvalidProperty, got %v", err)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		uc := NewPropertyUseCase(nil, nil)
		in := validPropertyInput()
		in.Type = "castle"
		if _, err := uc.Create(context.Background(), in); !errors.Is(err, ErrInvalidProperty) {
			t.Fatalf("expected ErrInvalidProperty, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPropertyRepository(ctrl)
		uc := NewPropertyUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Property{})).DoAndReturn(
			func(_ context.Context, p entities.Property) (entities.Property, error) {
				if p.ID == "" || p.Name != "Kololo Flats 2B" || p.Status != entities.PropertyStatusAvailable {
					t.Fatalf("unexpected property: %+v", p)
				}
				if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return p, nil
			},
		)

		if _, err := uc.Create(context.Background(), validPropertyInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPropertyUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPropertyRepository(ctrl)
		uc := NewPropertyUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Property{}, nil)

		if _, err := uc.Update(context.Background(), "p1", PropertyPatch{}); !errors.Is(err, ErrPropertyNotFound) {
			t.Fatalf("expected ErrPropertyNotFound, got %v", err)
		}
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPropertyRepository(ctrl)
		uc := NewPropertyUseCase(repo, nil)

		stored := entities.Property{
			ID: "p1", Name: "Old", Address: "Addr", Type: entities.PropertyTypeHouse,
			Size: 1200, Status: entities.PropertyStatusAvailable, Rent: decimal.NewFromInt(100),
			UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Property) (entities.Property, error) {
				if p.Name != "New" || p.Address != "Addr" || !p.Rent.Equal(decimal.NewFromInt(100)) {
					t.Fatalf("unexpected property: %+v", p)
				}
				if !p.UpdatedAt.After(stored.UpdatedAt) {
					t.Fatalf("expected updated_at bumped")
				}
				return p, nil
			},
		)

		name := "New"
		if _, err := uc.Update(context.Background(), "p1", PropertyPatch{Name: &name}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPropertyUseCase_AssignTenant(t *testing.T) {
	t.Run("occupied by another tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPropertyRepository(ctrl)
		uc := NewPropertyUseCase(repo, mock_interfaces.NewMockITenantRepository(ctrl))

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Property{ID: "p1", TenantID: "t-other"}, nil)

		if _, err := uc.AssignTenant(context.Background(), "p1", "t1"); !errors.Is(err, ErrPropertyOccupied) {
			t.Fatalf("expected ErrPropertyOccupied, got %v", err)
		}
	})

	t.Run("tenant not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPropertyRepository(ctrl)
		tenants := mock_interfaces.NewMockITenantRepository(ctrl)
		uc := NewPropertyUseCase(repo, tenants)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Property{ID: "p1"}, nil)
		tenants.EXPECT().GetByID(gomock.Any(), "t1").Return(entities.Tenant{}, nil)

		if _, err := uc.AssignTenant(context.Background(), "p1", "t1"); !errors.Is(err, ErrTenantNotFound) {
			t.Fatalf("expected ErrTenantNotFound, got %v", err)
		}
	})

	t.Run("links both sides", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPropertyRepository(ctrl)
		tenants := mock_interfaces.NewMockITenantRepository(ctrl)
		uc := NewPropertyUseCase(repo, tenants)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Property{ID: "p1", Status: entities.PropertyStatusAvailable}, nil)
		tenants.EXPECT().GetByID(gomock.Any(), "t1").Return(entities.Tenant{ID: "t1"}, nil)
		tenants.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tn entities.Tenant) (entities.Tenant, error) {
				if tn.PropertyID != "p1" {
					t.Fatalf("expected tenant property id set, got %+v", tn)
				}
				return tn, nil
			},
		)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Property) (entities.Property, error) {
				return p, nil
			},
		)

		got, err := uc.AssignTenant(context.Background(), "p1", "t1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TenantID != "t1" || got.Status != entities.PropertyStatusOccupied {
			t.Fatalf("unexpected property %+v", got)
		}
	})
}

func TestPropertyUseCase_UnassignTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPropertyRepository(ctrl)
	tenants := mock_interfaces.NewMockITenantRepository(ctrl)
	uc := NewPropertyUseCase(repo, tenants)

	repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Property{ID: "p1", TenantID: "t1", Status: entities.PropertyStatusOccupied}, nil)
	tenants.EXPECT().GetByID(gomock.Any(), "t1").Return(entities.Tenant{ID: "t1", PropertyID: "p1"}, nil)
	tenants.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tn entities.Tenant) (entities.Tenant, error) {
			if tn.PropertyID != "" {
				t.Fatalf("expected tenant unlinked")
			}
			return tn, nil
		},
	)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Property) (entities.Property, error) { return p, nil },
	)

	got, err := uc.UnassignTenant(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TenantID != "" || got.Status != entities.PropertyStatusAvailable {
		t.Fatalf("unexpected property %+v", got)
	}
}

func TestPropertyUseCase_Delete(t *testing.T) {
	t.Run("occupied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPropertyRepository(ctrl)
		uc := NewPropertyUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Property{ID: "p1", TenantID: "t1"}, nil)

		if err := uc.Delete(context.Background(), "p1"); !errors.Is(err, ErrPropertyOccupied) {
			t.Fatalf("expected ErrPropertyOccupied, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPropertyRepository(ctrl)
		uc := NewPropertyUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Property{ID: "p1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "p1").Return(true, nil)

		if err := uc.Delete(context.Background(), "p1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
