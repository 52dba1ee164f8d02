package usecase

import (
	"context"
	"testing"
	"time"

	"propertyhub/internal/domain/entities"
	"propertyhub/internal/usecase/interfaces"
	mock_interfaces "propertyhub/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	props := mock_interfaces.NewMockIPropertyRepository(ctrl)
	tenants := mock_interfaces.NewMockITenantRepository(ctrl)
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	uc := NewDashboardUseCase(props, tenants, payments)
	uc.now = func() time.Time { return time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC) }

	date := func(m time.Month, d int) time.Time { return time.Date(2026, m, d, 0, 0, 0, 0, time.UTC) }
	paidMarch := date(3, 10)
	paidFeb := date(2, 27)

	props.EXPECT().List(gomock.Any()).Return([]entities.Property{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil)
	tenants.EXPECT().List(gomock.Any(), entities.TenantStatusActive).Return([]entities.Tenant{{ID: "t1"}, {ID: "t2"}}, nil)
	payments.EXPECT().List(gomock.Any(), interfaces.PaymentFilter{}).Return([]entities.Payment{
		{ID: "1", Amount: decimal.NewFromInt(100), DueDate: date(3, 1), Status: entities.PaymentStatusPaid, PaidDate: &paidMarch, MoMoReferenceID: "r1"},
		{ID: "2", Amount: decimal.NewFromInt(50), DueDate: date(2, 1), Status: entities.PaymentStatusPaid, PaidDate: &paidFeb},
		{ID: "3", Amount: decimal.NewFromInt(70), DueDate: date(3, 31), Status: entities.PaymentStatusPending, MoMoReferenceID: "r3"},
		{ID: "4", Amount: decimal.NewFromInt(70), DueDate: date(3, 5), Status: entities.PaymentStatusFailed},
	}, nil)

	got, err := uc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalProperties != 3 || got.ActiveTenants != 2 || got.PaymentRequests != 2 {
		t.Fatalf("unexpected counts %+v", got)
	}
	if !got.MonthlyRevenue.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected revenue 100, got %s", got.MonthlyRevenue)
	}
	if got.CollectionRatePercent != 33 {
		t.Fatalf("expected 33%%, got %d", got.CollectionRatePercent)
	}
}
