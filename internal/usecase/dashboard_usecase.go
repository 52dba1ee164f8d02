package usecase

import (
	"context"
	"propertyhub/internal/domain/entities"
	"propertyhub/internal/usecase/interfaces"
	"time"

	"github.com/shopspring/decimal"
)

type IDashboardUseCase interface {
	Summary(ctx context.Context) (entities.DashboardSummary, error)
}

type DashboardUseCase struct {
	properties interfaces.IPropertyRepository
	tenants    interfaces.ITenantRepository
	payments   interfaces.IPaymentRepository
	now        func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(properties interfaces.IPropertyRepository, tenants interfaces.ITenantRepository, payments interfaces.IPaymentRepository) *DashboardUseCase {
	return &DashboardUseCase{
		properties: properties,
		tenants:    tenants,
		payments:   payments,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Summary aggregates the dashboard figures for the current UTC month.
func (u *DashboardUseCase) Summary(ctx context.Context) (entities.DashboardSummary, error) {
	props, err := u.properties.List(ctx)
	if err != nil {
		return entities.DashboardSummary{}, err
	}
	active, err := u.tenants.List(ctx, entities.TenantStatusActive)
	if err != nil {
		return entities.DashboardSummary{}, err
	}
	payments, err := u.payments.List(ctx, interfaces.PaymentFilter{})
	if err != nil {
		return entities.DashboardSummary{}, err
	}

	now := u.now()
	inMonth := func(t time.Time) bool {
		t = t.UTC()
		return t.Year() == now.Year() && t.Month() == now.Month()
	}

	revenue := decimal.Zero
	var requests, due, collected int
	for _, p := range payments {
		if p.HasProviderReference() {
			requests++
		}
		if p.Status == entities.PaymentStatusPaid && p.PaidDate != nil && inMonth(*p.PaidDate) {
			revenue = revenue.Add(p.Amount)
		}
		if !p.DueDate.IsZero() && inMonth(p.DueDate) {
			due++
			if p.Status == entities.PaymentStatusPaid {
				collected++
			}
		}
	}

	rate := 0
	if due > 0 {
		rate = collected * 100 / due
	}
	return entities.DashboardSummary{
		TotalProperties:       len(props),
		ActiveTenants:         len(active),
		MonthlyRevenue:        revenue,
		PaymentRequests:       requests,
		CollectionRatePercent: rate,
	}, nil
}
