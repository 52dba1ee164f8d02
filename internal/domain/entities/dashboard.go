package entities

import "github.com/shopspring/decimal"

type DashboardSummary struct {
	TotalProperties       int
	ActiveTenants         int
	MonthlyRevenue        decimal.Decimal
	PaymentRequests       int
	CollectionRatePercent int
}
