package response

import "propertyhub/internal/domain/entities"

type DashboardResponse struct {
	TotalProperties       int     `json:"total_properties"`
	ActiveTenants         int     `json:"active_tenants"`
	MonthlyRevenue        float64 `json:"monthly_revenue"`
	PaymentRequests       int     `json:"payment_requests"`
	CollectionRatePercent int     `json:"collection_rate_percent"`
}

func FromDashboardSummary(s entities.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		TotalProperties:       s.TotalProperties,
		ActiveTenants:         s.ActiveTenants,
		MonthlyRevenue:        s.MonthlyRevenue.InexactFloat64(),
		PaymentRequests:       s.PaymentRequests,
		CollectionRatePercent: s.CollectionRatePercent,
	}
}
