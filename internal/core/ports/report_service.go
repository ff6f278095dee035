package ports

import "context"

// KPIValue pairs a headline number with its growth versus the previous
// period, in percent.
type KPIValue struct {
	Value  float64 `json:"value"`
	Growth float64 `json:"growth"`
}

// DashboardStats feeds the KPI cards on the landing page.
type DashboardStats struct {
	TotalShipments   KPIValue `json:"totalShipments"`
	Revenue          KPIValue `json:"revenue"`
	ActiveDeliveries struct {
		Value          int64 `json:"value"`
		ReadyForPickup int64 `json:"readyForPickup"`
	} `json:"activeDeliveries"`
	PendingTasks struct {
		Value        int64 `json:"value"`
		UrgentIssues int64 `json:"urgentIssues"`
	} `json:"pendingTasks"`
}

// RevenueReport is the revenue tab payload.
type RevenueReport struct {
	Total   float64         `json:"total"`
	ByMonth []MonthlyAmount `json:"byMonth"`
}

// ReportService serves the reporting endpoints. Results may be cached for a
// short TTL; reports tolerate slight staleness.
type ReportService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
	StatusBreakdown(ctx context.Context) ([]StatusCount, error)
	Revenue(ctx context.Context) (*RevenueReport, error)
	CustomerGrowth(ctx context.Context, months int) ([]MonthlyCount, error)
	ShippingVolume(ctx context.Context, days int) ([]DailyCount, error)
}
