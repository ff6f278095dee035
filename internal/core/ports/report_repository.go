package ports

import (
	"context"
	"time"
)

// StatusCount is one slice of the status-breakdown pie.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// MonthlyCount is one point on a by-month growth chart.
type MonthlyCount struct {
	Month string `json:"month"` // "2026-08"
	Count int64  `json:"count"`
}

// MonthlyAmount is one point on the revenue chart.
type MonthlyAmount struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// DailyCount is one point on the shipping-volume chart.
type DailyCount struct {
	Date  string `json:"date"` // "2026-08-29"
	Count int64  `json:"count"`
}

// ReportRepository runs the aggregation queries behind the reporting views.
type ReportRepository interface {
	CountParcels(ctx context.Context, since time.Time) (int64, error)
	CountParcelsByStatus(ctx context.Context) ([]StatusCount, error)
	// CountActive counts parcels in any non-terminal status, and how many of
	// those are ready for pickup.
	CountActive(ctx context.Context) (active int64, readyForPickup int64, err error)
	CountPendingPayment(ctx context.Context) (pending int64, overdue int64, err error)
	SumRevenue(ctx context.Context, since time.Time) (float64, error)
	RevenueByMonth(ctx context.Context, months int) ([]MonthlyAmount, error)
	CustomersByMonth(ctx context.Context, months int) ([]MonthlyCount, error)
	ParcelsByDay(ctx context.Context, days int) ([]DailyCount, error)
}
