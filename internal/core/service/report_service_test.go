package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/yng-express/parcel-admin/internal/core/ports"
)

// stubReportRepo returns canned aggregates and counts its calls so the cache
// behavior is observable.
type stubReportRepo struct {
	calls int
}

func (r *stubReportRepo) CountParcels(_ context.Context, since time.Time) (int64, error) {
	r.calls++
	if since.IsZero() {
		return 120, nil
	}
	return 10, nil
}

func (r *stubReportRepo) CountParcelsByStatus(context.Context) ([]ports.StatusCount, error) {
	r.calls++
	return []ports.StatusCount{{Status: "PENDING", Count: 7}, {Status: "DELIVERED", Count: 3}}, nil
}

func (r *stubReportRepo) CountActive(context.Context) (int64, int64, error) {
	r.calls++
	return 42, 8, nil
}

func (r *stubReportRepo) CountPendingPayment(context.Context) (int64, int64, error) {
	r.calls++
	return 15, 4, nil
}

func (r *stubReportRepo) SumRevenue(_ context.Context, since time.Time) (float64, error) {
	r.calls++
	if since.IsZero() {
		return 5400, nil
	}
	return 300, nil
}

func (r *stubReportRepo) RevenueByMonth(_ context.Context, months int) ([]ports.MonthlyAmount, error) {
	r.calls++
	return []ports.MonthlyAmount{{Month: "2026-07", Amount: 900}, {Month: "2026-08", Amount: 300}}, nil
}

func (r *stubReportRepo) CustomersByMonth(_ context.Context, months int) ([]ports.MonthlyCount, error) {
	r.calls++
	out := make([]ports.MonthlyCount, 0, months)
	for i := 0; i < months; i++ {
		out = append(out, ports.MonthlyCount{Month: "2026-08", Count: int64(i)})
	}
	return out, nil
}

func (r *stubReportRepo) ParcelsByDay(_ context.Context, days int) ([]ports.DailyCount, error) {
	r.calls++
	out := make([]ports.DailyCount, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, ports.DailyCount{Date: "2026-08-29", Count: int64(i)})
	}
	return out, nil
}

func TestReportService_DashboardAssemblesKPIs(t *testing.T) {
	repo := &stubReportRepo{}
	svc := NewReportService(repo, newStubCache(), zerolog.Nop())

	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	if stats.TotalShipments.Value != 120 {
		t.Fatalf("total shipments = %v, want 120", stats.TotalShipments.Value)
	}
	if stats.Revenue.Value != 5400 {
		t.Fatalf("revenue = %v, want 5400", stats.Revenue.Value)
	}
	if stats.ActiveDeliveries.Value != 42 || stats.ActiveDeliveries.ReadyForPickup != 8 {
		t.Fatalf("active deliveries = %+v", stats.ActiveDeliveries)
	}
	if stats.PendingTasks.Value != 15 || stats.PendingTasks.UrgentIssues != 4 {
		t.Fatalf("pending tasks = %+v", stats.PendingTasks)
	}
}

func TestReportService_DashboardServedFromCache(t *testing.T) {
	repo := &stubReportRepo{}
	svc := NewReportService(repo, newStubCache(), zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Dashboard(ctx); err != nil {
		t.Fatalf("first dashboard: %v", err)
	}
	callsAfterFirst := repo.calls

	stats, err := svc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("second dashboard: %v", err)
	}
	if repo.calls != callsAfterFirst {
		t.Fatalf("second call hit the repository (%d → %d calls)", callsAfterFirst, repo.calls)
	}
	if stats.TotalShipments.Value != 120 {
		t.Fatalf("cached payload corrupted: %+v", stats)
	}
}

func TestReportService_GrowthWindowClamped(t *testing.T) {
	repo := &stubReportRepo{}
	svc := NewReportService(repo, newStubCache(), zerolog.Nop())
	ctx := context.Background()

	// Zero falls back to the default window.
	series, err := svc.CustomerGrowth(ctx, 0)
	if err != nil {
		t.Fatalf("customer growth: %v", err)
	}
	if len(series) != defaultGrowthMonths {
		t.Fatalf("default window = %d months, want %d", len(series), defaultGrowthMonths)
	}

	// Oversized windows are clamped, not rejected.
	series, err = svc.CustomerGrowth(ctx, 1000)
	if err != nil {
		t.Fatalf("customer growth: %v", err)
	}
	if len(series) != maxReportMonths {
		t.Fatalf("clamped window = %d months, want %d", len(series), maxReportMonths)
	}
}

func TestReportService_VolumeWindowClamped(t *testing.T) {
	repo := &stubReportRepo{}
	svc := NewReportService(repo, newStubCache(), zerolog.Nop())
	ctx := context.Background()

	series, err := svc.ShippingVolume(ctx, -1)
	if err != nil {
		t.Fatalf("shipping volume: %v", err)
	}
	if len(series) != defaultVolumeDays {
		t.Fatalf("default window = %d days, want %d", len(series), defaultVolumeDays)
	}

	series, err = svc.ShippingVolume(ctx, 9999)
	if err != nil {
		t.Fatalf("shipping volume: %v", err)
	}
	if len(series) != maxReportDays {
		t.Fatalf("clamped window = %d days, want %d", len(series), maxReportDays)
	}
}

func TestReportService_RevenueReport(t *testing.T) {
	repo := &stubReportRepo{}
	svc := NewReportService(repo, newStubCache(), zerolog.Nop())

	report, err := svc.Revenue(context.Background())
	if err != nil {
		t.Fatalf("revenue: %v", err)
	}
	if report.Total != 5400 {
		t.Fatalf("total = %v, want 5400", report.Total)
	}
	if len(report.ByMonth) != 2 {
		t.Fatalf("expected 2 monthly points, got %d", len(report.ByMonth))
	}
}

func TestGrowthPct(t *testing.T) {
	cases := []struct {
		current, previous, want float64
	}{
		{110, 100, 10},
		{90, 100, -10},
		{50, 0, 0}, // no previous period: report flat, not infinite
		{0, 0, 0},
	}
	for _, tc := range cases {
		if got := growthPct(tc.current, tc.previous); got != tc.want {
			t.Fatalf("growthPct(%v, %v) = %v, want %v", tc.current, tc.previous, got, tc.want)
		}
	}
}
