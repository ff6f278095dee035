package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/yng-express/parcel-admin/internal/core/ports"
)

const (
	defaultGrowthMonths = 6
	defaultVolumeDays   = 30
	maxReportMonths     = 24
	maxReportDays       = 365
	reportCacheTTL      = time.Minute
)

// ReportCache abstracts the short-TTL report cache (Redis). Reports tolerate
// a minute of staleness; cache failures fall through to the database.
type ReportCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type ReportService struct {
	repo   ports.ReportRepository
	cache  ReportCache
	logger zerolog.Logger
}

func NewReportService(repo ports.ReportRepository, cache ReportCache, logger zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, cache: cache, logger: logger}
}

// Dashboard builds the KPI card payload. Growth figures compare the current
// calendar month against the previous one.
func (s *ReportService) Dashboard(ctx context.Context) (*ports.DashboardStats, error) {
	var stats ports.DashboardStats
	if s.fromCache(ctx, "reports:dashboard", &stats) {
		return &stats, nil
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevMonthStart := monthStart.AddDate(0, -1, 0)

	total, err := s.repo.CountParcels(ctx, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	thisMonth, err := s.repo.CountParcels(ctx, monthStart)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	sincePrev, err := s.repo.CountParcels(ctx, prevMonthStart)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	stats.TotalShipments = ports.KPIValue{
		Value:  float64(total),
		Growth: growthPct(float64(thisMonth), float64(sincePrev-thisMonth)),
	}

	revenue, err := s.repo.SumRevenue(ctx, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	revenueThisMonth, err := s.repo.SumRevenue(ctx, monthStart)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	revenueSincePrev, err := s.repo.SumRevenue(ctx, prevMonthStart)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	stats.Revenue = ports.KPIValue{
		Value:  revenue,
		Growth: growthPct(revenueThisMonth, revenueSincePrev-revenueThisMonth),
	}

	active, ready, err := s.repo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	stats.ActiveDeliveries.Value = active
	stats.ActiveDeliveries.ReadyForPickup = ready

	pending, overdue, err := s.repo.CountPendingPayment(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	stats.PendingTasks.Value = pending
	stats.PendingTasks.UrgentIssues = overdue

	s.toCache(ctx, "reports:dashboard", &stats)
	return &stats, nil
}

func (s *ReportService) StatusBreakdown(ctx context.Context) ([]ports.StatusCount, error) {
	var counts []ports.StatusCount
	if s.fromCache(ctx, "reports:status-breakdown", &counts) {
		return counts, nil
	}

	counts, err := s.repo.CountParcelsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, "reports:status-breakdown", counts)
	return counts, nil
}

func (s *ReportService) Revenue(ctx context.Context) (*ports.RevenueReport, error) {
	var report ports.RevenueReport
	if s.fromCache(ctx, "reports:revenue", &report) {
		return &report, nil
	}

	total, err := s.repo.SumRevenue(ctx, time.Time{})
	if err != nil {
		return nil, err
	}
	byMonth, err := s.repo.RevenueByMonth(ctx, defaultGrowthMonths)
	if err != nil {
		return nil, err
	}

	report = ports.RevenueReport{Total: total, ByMonth: byMonth}
	s.toCache(ctx, "reports:revenue", &report)
	return &report, nil
}

func (s *ReportService) CustomerGrowth(ctx context.Context, months int) ([]ports.MonthlyCount, error) {
	if months <= 0 {
		months = defaultGrowthMonths
	}
	if months > maxReportMonths {
		months = maxReportMonths
	}

	key := fmt.Sprintf("reports:customer-growth:%d", months)
	var counts []ports.MonthlyCount
	if s.fromCache(ctx, key, &counts) {
		return counts, nil
	}

	counts, err := s.repo.CustomersByMonth(ctx, months)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, key, counts)
	return counts, nil
}

func (s *ReportService) ShippingVolume(ctx context.Context, days int) ([]ports.DailyCount, error) {
	if days <= 0 {
		days = defaultVolumeDays
	}
	if days > maxReportDays {
		days = maxReportDays
	}

	key := fmt.Sprintf("reports:shipping-volume:%d", days)
	var counts []ports.DailyCount
	if s.fromCache(ctx, key, &counts) {
		return counts, nil
	}

	counts, err := s.repo.ParcelsByDay(ctx, days)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, key, counts)
	return counts, nil
}

func (s *ReportService) fromCache(ctx context.Context, key string, out any) bool {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("report cache read failed")
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("stale report cache entry dropped")
		return false
	}
	return true
}

func (s *ReportService) toCache(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, reportCacheTTL); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("report cache write failed")
	}
}

// growthPct returns the percent change of current against previous, with
// previous == 0 reported as 0 rather than infinity.
func growthPct(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
