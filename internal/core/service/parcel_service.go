package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/yng-express/parcel-admin/internal/api/metrics"
	"github.com/yng-express/parcel-admin/internal/core/domain"
	"github.com/yng-express/parcel-admin/internal/core/ports"
	"github.com/yng-express/parcel-admin/internal/core/pricing"
)

// Warehouse address auto-filled as the sender for consolidated shipments.
const (
	warehouseAddress = "7829 NW 72nd Ave"
	warehouseCity    = "Miami"
	warehouseState   = "FL"
	warehouseZip     = "33166"
)

// ScanDedup abstracts the duplicate-scan store (Redis). Barcode scanners
// double-fire; an identical (parcel, status) pair seen within the TTL is
// treated as the same physical scan and skipped.
type ScanDedup interface {
	IsDuplicate(ctx context.Context, trackingNumber, status string) (bool, error)
	Mark(ctx context.Context, trackingNumber, status string) error
}

type ParcelService struct {
	repo      ports.ParcelRepository
	customers ports.CustomerRepository
	invoices  ports.InvoiceService
	dedup     ScanDedup
	notifier  ports.Notifier
	logger    zerolog.Logger
}

func NewParcelService(
	repo ports.ParcelRepository,
	customers ports.CustomerRepository,
	invoices ports.InvoiceService,
	dedup ScanDedup,
	notifier ports.Notifier,
	logger zerolog.Logger,
) *ParcelService {
	return &ParcelService{
		repo:      repo,
		customers: customers,
		invoices:  invoices,
		dedup:     dedup,
		notifier:  notifier,
		logger:    logger,
	}
}

// CreateParcel registers a parcel for a customer, prices it, and issues the
// derived invoice. Pricing is computed exactly once here; the stored total is
// never recomputed on later reads.
func (s *ParcelService) CreateParcel(ctx context.Context, input ports.CreateParcelInput) (*domain.Parcel, error) {
	customer, err := s.customers.FindByID(ctx, input.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("create parcel: %w", err)
	}

	var quote pricing.Quote
	mode := "auto"
	if input.ManualPricing != nil {
		mode = "manual"
		quote = pricing.ManualFees(
			input.ManualPricing.ShippingFee,
			input.ManualPricing.Discount,
			input.ManualPricing.TaxAmount,
		)
	} else {
		quote = pricing.EstimateFees(input.Weight, input.DeclaredValue)
	}

	now := time.Now().UTC()
	trackingNumber := generateTrackingNumber()
	barcode := input.Barcode
	if barcode == "" {
		barcode = trackingNumber
	}

	sender := domain.Sender{
		Name:    input.SenderName,
		Address: input.SenderAddress,
		City:    input.SenderCity,
		State:   input.SenderState,
		ZipCode: input.SenderZipCode,
	}
	if sender.Address == "" {
		sender.Address = warehouseAddress
		sender.City = warehouseCity
		sender.State = warehouseState
		sender.ZipCode = warehouseZip
	}
	if sender.Name == "" {
		sender.Name = customer.CustomAddress
	}

	parcel := &domain.Parcel{
		TrackingNumber: trackingNumber,
		Barcode:        barcode,
		CustomerID:     customer.ID,
		Status:         domain.StatusPending,
		Sender:         sender,
		Description:    input.Description,
		Weight:         input.Weight,
		Dimensions: domain.Dimensions{
			Length: input.Length,
			Width:  input.Width,
			Height: input.Height,
		},
		DeclaredValue: input.DeclaredValue,
		ShippingFee:   quote.ShippingFee,
		Discount:      quote.Discount,
		TaxAmount:     quote.TaxAmount,
		TotalAmount:   quote.Total,
		PaymentState:  domain.PaymentPending,
		Notes:         input.Notes,
		TrackingEvents: []domain.TrackingEvent{{
			Status:      domain.StatusPending,
			Location:    warehouseCity + ", " + warehouseState,
			Description: "Parcel registered at warehouse",
			Timestamp:   now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, parcel)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create parcel")
		return nil, err
	}

	// The invoice is derived from the parcel; a failure here leaves the
	// parcel valid, so it is logged and retried out of band rather than
	// rolling the parcel back.
	if _, err := s.invoices.CreateForParcel(ctx, created.ID); err != nil {
		s.logger.Warn().Err(err).Str("parcel_id", created.ID).Msg("failed to issue invoice for parcel")
	}

	metrics.ParcelsCreatedTotal.WithLabelValues(mode).Inc()
	s.logger.Info().
		Str("tracking_number", created.TrackingNumber).
		Str("customer_id", customer.ID).
		Str("pricing_mode", mode).
		Float64("total_amount", created.TotalAmount).
		Msg("parcel created")

	return created, nil
}

func (s *ParcelService) GetParcel(ctx context.Context, id string) (*domain.Parcel, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ParcelService) GetParcelByTracking(ctx context.Context, trackingNumber string) (*domain.Parcel, error) {
	return s.repo.FindByTrackingNumber(ctx, trackingNumber)
}

func (s *ParcelService) ListParcels(ctx context.Context, filter ports.ListParcelsFilter) ([]*domain.Parcel, error) {
	return s.repo.List(ctx, filter)
}

// UpdateStatus applies an operator status change, suppresses duplicate scans,
// queues the customer notification, and returns the freshly reloaded parcel.
func (s *ParcelService) UpdateStatus(ctx context.Context, input ports.UpdateStatusInput) (*domain.Parcel, error) {
	status := domain.ParcelStatus(input.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, input.Status)
	}

	parcel, err := s.repo.FindByID(ctx, input.ParcelID)
	if err != nil {
		return nil, err
	}

	isDup, err := s.dedup.IsDuplicate(ctx, parcel.TrackingNumber, input.Status)
	if err != nil {
		s.logger.Warn().Err(err).Str("tracking", parcel.TrackingNumber).Msg("scan dedup check failed, processing anyway")
	} else if isDup {
		metrics.ScanDedupTotal.WithLabelValues("hit").Inc()
		s.logger.Debug().
			Str("tracking", parcel.TrackingNumber).
			Str("status", input.Status).
			Msg("duplicate scan skipped")
		return parcel, nil
	}
	metrics.ScanDedupTotal.WithLabelValues("miss").Inc()

	event := domain.TrackingEvent{
		Status:      status,
		Location:    input.Location,
		Description: input.Description,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.repo.AppendStatus(ctx, parcel.ID, event); err != nil {
		s.logger.Error().Err(err).Str("parcel_id", parcel.ID).Msg("failed to update status")
		return nil, err
	}

	if markErr := s.dedup.Mark(ctx, parcel.TrackingNumber, input.Status); markErr != nil {
		s.logger.Warn().Err(markErr).Str("tracking", parcel.TrackingNumber).Msg("failed to set scan dedup key")
	}

	if customer, err := s.customers.FindByID(ctx, parcel.CustomerID); err == nil {
		s.notifier.Enqueue(ports.Notification{
			Kind:           ports.NotifyStatusChange,
			TrackingNumber: parcel.TrackingNumber,
			CustomerEmail:  customer.Email,
			Status:         input.Status,
		})
	}

	metrics.StatusUpdatesTotal.WithLabelValues(input.Status).Inc()
	s.logger.Info().
		Str("tracking", parcel.TrackingNumber).
		Str("status", input.Status).
		Msg("parcel status updated")

	// Reload instead of patching the in-memory copy so the caller sees
	// exactly what was persisted.
	return s.repo.FindByID(ctx, parcel.ID)
}

// generateTrackingNumber returns a unique tracking number in the format YNG-XXXXXXXX.
func generateTrackingNumber() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("YNG-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("YNG-%08X", b)
}
