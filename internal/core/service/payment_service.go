package service

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yng-express/parcel-admin/internal/api/metrics"
	"github.com/yng-express/parcel-admin/internal/core/domain"
	"github.com/yng-express/parcel-admin/internal/core/ports"
	"github.com/yng-express/parcel-admin/internal/core/pricing"
)

type PaymentService struct {
	repo    ports.PaymentRepository
	parcels ports.ParcelRepository
	logger  zerolog.Logger
}

func NewPaymentService(repo ports.PaymentRepository, parcels ports.ParcelRepository, logger zerolog.Logger) *PaymentService {
	return &PaymentService{repo: repo, parcels: parcels, logger: logger}
}

// RecordPayment stores a payment against a parcel and recomputes the parcel's
// aggregate payment state from the new running total. Overpayment is recorded
// as entered; the balance simply goes negative.
func (s *PaymentService) RecordPayment(ctx context.Context, input ports.RecordPaymentInput) (*domain.Payment, error) {
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	method := domain.PaymentMethod(input.Method)
	if !method.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidMethod, input.Method)
	}

	parcel, err := s.parcels.FindByID(ctx, input.ParcelID)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	payment := &domain.Payment{
		ParcelID:      parcel.ID,
		Amount:        input.Amount,
		Method:        method,
		Reference:     input.Reference,
		ReceivedBy:    input.ReceivedBy,
		Notes:         input.Notes,
		ReceiptNumber: "RCT-" + uuid.NewString()[:8],
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, payment)
	if err != nil {
		s.logger.Error().Err(err).Str("parcel_id", parcel.ID).Msg("failed to record payment")
		return nil, err
	}

	if err := s.refreshPaymentState(ctx, parcel); err != nil {
		// The payment itself is stored; a stale aggregate state heals on the
		// next payment against the same parcel.
		s.logger.Warn().Err(err).Str("parcel_id", parcel.ID).Msg("failed to refresh payment state")
	}

	metrics.PaymentsRecordedTotal.WithLabelValues(string(method)).Inc()
	s.logger.Info().
		Str("parcel_id", parcel.ID).
		Str("receipt", created.ReceiptNumber).
		Float64("amount", created.Amount).
		Str("method", string(method)).
		Msg("payment recorded")

	return created, nil
}

func (s *PaymentService) ListPayments(ctx context.Context, parcelID string) ([]*domain.Payment, error) {
	return s.repo.ListByParcel(ctx, parcelID)
}

// refreshPaymentState re-derives the parcel's payment state from all recorded
// payments: nothing paid → PENDING, some → PARTIAL, total covered → PAID.
func (s *PaymentService) refreshPaymentState(ctx context.Context, parcel *domain.Parcel) error {
	payments, err := s.repo.ListByParcel(ctx, parcel.ID)
	if err != nil {
		return err
	}

	amounts := make([]float64, len(payments))
	for i, p := range payments {
		amounts[i] = p.Amount
	}
	totalPaid, balance := pricing.Balance(parcel.TotalAmount, amounts)

	state := domain.PaymentPending
	switch {
	case totalPaid <= 0:
		state = domain.PaymentPending
	case balance > 0:
		state = domain.PaymentPartial
	default:
		state = domain.PaymentPaid
	}

	return s.parcels.SetPaymentState(ctx, parcel.ID, state)
}

var receiptTemplate = template.Must(template.New("receipt").Parse(
	`YNG EXPRESS — PAYMENT RECEIPT
Receipt:  {{.ReceiptNumber}}
Date:     {{.Date}}
Tracking: {{.TrackingNumber}}

Amount:   {{printf "%.2f" .Amount}} USD
Method:   {{.Method}}
{{- if .Reference}}
Reference: {{.Reference}}
{{- end}}
Received by: {{.ReceivedBy}}

Total due:   {{printf "%.2f" .TotalAmount}} USD
Paid to date: {{printf "%.2f" .TotalPaid}} USD
Balance:     {{printf "%.2f" .Balance}} USD
`))

// Receipt renders the printable receipt for one payment. The admin UI prints
// this copy; the customer-facing PDF is produced by the external renderer.
func (s *PaymentService) Receipt(ctx context.Context, paymentID string) (*ports.PaymentReceipt, error) {
	payment, err := s.repo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	parcel, err := s.parcels.FindByID(ctx, payment.ParcelID)
	if err != nil {
		return nil, err
	}
	payments, err := s.repo.ListByParcel(ctx, parcel.ID)
	if err != nil {
		return nil, err
	}

	amounts := make([]float64, len(payments))
	for i, p := range payments {
		amounts[i] = p.Amount
	}
	totalPaid, balance := pricing.Balance(parcel.TotalAmount, amounts)

	var buf bytes.Buffer
	err = receiptTemplate.Execute(&buf, map[string]any{
		"ReceiptNumber":  payment.ReceiptNumber,
		"Date":           payment.CreatedAt.Format("2006-01-02 15:04"),
		"TrackingNumber": parcel.TrackingNumber,
		"Amount":         payment.Amount,
		"Method":         string(payment.Method),
		"Reference":      payment.Reference,
		"ReceivedBy":     payment.ReceivedBy,
		"TotalAmount":    parcel.TotalAmount,
		"TotalPaid":      totalPaid,
		"Balance":        balance,
	})
	if err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}

	return &ports.PaymentReceipt{
		Filename: payment.ReceiptNumber + ".txt",
		Body:     buf.Bytes(),
	}, nil
}
