package service

import (
	"bytes"
	"context"
	"fmt"
	"text/template"
	"time"

	"github.com/rs/zerolog"

	"github.com/yng-express/parcel-admin/internal/core/domain"
	"github.com/yng-express/parcel-admin/internal/core/ports"
	"github.com/yng-express/parcel-admin/internal/core/pricing"
)

type InvoiceService struct {
	repo      ports.InvoiceRepository
	parcels   ports.ParcelRepository
	customers ports.CustomerRepository
	payments  ports.PaymentRepository
	notifier  ports.Notifier
	logger    zerolog.Logger
}

func NewInvoiceService(
	repo ports.InvoiceRepository,
	parcels ports.ParcelRepository,
	customers ports.CustomerRepository,
	payments ports.PaymentRepository,
	notifier ports.Notifier,
	logger zerolog.Logger,
) *InvoiceService {
	return &InvoiceService{
		repo:      repo,
		parcels:   parcels,
		customers: customers,
		payments:  payments,
		notifier:  notifier,
		logger:    logger,
	}
}

// CreateForParcel issues the invoice derived from a freshly created parcel.
// Invoice numbers are yearly-sequenced: INV-2026-000042.
func (s *InvoiceService) CreateForParcel(ctx context.Context, parcelID string) (*domain.Invoice, error) {
	now := time.Now().UTC()
	seq, err := s.repo.NextSequence(ctx, now.Year())
	if err != nil {
		return nil, fmt.Errorf("issue invoice: %w", err)
	}

	invoice := &domain.Invoice{
		InvoiceNumber: fmt.Sprintf("INV-%d-%06d", now.Year(), seq),
		ParcelID:      parcelID,
		CreatedAt:     now,
	}

	created, err := s.repo.Create(ctx, invoice)
	if err != nil {
		return nil, fmt.Errorf("issue invoice: %w", err)
	}

	s.logger.Info().
		Str("invoice_number", created.InvoiceNumber).
		Str("parcel_id", parcelID).
		Msg("invoice issued")

	return created, nil
}

// GetInvoice loads the invoice together with its parcel, the parcel's owner,
// and all payments, computing paid/balance figures at read time.
func (s *InvoiceService) GetInvoice(ctx context.Context, id string) (*ports.InvoiceDetail, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	parcel, err := s.parcels.FindByID(ctx, invoice.ParcelID)
	if err != nil {
		return nil, fmt.Errorf("invoice %s: %w", invoice.InvoiceNumber, err)
	}
	customer, err := s.customers.FindByID(ctx, parcel.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invoice %s: %w", invoice.InvoiceNumber, err)
	}
	payments, err := s.payments.ListByParcel(ctx, parcel.ID)
	if err != nil {
		return nil, fmt.Errorf("invoice %s: %w", invoice.InvoiceNumber, err)
	}

	amounts := make([]float64, len(payments))
	for i, p := range payments {
		amounts[i] = p.Amount
	}
	totalPaid, balance := pricing.Balance(parcel.TotalAmount, amounts)

	return &ports.InvoiceDetail{
		Invoice:   invoice,
		Parcel:    parcel,
		Customer:  customer,
		Payments:  payments,
		TotalPaid: totalPaid,
		Balance:   balance,
	}, nil
}

func (s *InvoiceService) ListInvoices(ctx context.Context) ([]ports.InvoiceSummary, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.InvoiceSummary, 0, len(invoices))
	for _, inv := range invoices {
		summary := ports.InvoiceSummary{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			ParcelID:      inv.ParcelID,
			CreatedAt:     inv.CreatedAt,
		}
		// Orphaned invoices (parcel purged) still list with bare fields.
		if parcel, err := s.parcels.FindByID(ctx, inv.ParcelID); err == nil {
			summary.TrackingNumber = parcel.TrackingNumber
			summary.TotalAmount = parcel.TotalAmount
			summary.PaymentState = string(parcel.PaymentState)
			if customer, err := s.customers.FindByID(ctx, parcel.CustomerID); err == nil {
				summary.CustomerName = customer.FirstName + " " + customer.LastName
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

var invoiceTemplate = template.Must(template.New("invoice").Parse(
	`YNG EXPRESS — INVOICE {{.InvoiceNumber}}
Date:     {{.Date}}
Customer: {{.CustomerName}} ({{.CustomAddress}})
Tracking: {{.TrackingNumber}}

Description:    {{.Description}}
Weight:         {{printf "%.1f" .Weight}} lbs
Declared value: {{printf "%.2f" .DeclaredValue}} USD

Shipping fee:   {{printf "%.2f" .ShippingFee}} USD
{{- if gt .Discount 0.0}}
Discount:      -{{printf "%.2f" .Discount}} USD
{{- end}}
Tax:            {{printf "%.2f" .TaxAmount}} USD
TOTAL:          {{printf "%.2f" .TotalAmount}} USD

Paid to date:   {{printf "%.2f" .TotalPaid}} USD
Balance due:    {{printf "%.2f" .Balance}} USD
`))

// Document renders the downloadable admin copy of the invoice. The
// customer-facing PDF is produced by the external rendering service.
func (s *InvoiceService) Document(ctx context.Context, id string) (*ports.InvoiceDocument, error) {
	detail, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = invoiceTemplate.Execute(&buf, map[string]any{
		"InvoiceNumber":  detail.Invoice.InvoiceNumber,
		"Date":           detail.Invoice.CreatedAt.Format("2006-01-02"),
		"CustomerName":   detail.Customer.FirstName + " " + detail.Customer.LastName,
		"CustomAddress":  detail.Customer.CustomAddress,
		"TrackingNumber": detail.Parcel.TrackingNumber,
		"Description":    detail.Parcel.Description,
		"Weight":         detail.Parcel.Weight,
		"DeclaredValue":  detail.Parcel.DeclaredValue,
		"ShippingFee":    detail.Parcel.ShippingFee,
		"Discount":       detail.Parcel.Discount,
		"TaxAmount":      detail.Parcel.TaxAmount,
		"TotalAmount":    detail.Parcel.TotalAmount,
		"TotalPaid":      detail.TotalPaid,
		"Balance":        detail.Balance,
	})
	if err != nil {
		return nil, fmt.Errorf("render invoice: %w", err)
	}

	return &ports.InvoiceDocument{
		Filename: detail.Invoice.InvoiceNumber + ".txt",
		Body:     buf.Bytes(),
	}, nil
}

// SendByEmail queues the invoice for delivery to the customer. Returns once
// the job is enqueued; delivery happens on the notifier workers.
func (s *InvoiceService) SendByEmail(ctx context.Context, id string) error {
	detail, err := s.GetInvoice(ctx, id)
	if err != nil {
		return err
	}

	s.notifier.Enqueue(ports.Notification{
		Kind:           ports.NotifyInvoiceEmail,
		TrackingNumber: detail.Parcel.TrackingNumber,
		CustomerEmail:  detail.Customer.Email,
		InvoiceNumber:  detail.Invoice.InvoiceNumber,
	})

	s.logger.Info().
		Str("invoice_number", detail.Invoice.InvoiceNumber).
		Str("email", detail.Customer.Email).
		Msg("invoice email queued")

	return nil
}
