package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/yng-express/parcel-admin/internal/core/domain"
	"github.com/yng-express/parcel-admin/internal/core/ports"
)

type invoiceFixture struct {
	svc       *InvoiceService
	invoices  *stubInvoiceRepo
	parcels   *stubParcelRepo
	customers *stubCustomerRepo
	payments  *stubPaymentRepo
	notifier  *stubNotifier
}

func newInvoiceFixture() *invoiceFixture {
	invoices := newStubInvoiceRepo()
	parcels := newStubParcelRepo()
	customers := newStubCustomerRepo()
	payments := newStubPaymentRepo()
	notifier := &stubNotifier{}

	return &invoiceFixture{
		svc:       NewInvoiceService(invoices, parcels, customers, payments, notifier, zerolog.Nop()),
		invoices:  invoices,
		parcels:   parcels,
		customers: customers,
		payments:  payments,
		notifier:  notifier,
	}
}

func (f *invoiceFixture) seedParcel(t *testing.T, totalAmount float64) (*domain.Customer, *domain.Parcel) {
	t.Helper()

	customer, err := f.customers.Create(context.Background(), &domain.Customer{
		FirstName: "Marie", LastName: "Joseph", Email: "marie@example.com",
		CustomAddress: "YNG-0427",
	})
	if err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	parcel, err := f.parcels.Create(context.Background(), &domain.Parcel{
		TrackingNumber: "YNG-0000TEST",
		CustomerID:     customer.ID,
		Description:    "Shoes",
		Weight:         10,
		ShippingFee:    34,
		TaxAmount:      3.4,
		TotalAmount:    totalAmount,
		PaymentState:   domain.PaymentPending,
	})
	if err != nil {
		t.Fatalf("seed parcel: %v", err)
	}
	return customer, parcel
}

func TestInvoiceService_CreateForParcelNumbersSequentially(t *testing.T) {
	f := newInvoiceFixture()
	ctx := context.Background()
	_, parcel := f.seedParcel(t, 37.4)

	first, err := f.svc.CreateForParcel(ctx, parcel.ID)
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	second, err := f.svc.CreateForParcel(ctx, parcel.ID)
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	if !strings.HasSuffix(first.InvoiceNumber, "-000001") {
		t.Fatalf("first invoice number %q", first.InvoiceNumber)
	}
	if !strings.HasSuffix(second.InvoiceNumber, "-000002") {
		t.Fatalf("second invoice number %q", second.InvoiceNumber)
	}
}

func TestInvoiceService_GetInvoiceComputesBalance(t *testing.T) {
	f := newInvoiceFixture()
	ctx := context.Background()
	_, parcel := f.seedParcel(t, 100)

	invoice, err := f.svc.CreateForParcel(ctx, parcel.ID)
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	for _, amount := range []float64{30, 20} {
		if _, err := f.payments.Create(ctx, &domain.Payment{ParcelID: parcel.ID, Amount: amount}); err != nil {
			t.Fatalf("seed payment: %v", err)
		}
	}

	detail, err := f.svc.GetInvoice(ctx, invoice.ID)
	if err != nil {
		t.Fatalf("get invoice: %v", err)
	}
	if detail.TotalPaid != 50 || detail.Balance != 50 {
		t.Fatalf("paid/balance = %v/%v, want 50/50", detail.TotalPaid, detail.Balance)
	}
	if detail.Customer.CustomAddress != "YNG-0427" {
		t.Fatalf("customer not joined: %+v", detail.Customer)
	}
}

func TestInvoiceService_GetInvoiceNotFound(t *testing.T) {
	f := newInvoiceFixture()

	_, err := f.svc.GetInvoice(context.Background(), "missing")
	if !errors.Is(err, domain.ErrInvoiceNotFound) {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
}

func TestInvoiceService_ListToleratesOrphanedInvoice(t *testing.T) {
	f := newInvoiceFixture()
	ctx := context.Background()

	// Invoice whose parcel no longer exists.
	if _, err := f.invoices.Create(ctx, &domain.Invoice{
		InvoiceNumber: "INV-2026-000099", ParcelID: "gone",
	}); err != nil {
		t.Fatalf("seed orphan: %v", err)
	}
	_, parcel := f.seedParcel(t, 37.4)
	if _, err := f.svc.CreateForParcel(ctx, parcel.ID); err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	summaries, err := f.svc.ListInvoices(ctx)
	if err != nil {
		t.Fatalf("list invoices: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	for _, s := range summaries {
		if s.ParcelID == "gone" && s.TrackingNumber != "" {
			t.Fatalf("orphan summary should have bare fields: %+v", s)
		}
		if s.ParcelID == parcel.ID && s.CustomerName != "Marie Joseph" {
			t.Fatalf("customer name not joined: %+v", s)
		}
	}
}

func TestInvoiceService_DocumentRendersTotals(t *testing.T) {
	f := newInvoiceFixture()
	ctx := context.Background()
	_, parcel := f.seedParcel(t, 37.4)

	invoice, err := f.svc.CreateForParcel(ctx, parcel.ID)
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	doc, err := f.svc.Document(ctx, invoice.ID)
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	body := string(doc.Body)

	for _, want := range []string{invoice.InvoiceNumber, "YNG-0000TEST", "Marie Joseph", "37.40"} {
		if !strings.Contains(body, want) {
			t.Fatalf("document missing %q:\n%s", want, body)
		}
	}
	if doc.Filename != invoice.InvoiceNumber+".txt" {
		t.Fatalf("unexpected filename %q", doc.Filename)
	}
}

func TestInvoiceService_SendByEmailQueuesJob(t *testing.T) {
	f := newInvoiceFixture()
	ctx := context.Background()
	customer, parcel := f.seedParcel(t, 37.4)

	invoice, err := f.svc.CreateForParcel(ctx, parcel.ID)
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	if err := f.svc.SendByEmail(ctx, invoice.ID); err != nil {
		t.Fatalf("send by email: %v", err)
	}

	jobs := f.notifier.all()
	if len(jobs) != 1 {
		t.Fatalf("expected 1 queued job, got %d", len(jobs))
	}
	job := jobs[0]
	if job.Kind != ports.NotifyInvoiceEmail {
		t.Fatalf("kind = %v, want invoice_email", job.Kind)
	}
	if job.CustomerEmail != customer.Email || job.InvoiceNumber != invoice.InvoiceNumber {
		t.Fatalf("unexpected job: %+v", job)
	}
}

func TestInvoiceService_NumbersEmbedYear(t *testing.T) {
	f := newInvoiceFixture()
	_, parcel := f.seedParcel(t, 37.4)

	invoice, err := f.svc.CreateForParcel(context.Background(), parcel.ID)
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	var year int
	var seq int64
	if _, err := fmt.Sscanf(invoice.InvoiceNumber, "INV-%d-%d", &year, &seq); err != nil {
		t.Fatalf("invoice number %q does not parse: %v", invoice.InvoiceNumber, err)
	}
	if year < 2026 {
		t.Fatalf("unexpected year %d in %q", year, invoice.InvoiceNumber)
	}
}
