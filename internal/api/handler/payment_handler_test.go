package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/yng-express/parcel-admin/internal/core/domain"
	"github.com/yng-express/parcel-admin/internal/core/ports"
)

type stubPaymentService struct {
	recordFn  func(ctx context.Context, input ports.RecordPaymentInput) (*domain.Payment, error)
	listFn    func(ctx context.Context, parcelID string) ([]*domain.Payment, error)
	receiptFn func(ctx context.Context, paymentID string) (*ports.PaymentReceipt, error)
}

func (s *stubPaymentService) RecordPayment(ctx context.Context, input ports.RecordPaymentInput) (*domain.Payment, error) {
	return s.recordFn(ctx, input)
}

func (s *stubPaymentService) ListPayments(ctx context.Context, parcelID string) ([]*domain.Payment, error) {
	return s.listFn(ctx, parcelID)
}

func (s *stubPaymentService) Receipt(ctx context.Context, paymentID string) (*ports.PaymentReceipt, error) {
	return s.receiptFn(ctx, paymentID)
}

func TestPaymentHandler_Record_TakesOperatorFromClaims(t *testing.T) {
	stub := &stubPaymentService{
		recordFn: func(ctx context.Context, input ports.RecordPaymentInput) (*domain.Payment, error) {
			if input.ReceivedBy != "agent@yng.ht" {
				t.Fatalf("received_by = %q, want claims email", input.ReceivedBy)
			}
			if input.ParcelID != "par_1" || input.Amount != 30 || input.Method != "CASH" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Payment{
				ID:            "pay_1",
				ParcelID:      input.ParcelID,
				Amount:        input.Amount,
				Method:        domain.PaymentMethod(input.Method),
				ReceivedBy:    input.ReceivedBy,
				ReceiptNumber: "RCT-abcd1234",
			}, nil
		},
	}
	handler := NewPaymentHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/payments",
		`{"parcel_id":"par_1","amount":30,"method":"CASH"}`)
	c.Set("email", "agent@yng.ht")
	c.Set("role", "agent")

	if err := handler.Record(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp paymentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ReceiptNumber != "RCT-abcd1234" || resp.ReceivedBy != "agent@yng.ht" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPaymentHandler_Record_MissingClaims(t *testing.T) {
	stub := &stubPaymentService{
		recordFn: func(ctx context.Context, input ports.RecordPaymentInput) (*domain.Payment, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewPaymentHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/payments",
		`{"parcel_id":"par_1","amount":30,"method":"CASH"}`)

	err := handler.Record(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestPaymentHandler_Record_RejectsUnknownMethod(t *testing.T) {
	stub := &stubPaymentService{
		recordFn: func(ctx context.Context, input ports.RecordPaymentInput) (*domain.Payment, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewPaymentHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/payments",
		`{"parcel_id":"par_1","amount":30,"method":"IOU"}`)
	c.Set("email", "agent@yng.ht")
	c.Set("role", "agent")

	err := handler.Record(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestPaymentHandler_List_FiltersByParcel(t *testing.T) {
	stub := &stubPaymentService{
		listFn: func(ctx context.Context, parcelID string) ([]*domain.Payment, error) {
			if parcelID != "par_1" {
				t.Fatalf("parcel filter = %q", parcelID)
			}
			return []*domain.Payment{{ID: "pay_1", ParcelID: parcelID}}, nil
		},
	}
	handler := NewPaymentHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/payments?parcelId=par_1", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []paymentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0].ID != "pay_1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPaymentHandler_Receipt_StreamsDownload(t *testing.T) {
	stub := &stubPaymentService{
		receiptFn: func(ctx context.Context, paymentID string) (*ports.PaymentReceipt, error) {
			return &ports.PaymentReceipt{
				Filename: "RCT-abcd1234.txt",
				Body:     []byte("RECEIPT RCT-abcd1234"),
			}, nil
		},
	}
	handler := NewPaymentHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/payments/pay_1/receipt", "")
	c.SetParamNames("id")
	c.SetParamValues("pay_1")

	if err := handler.Receipt(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(got, "RCT-abcd1234.txt") {
		t.Fatalf("content disposition = %q", got)
	}
	if !strings.Contains(rec.Body.String(), "RECEIPT RCT-abcd1234") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestPaymentHandler_Receipt_NotFound(t *testing.T) {
	stub := &stubPaymentService{
		receiptFn: func(ctx context.Context, paymentID string) (*ports.PaymentReceipt, error) {
			return nil, domain.ErrPaymentNotFound
		},
	}
	handler := NewPaymentHandler(stub)

	c, _ := newTestContext(http.MethodGet, "/payments/missing/receipt", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := handler.Receipt(c)
	if !errors.Is(err, domain.ErrPaymentNotFound) {
		t.Fatalf("expected ErrPaymentNotFound, got %v", err)
	}
}
