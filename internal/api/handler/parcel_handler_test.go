package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/yng-express/parcel-admin/internal/core/domain"
	"github.com/yng-express/parcel-admin/internal/core/ports"
)

type stubParcelService struct {
	createFn       func(ctx context.Context, input ports.CreateParcelInput) (*domain.Parcel, error)
	getFn          func(ctx context.Context, id string) (*domain.Parcel, error)
	getTrackingFn  func(ctx context.Context, trackingNumber string) (*domain.Parcel, error)
	listFn         func(ctx context.Context, filter ports.ListParcelsFilter) ([]*domain.Parcel, error)
	updateStatusFn func(ctx context.Context, input ports.UpdateStatusInput) (*domain.Parcel, error)
}

func (s *stubParcelService) CreateParcel(ctx context.Context, input ports.CreateParcelInput) (*domain.Parcel, error) {
	return s.createFn(ctx, input)
}

func (s *stubParcelService) GetParcel(ctx context.Context, id string) (*domain.Parcel, error) {
	return s.getFn(ctx, id)
}

func (s *stubParcelService) GetParcelByTracking(ctx context.Context, trackingNumber string) (*domain.Parcel, error) {
	return s.getTrackingFn(ctx, trackingNumber)
}

func (s *stubParcelService) ListParcels(ctx context.Context, filter ports.ListParcelsFilter) ([]*domain.Parcel, error) {
	return s.listFn(ctx, filter)
}

func (s *stubParcelService) UpdateStatus(ctx context.Context, input ports.UpdateStatusInput) (*domain.Parcel, error) {
	return s.updateStatusFn(ctx, input)
}

func TestParcelHandler_Create_Success(t *testing.T) {
	stub := &stubParcelService{
		createFn: func(ctx context.Context, input ports.CreateParcelInput) (*domain.Parcel, error) {
			if input.CustomerID != "cust_1" || input.Weight != 10 || input.DeclaredValue != 200 {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.ManualPricing != nil {
				t.Fatalf("manual pricing should be nil in auto mode")
			}
			return &domain.Parcel{
				ID:             "par_1",
				TrackingNumber: "YNG-0000000A",
				CustomerID:     input.CustomerID,
				Status:         domain.StatusPending,
				PaymentState:   domain.PaymentPending,
				TotalAmount:    37.4,
			}, nil
		},
	}
	handler := NewParcelHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/parcels",
		`{"customer_id":"cust_1","description":"Shoes","weight":10,"declared_value":200}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp parcelResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.TrackingNumber != "YNG-0000000A" || resp.TotalAmount != 37.4 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp.StatusCategory != "pending" || resp.PaymentStatusCategory != "payment_pending" {
		t.Fatalf("categories not derived: %+v", resp)
	}
}

func TestParcelHandler_Create_ManualPricing(t *testing.T) {
	stub := &stubParcelService{
		createFn: func(ctx context.Context, input ports.CreateParcelInput) (*domain.Parcel, error) {
			mp := input.ManualPricing
			if mp == nil || mp.ShippingFee != 50 || mp.Discount != 10 || mp.TaxAmount != 5 {
				t.Fatalf("manual pricing not mapped: %+v", mp)
			}
			return &domain.Parcel{ID: "par_1", TotalAmount: 45}, nil
		},
	}
	handler := NewParcelHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/parcels",
		`{"customer_id":"cust_1","description":"Laptop","weight":5,"manual_pricing":{"shipping_fee":50,"discount":10,"tax_amount":5}}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestParcelHandler_Create_RejectsZeroWeight(t *testing.T) {
	stub := &stubParcelService{
		createFn: func(ctx context.Context, input ports.CreateParcelInput) (*domain.Parcel, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewParcelHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/parcels",
		`{"customer_id":"cust_1","description":"Shoes","weight":0}`)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestParcelHandler_Get_NotFound(t *testing.T) {
	stub := &stubParcelService{
		getFn: func(ctx context.Context, id string) (*domain.Parcel, error) {
			return nil, domain.ErrParcelNotFound
		},
	}
	handler := NewParcelHandler(stub)

	c, _ := newTestContext(http.MethodGet, "/parcels/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := handler.Get(c)
	if !errors.Is(err, domain.ErrParcelNotFound) {
		t.Fatalf("expected ErrParcelNotFound, got %v", err)
	}
}

func TestParcelHandler_GetByTracking(t *testing.T) {
	stub := &stubParcelService{
		getTrackingFn: func(ctx context.Context, trackingNumber string) (*domain.Parcel, error) {
			if trackingNumber != "YNG-7A8B9C2D" {
				t.Fatalf("tracking number = %q", trackingNumber)
			}
			return &domain.Parcel{ID: "par_1", TrackingNumber: trackingNumber}, nil
		},
	}
	handler := NewParcelHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/parcels/tracking/YNG-7A8B9C2D", "")
	c.SetParamNames("trackingNumber")
	c.SetParamValues("YNG-7A8B9C2D")

	if err := handler.GetByTracking(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestParcelHandler_List_MapsQueryFilters(t *testing.T) {
	stub := &stubParcelService{
		listFn: func(ctx context.Context, filter ports.ListParcelsFilter) ([]*domain.Parcel, error) {
			if filter.Status != "PENDING" || filter.CustomerID != "cust_1" || filter.Search != "shoes" {
				t.Fatalf("unexpected filter: %+v", filter)
			}
			return []*domain.Parcel{{ID: "par_1"}, {ID: "par_2"}}, nil
		},
	}
	handler := NewParcelHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/parcels?status=PENDING&customerId=cust_1&search=shoes", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []parcelResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 parcels, got %d", len(resp))
	}
}

func TestParcelHandler_UpdateStatus(t *testing.T) {
	stub := &stubParcelService{
		updateStatusFn: func(ctx context.Context, input ports.UpdateStatusInput) (*domain.Parcel, error) {
			if input.ParcelID != "par_1" || input.Status != "ARRIVED_MIAMI" || input.Location != "Miami, FL" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Parcel{ID: input.ParcelID, Status: domain.StatusArrivedMiami}, nil
		},
	}
	handler := NewParcelHandler(stub)

	c, rec := newTestContext(http.MethodPatch, "/parcels/par_1/status",
		`{"status":"ARRIVED_MIAMI","location":"Miami, FL"}`)
	c.SetParamNames("id")
	c.SetParamValues("par_1")

	if err := handler.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp parcelResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "ARRIVED_MIAMI" {
		t.Fatalf("status = %q", resp.Status)
	}
	if resp.StatusCategory != "arrived" {
		t.Fatalf("status category = %q, want arrived", resp.StatusCategory)
	}
}

func TestParcelHandler_UpdateStatus_InvalidToken(t *testing.T) {
	stub := &stubParcelService{
		updateStatusFn: func(ctx context.Context, input ports.UpdateStatusInput) (*domain.Parcel, error) {
			return nil, domain.ErrInvalidStatus
		},
	}
	handler := NewParcelHandler(stub)

	c, _ := newTestContext(http.MethodPatch, "/parcels/par_1/status", `{"status":"LOST_AT_SEA"}`)
	c.SetParamNames("id")
	c.SetParamValues("par_1")

	err := handler.UpdateStatus(c)
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
