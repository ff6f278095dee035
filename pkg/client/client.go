// Package client is a typed HTTP client for the parcel-admin API. A Session
// carries the bearer token explicitly; there is no package-level auth state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// APIError is the decoded error envelope from a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Session is an authenticated connection to the API. Obtain a token with
// Login; Logout clears it. A zero token sends unauthenticated requests.
type Session struct {
	baseURL string
	http    *http.Client
	token   string
	user    *User
}

// Option customises a Session.
type Option func(*Session)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *Session) { s.http = hc }
}

// NewSession creates an unauthenticated Session for the API at baseURL.
func NewSession(baseURL string, opts ...Option) *Session {
	s := &Session{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login authenticates and stores the bearer token on the session.
func (s *Session) Login(ctx context.Context, email, password string) (*User, error) {
	var resp loginResponse
	err := s.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	s.token = resp.AccessToken
	s.user = resp.User
	return resp.User, nil
}

// Logout discards the session's token and cached user.
func (s *Session) Logout() {
	s.token = ""
	s.user = nil
}

// Authenticated reports whether the session holds a token.
func (s *Session) Authenticated() bool {
	return s.token != ""
}

// User returns the operator from the last successful Login, or nil.
func (s *Session) User() *User {
	return s.user
}

// --- Customers ---

func (s *Session) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*Customer, error) {
	var out Customer
	if err := s.do(ctx, http.MethodPost, "/customers", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCustomer returns the customer profile together with its parcel
// aggregates (total, in transit, delivered).
func (s *Session) GetCustomer(ctx context.Context, id string) (*CustomerDetail, error) {
	var out CustomerDetail
	if err := s.do(ctx, http.MethodGet, "/customers/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListCustomers(ctx context.Context, search string) ([]Customer, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	var out []Customer
	if err := s.do(ctx, http.MethodGet, "/customers", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) SearchCustomersByCode(ctx context.Context, codePrefix string) ([]Customer, error) {
	q := url.Values{"code": {codePrefix}}
	var out []Customer
	if err := s.do(ctx, http.MethodGet, "/customers/search/by-code", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --- Parcels ---

func (s *Session) CreateParcel(ctx context.Context, input CreateParcelInput) (*Parcel, error) {
	var out Parcel
	if err := s.do(ctx, http.MethodPost, "/parcels", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetParcel(ctx context.Context, id string) (*Parcel, error) {
	var out Parcel
	if err := s.do(ctx, http.MethodGet, "/parcels/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetParcelByTracking(ctx context.Context, trackingNumber string) (*Parcel, error) {
	var out Parcel
	if err := s.do(ctx, http.MethodGet, "/parcels/tracking/"+url.PathEscape(trackingNumber), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListParcels(ctx context.Context, filter ListParcelsFilter) ([]Parcel, error) {
	q := url.Values{}
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}
	if filter.CustomerID != "" {
		q.Set("customerId", filter.CustomerID)
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	var out []Parcel
	if err := s.do(ctx, http.MethodGet, "/parcels", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateParcelStatus applies the change and returns the reloaded parcel.
func (s *Session) UpdateParcelStatus(ctx context.Context, id string, input UpdateStatusInput) (*Parcel, error) {
	var out Parcel
	if err := s.do(ctx, http.MethodPatch, "/parcels/"+url.PathEscape(id)+"/status", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Payments ---

func (s *Session) RecordPayment(ctx context.Context, input RecordPaymentInput) (*Payment, error) {
	var out Payment
	if err := s.do(ctx, http.MethodPost, "/payments", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListPayments(ctx context.Context, parcelID string) ([]Payment, error) {
	q := url.Values{}
	if parcelID != "" {
		q.Set("parcelId", parcelID)
	}
	var out []Payment
	if err := s.do(ctx, http.MethodGet, "/payments", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PaymentReceipt downloads the rendered receipt for a payment.
func (s *Session) PaymentReceipt(ctx context.Context, paymentID string) ([]byte, error) {
	return s.download(ctx, "/payments/"+url.PathEscape(paymentID)+"/receipt")
}

// --- Invoices ---

func (s *Session) ListInvoices(ctx context.Context) ([]InvoiceSummary, error) {
	var out []InvoiceSummary
	if err := s.do(ctx, http.MethodGet, "/invoices", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetInvoice(ctx context.Context, id string) (*InvoiceDetail, error) {
	var out InvoiceDetail
	if err := s.do(ctx, http.MethodGet, "/invoices/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadInvoice downloads the rendered invoice document.
func (s *Session) DownloadInvoice(ctx context.Context, id string) ([]byte, error) {
	return s.download(ctx, "/invoices/"+url.PathEscape(id)+"/download")
}

// SendInvoice queues the invoice for email delivery. A nil error means the
// job was accepted, not that the email went out.
func (s *Session) SendInvoice(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodPost, "/invoices/"+url.PathEscape(id)+"/send", nil, nil, nil)
}

// --- Reports ---

func (s *Session) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var out DashboardStats
	if err := s.do(ctx, http.MethodGet, "/reports/dashboard", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) StatusBreakdown(ctx context.Context) ([]StatusCount, error) {
	var out []StatusCount
	if err := s.do(ctx, http.MethodGet, "/reports/status-breakdown", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) Revenue(ctx context.Context) (*RevenueReport, error) {
	var out RevenueReport
	if err := s.do(ctx, http.MethodGet, "/reports/revenue", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CustomerGrowth(ctx context.Context, months int) ([]MonthlyCount, error) {
	q := url.Values{}
	if months > 0 {
		q.Set("months", fmt.Sprintf("%d", months))
	}
	var out []MonthlyCount
	if err := s.do(ctx, http.MethodGet, "/reports/customer-growth", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) ShippingVolume(ctx context.Context, days int) ([]DailyCount, error) {
	q := url.Values{}
	if days > 0 {
		q.Set("days", fmt.Sprintf("%d", days))
	}
	var out []DailyCount
	if err := s.do(ctx, http.MethodGet, "/reports/shipping-volume", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --- Transport ---

// do executes one request. A nil out discards the response body; a nil body
// sends no payload.
func (s *Session) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	u := s.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// download fetches a binary endpoint and returns the raw body.
func (s *Session) download(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}
	return io.ReadAll(resp.Body)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Message != "" {
		apiErr.Message = envelope.Message
	}
	return apiErr
}
