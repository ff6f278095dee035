package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/yng-express/parcel-admin/internal/core/domain"
	"github.com/yng-express/parcel-admin/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

type stubAuthRepo struct {
	byEmail map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{byEmail: make(map[string]*domain.User)}
}

func (r *stubAuthRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := r.byEmail[u.Email]; ok {
		return nil, domain.ErrUserExists
	}
	clone := *u
	clone.ID = fmt.Sprintf("user_%d", len(r.byEmail)+1)
	r.byEmail[u.Email] = &clone
	return &clone, nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

type stubCustomerRepo struct {
	byID       map[string]*domain.Customer
	codes      map[string]struct{}
	duplicates int // number of Create calls that fail with ErrDuplicateCode
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{
		byID:  make(map[string]*domain.Customer),
		codes: make(map[string]struct{}),
	}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	if r.duplicates > 0 {
		r.duplicates--
		return nil, domain.ErrDuplicateCode
	}
	if _, ok := r.codes[c.CustomAddress]; ok {
		return nil, domain.ErrDuplicateCode
	}
	clone := *c
	clone.ID = fmt.Sprintf("cust_%d", len(r.byID)+1)
	r.byID[clone.ID] = &clone
	r.codes[clone.CustomAddress] = struct{}{}
	return &clone, nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id string) (*domain.Customer, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	clone := *c
	return &clone, nil
}

// List applies the same free-text filter the real Mongo repo would use.
func (r *stubCustomerRepo) List(_ context.Context, search string) ([]*domain.Customer, error) {
	out := []*domain.Customer{}
	needle := strings.ToLower(search)
	for _, c := range r.byID {
		if search != "" {
			haystack := strings.ToLower(c.FirstName + " " + c.LastName + " " + c.Email + " " + c.Phone + " " + c.CustomAddress)
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCustomerRepo) FindByCodePrefix(_ context.Context, prefix string) ([]*domain.Customer, error) {
	out := []*domain.Customer{}
	for _, c := range r.byID {
		if strings.HasPrefix(c.CustomAddress, prefix) {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

type stubParcelRepo struct {
	byID      map[string]*domain.Parcel
	createErr error
}

func newStubParcelRepo() *stubParcelRepo {
	return &stubParcelRepo{byID: make(map[string]*domain.Parcel)}
}

func (r *stubParcelRepo) Create(_ context.Context, p *domain.Parcel) (*domain.Parcel, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *p
	clone.ID = fmt.Sprintf("parcel_%d", len(r.byID)+1)
	r.byID[clone.ID] = &clone
	return &clone, nil
}

func (r *stubParcelRepo) FindByID(_ context.Context, id string) (*domain.Parcel, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrParcelNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubParcelRepo) FindByTrackingNumber(_ context.Context, trackingNumber string) (*domain.Parcel, error) {
	for _, p := range r.byID {
		if p.TrackingNumber == trackingNumber {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrParcelNotFound
}

// List applies the same filters the real Mongo repo would use.
func (r *stubParcelRepo) List(_ context.Context, f ports.ListParcelsFilter) ([]*domain.Parcel, error) {
	out := []*domain.Parcel{}
	for _, p := range r.byID {
		if f.Status != "" && string(p.Status) != f.Status {
			continue
		}
		if f.CustomerID != "" && p.CustomerID != f.CustomerID {
			continue
		}
		if f.Search != "" {
			needle := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(p.TrackingNumber), needle) &&
				!strings.Contains(strings.ToLower(p.Barcode), needle) &&
				!strings.Contains(strings.ToLower(p.Description), needle) {
				continue
			}
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubParcelRepo) AppendStatus(_ context.Context, id string, event domain.TrackingEvent) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrParcelNotFound
	}
	p.Status = event.Status
	p.UpdatedAt = event.Timestamp
	p.TrackingEvents = append(p.TrackingEvents, event)
	return nil
}

func (r *stubParcelRepo) SetPaymentState(_ context.Context, id string, state domain.PaymentState) error {
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrParcelNotFound
	}
	p.PaymentState = state
	return nil
}

type stubPaymentRepo struct {
	byID map[string]*domain.Payment
	seq  int
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{byID: make(map[string]*domain.Payment)}
}

func (r *stubPaymentRepo) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	r.seq++
	clone := *p
	clone.ID = fmt.Sprintf("pay_%d", r.seq)
	r.byID[clone.ID] = &clone
	return &clone, nil
}

func (r *stubPaymentRepo) FindByID(_ context.Context, id string) (*domain.Payment, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPaymentRepo) ListByParcel(_ context.Context, parcelID string) ([]*domain.Payment, error) {
	out := []*domain.Payment{}
	for _, p := range r.byID {
		if parcelID != "" && p.ParcelID != parcelID {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

type stubInvoiceRepo struct {
	byID map[string]*domain.Invoice
	seq  int64
}

func newStubInvoiceRepo() *stubInvoiceRepo {
	return &stubInvoiceRepo{byID: make(map[string]*domain.Invoice)}
}

func (r *stubInvoiceRepo) Create(_ context.Context, inv *domain.Invoice) (*domain.Invoice, error) {
	clone := *inv
	clone.ID = fmt.Sprintf("inv_%d", len(r.byID)+1)
	r.byID[clone.ID] = &clone
	return &clone, nil
}

func (r *stubInvoiceRepo) FindByID(_ context.Context, id string) (*domain.Invoice, error) {
	inv, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrInvoiceNotFound
	}
	clone := *inv
	return &clone, nil
}

func (r *stubInvoiceRepo) List(_ context.Context) ([]*domain.Invoice, error) {
	out := []*domain.Invoice{}
	for _, inv := range r.byID {
		clone := *inv
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubInvoiceRepo) NextSequence(_ context.Context, _ int) (int64, error) {
	r.seq++
	return r.seq, nil
}

// ---------------------------------------------------------------------------
// Stub collaborators
// ---------------------------------------------------------------------------

// stubDedup marks scans in memory; seen pairs report as duplicates.
type stubDedup struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	failing bool
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]struct{})}
}

func (d *stubDedup) IsDuplicate(_ context.Context, trackingNumber, status string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.failing {
		return false, fmt.Errorf("dedup store down")
	}
	_, ok := d.seen[trackingNumber+":"+status]
	return ok, nil
}

func (d *stubDedup) Mark(_ context.Context, trackingNumber, status string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen[trackingNumber+":"+status] = struct{}{}
	return nil
}

// stubNotifier records enqueued notifications.
type stubNotifier struct {
	mu   sync.Mutex
	jobs []ports.Notification
}

func (n *stubNotifier) Enqueue(job ports.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.jobs = append(n.jobs, job)
}

func (n *stubNotifier) all() []ports.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]ports.Notification(nil), n.jobs...)
}

// stubCache is a TTL-less in-memory report cache.
type stubCache struct {
	entries map[string][]byte
	sets    int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]byte)}
}

func (c *stubCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *stubCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.sets++
	c.entries[key] = value
	return nil
}
