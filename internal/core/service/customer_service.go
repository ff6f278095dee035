package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/yng-express/parcel-admin/internal/core/domain"
	"github.com/yng-express/parcel-admin/internal/core/ports"
	"github.com/yng-express/parcel-admin/internal/core/pricing"
)

// codeAttempts bounds retries on mailbox-code collisions before giving up.
const codeAttempts = 5

type CustomerService struct {
	repo    ports.CustomerRepository
	parcels ports.ParcelRepository
	logger  zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, parcels ports.ParcelRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, parcels: parcels, logger: logger}
}

// CreateCustomer registers a customer and assigns a unique mailbox code.
// The code is what the customer writes on US packages, so collisions are
// resolved here by regenerating rather than surfacing an error.
func (s *CustomerService) CreateCustomer(ctx context.Context, input ports.CreateCustomerInput) (*domain.Customer, error) {
	customer := &domain.Customer{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		HaitiAddress: domain.HaitiAddress{
			Street: input.HaitiStreet,
			City:   input.HaitiCity,
			Region: input.HaitiRegion,
		},
		CreatedAt: time.Now().UTC(),
	}

	var created *domain.Customer
	var err error
	for attempt := 0; attempt < codeAttempts; attempt++ {
		customer.CustomAddress = generateMailboxCode()
		created, err = s.repo.Create(ctx, customer)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicateCode) {
			s.logger.Error().Err(err).Msg("failed to create customer")
			return nil, err
		}
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("exhausted mailbox code attempts")
		return nil, err
	}

	s.logger.Info().
		Str("customer_id", created.ID).
		Str("custom_address", created.CustomAddress).
		Msg("customer created")

	return created, nil
}

// GetCustomerDetail loads the customer and derives the parcel aggregates the
// detail page header shows: total parcels, currently in transit, delivered.
func (s *CustomerService) GetCustomerDetail(ctx context.Context, id string) (*ports.CustomerDetail, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	parcels, err := s.parcels.List(ctx, ports.ListParcelsFilter{CustomerID: customer.ID})
	if err != nil {
		return nil, fmt.Errorf("customer detail: %w", err)
	}

	detail := &ports.CustomerDetail{Customer: customer, ParcelCount: len(parcels)}
	for _, p := range parcels {
		if pricing.InTransit(string(p.Status)) {
			detail.InTransitCount++
		}
		if pricing.Delivered(string(p.Status)) {
			detail.DeliveredCount++
		}
	}
	return detail, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context, search string) ([]*domain.Customer, error) {
	return s.repo.List(ctx, strings.TrimSpace(search))
}

// SearchByCode powers the shipment-form autocomplete. The UI fires on every
// keystroke once two characters are typed; shorter prefixes short-circuit to
// an empty result instead of hitting the database.
func (s *CustomerService) SearchByCode(ctx context.Context, codePrefix string) ([]*domain.Customer, error) {
	prefix := strings.ToUpper(strings.TrimSpace(codePrefix))
	if len(prefix) < 2 {
		return []*domain.Customer{}, nil
	}
	return s.repo.FindByCodePrefix(ctx, prefix)
}

// generateMailboxCode returns a code in the format YNG-NNNN.
func generateMailboxCode() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("YNG-%04d", time.Now().UnixNano()%10000)
	}
	n := binary.BigEndian.Uint32(b[:]) % 10000
	return fmt.Sprintf("YNG-%04d", n)
}
