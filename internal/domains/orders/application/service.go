package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	catalogports "github.com/Apurer/go-gin-pizza-api/internal/domains/catalog/ports"
	"github.com/Apurer/go-gin-pizza-api/internal/domains/orders/application/types"
	"github.com/Apurer/go-gin-pizza-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-pizza-api/internal/domains/orders/ports"
)

// Service orchestrates order creation and the kitchen lifecycle.
// It is the only caller of the repository's transition primitives.
type Service struct {
	repo    ports.Repository
	catalog catalogports.Catalog
	now     func() time.Time
}

// Option configures optional collaborators.
type Option func(*Service)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(repo ports.Repository, catalog catalogports.Catalog, opts ...Option) *Service {
	s := &Service{repo: repo, catalog: catalog, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// CreateOrder validates every line item against the catalog and stores a WAITING
// order. Nothing is stored unless every line item resolves.
func (s *Service) CreateOrder(ctx context.Context, input types.CreateOrderInput) (string, error) {
	if strings.TrimSpace(input.CustomerName) == "" {
		return "", mapError(domain.ErrEmptyCustomerName)
	}
	if len(input.LineItems) == 0 {
		return "", mapError(domain.ErrNoLineItems)
	}
	items := make([]domain.LineItem, 0, len(input.LineItems))
	for _, requested := range input.LineItems {
		entry, ok := s.catalog.Resolve(requested.TypeID)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrInvalidEntryType, requested.TypeID)
		}
		item, err := domain.NewLineItem(entry, requested.Quantity, requested.AdditionalIngredients)
		if err != nil {
			return "", mapError(err)
		}
		items = append(items, item)
	}
	order, err := domain.NewOrder(s.repo.NextID(), input.CustomerName, items, s.now())
	if err != nil {
		return "", mapError(err)
	}
	if err := s.repo.Insert(ctx, order); err != nil {
		return "", err
	}
	return order.ID, nil
}

func (s *Service) GetStatus(ctx context.Context, id string) (domain.Status, error) {
	order, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return order.Status, nil
}

func (s *Service) GetDetails(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListPending(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.ListPending(ctx)
}

func (s *Service) ListAll(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

// StartProcessing moves a WAITING order into the in-progress slot. An occupied
// slot is reported before anything else, even when it holds id itself.
func (s *Service) StartProcessing(ctx context.Context, id string) error {
	return s.repo.Atomically(ctx, func(tx ports.Tx) error {
		if current, busy := tx.CurrentInProgressID(); busy {
			return fmt.Errorf("%w: %s", ErrOrderAlreadyInProgress, current)
		}
		order, ok := tx.Find(id)
		if !ok {
			return fmt.Errorf("%w: %s", ports.ErrNotFound, id)
		}
		if order.Status != domain.StatusWaiting {
			return fmt.Errorf("%w: %s is %s", ErrOrderAlreadyProcessed, id, order.Status)
		}
		tx.MarkInProgress(order)
		return nil
	})
}

// CompleteProcessing finishes the order currently held in the in-progress slot.
func (s *Service) CompleteProcessing(ctx context.Context, id string) error {
	return s.repo.Atomically(ctx, func(tx ports.Tx) error {
		current, busy := tx.CurrentInProgressID()
		if !busy || current != id {
			return fmt.Errorf("%w: %s", ErrOrderNotInProgress, id)
		}
		order, ok := tx.Find(id)
		if !ok {
			return fmt.Errorf("%w: %s", ports.ErrNotFound, id)
		}
		tx.MarkCompleted(order)
		return nil
	})
}

func (s *Service) GetOrderInProgress(ctx context.Context) (*domain.Order, error) {
	var snapshot *domain.Order
	err := s.repo.Atomically(ctx, func(tx ports.Tx) error {
		current, busy := tx.CurrentInProgressID()
		if !busy {
			return nil
		}
		if order, ok := tx.Find(current); ok {
			snapshot = order.Clone()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

var _ ports.Service = (*Service)(nil)
