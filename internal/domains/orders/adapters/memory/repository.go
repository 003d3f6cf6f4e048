package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-pizza-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-pizza-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order store. A single mutex guards the collection
// and the in-progress slot for every read, insert and transition.
type Repository struct {
	mu         sync.Mutex
	orders     []*domain.Order
	index      map[string]int
	inProgress string
	newID      func() string
}

func NewRepository() *Repository {
	return &Repository{index: map[string]int{}, newID: uuid.NewString}
}

// WithIDGenerator overrides the identifier source, primarily for tests.
func (r *Repository) WithIDGenerator(gen func() string) *Repository {
	if gen != nil {
		r.newID = gen
	}
	return r
}

func (r *Repository) NextID() string {
	return r.newID()
}

func (r *Repository) Insert(_ context.Context, order *domain.Order) error {
	if order == nil {
		return errors.New("order is nil")
	}
	clone := order.Clone()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index[clone.ID] = len(r.orders)
	r.orders = append(r.orders, clone)
	return nil
}

func (r *Repository) Get(_ context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.find(id)
	if !ok {
		return nil, ports.ErrNotFound
	}
	return order.Clone(), nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		list = append(list, order.Clone())
	}
	return list, nil
}

func (r *Repository) ListPending(_ context.Context) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*domain.Order, 0)
	for _, order := range r.orders {
		if order.Status == domain.StatusWaiting {
			list = append(list, order.Clone())
		}
	}
	return list, nil
}

func (r *Repository) Atomically(_ context.Context, fn func(tx ports.Tx) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(repositoryTx{r: r})
}

// Clear drops every order and empties the in-progress slot. Test support only.
func (r *Repository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = nil
	r.index = map[string]int{}
	r.inProgress = ""
}

func (r *Repository) find(id string) (*domain.Order, bool) {
	idx, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return r.orders[idx], true
}

// repositoryTx is only handed out while r.mu is held.
type repositoryTx struct {
	r *Repository
}

func (tx repositoryTx) CurrentInProgressID() (string, bool) {
	return tx.r.inProgress, tx.r.inProgress != ""
}

func (tx repositoryTx) Find(id string) (*domain.Order, bool) {
	return tx.r.find(id)
}

func (tx repositoryTx) MarkInProgress(order *domain.Order) {
	order.Status = domain.StatusInProgress
	tx.r.inProgress = order.ID
}

func (tx repositoryTx) MarkCompleted(order *domain.Order) {
	order.Status = domain.StatusCompleted
	tx.r.inProgress = ""
}
