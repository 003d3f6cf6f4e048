package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-pizza-api/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository owns the order collection and the single in-progress slot.
//
// Reads return snapshots that callers may freely modify. Status changes are only
// possible through Tx inside Atomically.
type Repository interface {
	// NextID returns a fresh, collision-resistant order identifier.
	NextID() string
	// Insert appends an order. The caller guarantees the id has not been used before.
	Insert(ctx context.Context, order *domain.Order) error
	Get(ctx context.Context, id string) (*domain.Order, error)
	// List returns every order in insertion order.
	List(ctx context.Context) ([]*domain.Order, error)
	// ListPending returns the WAITING orders in insertion order.
	ListPending(ctx context.Context) ([]*domain.Order, error)
	// Atomically runs fn inside the repository's critical section. fn must not
	// call back into the repository.
	Atomically(ctx context.Context, fn func(tx Tx) error) error
}

// Tx exposes the primitives that read and move the in-progress slot. The methods
// perform no invariant checks; the caller decides whether a mutation is allowed.
type Tx interface {
	CurrentInProgressID() (string, bool)
	// Find returns the live order. The handle is only valid until fn returns.
	Find(id string) (*domain.Order, bool)
	// MarkInProgress sets the order IN_PROGRESS and records it in the slot.
	MarkInProgress(order *domain.Order)
	// MarkCompleted sets the order COMPLETED and clears the slot.
	MarkCompleted(order *domain.Order)
}
