package ports

import (
	"context"

	"github.com/Apurer/go-gin-pizza-api/internal/domains/orders/application/types"
	"github.com/Apurer/go-gin-pizza-api/internal/domains/orders/domain"
)

// Service exposes the order lifecycle use cases to adapters.
type Service interface {
	CreateOrder(ctx context.Context, input types.CreateOrderInput) (string, error)
	GetStatus(ctx context.Context, id string) (domain.Status, error)
	GetDetails(ctx context.Context, id string) (*domain.Order, error)
	ListPending(ctx context.Context) ([]*domain.Order, error)
	ListAll(ctx context.Context) ([]*domain.Order, error)
	StartProcessing(ctx context.Context, id string) error
	CompleteProcessing(ctx context.Context, id string) error
	// GetOrderInProgress returns nil without error when no order is being prepared.
	GetOrderInProgress(ctx context.Context) (*domain.Order, error)
}
