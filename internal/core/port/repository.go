package port

import (
	"context"

	"github.com/MikeRez0/sharpdata/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// ReadOrder returns the order with its owner and line items.
	ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	// ListOrdersByStatus returns orders (with owner, without items) in any of the given statuses.
	ListOrdersByStatus(ctx context.Context, statuses []domain.OrderStatus) ([]*domain.Order, error)

	UpdateOrderReference(ctx context.Context, orderID uint64, referenceID string) error
	UpdateOrderAPIStatus(ctx context.Context, orderID uint64, status domain.APIStatus) error
	// UpdateOrderStatus moves the order from one status to another.
	// It reports false when the order was no longer in status from.
	UpdateOrderStatus(ctx context.Context, orderID uint64, from, to domain.OrderStatus) (bool, error)
}
