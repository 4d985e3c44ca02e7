package port

import (
	"context"

	"github.com/MikeRez0/sharpdata/internal/core/domain"
)

//go:generate mockgen -source=upstream.go -destination=mock/upstream.go -package=mock
type FulfillmentClient interface {
	PlaceOrder(ctx context.Context, req domain.FulfillmentRequest) (*domain.FulfillmentReceipt, error)
	TransactionStatus(ctx context.Context, orderID uint64) (string, error)
}

type Notifier interface {
	SendSms(ctx context.Context, phone string, message string) (bool, error)
}
