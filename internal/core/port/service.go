package port

import (
	"context"
	"time"

	"github.com/MikeRez0/sharpdata/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type OrderPusher interface {
	PushOrderByID(ctx context.Context, orderID uint64) (*domain.PushResult, error)
}

type StatusSyncer interface {
	SyncOrderStatuses(ctx context.Context) (*domain.SyncReport, error)
}

type PushScheduler interface {
	SchedulePush(ctx context.Context, orderID uint64) error
}

// Lease is a short-lived exclusive lock shared between service replicas.
type Lease interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(context.Context), ok bool, err error)
}

// Recorder counts fulfillment outcomes.
type Recorder interface {
	ItemPushed(outcome string)
	OrderSynced(outcome domain.SyncOutcome)
	NotificationSent(result string)
}
