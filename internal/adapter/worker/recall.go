package worker

import (
	"context"

	"github.com/MikeRez0/sharpdata/internal/core/domain"
	"github.com/MikeRez0/sharpdata/internal/core/port"
)

// RecallOrders queues pending orders that were never pushed, e.g. after a restart
// dropped the in-memory queue.
func RecallOrders(ctx context.Context, repo port.Repository, scheduler port.PushScheduler) (int, error) {
	orders, err := repo.ListOrdersByStatus(ctx, []domain.OrderStatus{domain.OrderStatusPending})
	if err != nil {
		return 0, err
	}

	recalled := 0
	for _, order := range orders {
		if order.APIStatus != domain.APIStatusUnset {
			continue
		}
		if err := scheduler.SchedulePush(ctx, order.ID); err != nil {
			return recalled, err
		}
		recalled++
	}
	return recalled, nil
}
