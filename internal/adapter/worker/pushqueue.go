package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/MikeRez0/sharpdata/internal/core/domain"
	"github.com/MikeRez0/sharpdata/internal/core/port"
	"go.uber.org/zap"
)

type pushState int

const (
	stateQueued pushState = iota
	stateRunning
	// running, and scheduled again meanwhile
	stateRerun
)

// PushQueue hands order ids to a fixed set of push workers.
// An id that is already queued is not queued again. An id scheduled while its
// push is running is pushed once more after that push finishes.
type PushQueue struct {
	logger     *zap.Logger
	orderQueue chan uint64

	mu      sync.Mutex
	pending map[uint64]pushState
	done    chan struct{}
	stop    sync.Once
}

func NewPushQueue(size int, log *zap.Logger) *PushQueue {
	if size < 1 {
		size = 1
	}
	return &PushQueue{
		logger:     log,
		orderQueue: make(chan uint64, size),
		pending:    make(map[uint64]pushState),
		done:       make(chan struct{}),
	}
}

func (q *PushQueue) SchedulePush(ctx context.Context, orderID uint64) error {
	select {
	case <-q.done:
		return domain.ErrQueueClosed
	default:
	}

	q.mu.Lock()
	if state, ok := q.pending[orderID]; ok {
		if state == stateRunning {
			q.pending[orderID] = stateRerun
		}
		q.mu.Unlock()
		q.logger.Debug("Order already scheduled for push", zap.Uint64("order", orderID))
		return nil
	}
	q.pending[orderID] = stateQueued
	q.mu.Unlock()

	select {
	case q.orderQueue <- orderID:
		q.logger.Debug("Order queued for push", zap.Uint64("order", orderID))
		return nil
	case <-ctx.Done():
		q.forget(orderID)
		return ctx.Err()
	case <-q.done:
		q.forget(orderID)
		return domain.ErrQueueClosed
	}
}

func (q *PushQueue) forget(orderID uint64) {
	q.mu.Lock()
	delete(q.pending, orderID)
	q.mu.Unlock()
}

func (q *PushQueue) setState(orderID uint64, state pushState) {
	q.mu.Lock()
	q.pending[orderID] = state
	q.mu.Unlock()
}

// finish clears a pushed id, or puts it back on the queue when it was scheduled mid-push.
func (q *PushQueue) finish(orderID uint64) {
	q.mu.Lock()
	if q.pending[orderID] != stateRerun {
		delete(q.pending, orderID)
		q.mu.Unlock()
		return
	}
	q.pending[orderID] = stateQueued
	q.mu.Unlock()
	q.logger.Debug("Order scheduled during push, queueing it again", zap.Uint64("order", orderID))

	// the send may block on a full queue, and the workers are the only readers
	go func() {
		select {
		case q.orderQueue <- orderID:
		case <-q.done:
			q.forget(orderID)
		}
	}()
}

// Run starts the workers and blocks until ctx is done and every in-flight push has finished.
// Ids still waiting in the queue at shutdown are dropped; they are recalled on the next start.
func (q *PushQueue) Run(ctx context.Context, pusher port.OrderPusher, workers int) error {
	if workers < 1 {
		workers = 1
	}

	wg := sync.WaitGroup{}
	for i := range workers {
		wg.Add(1)
		go func(log *zap.Logger) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					log.Debug("Finished worker")
					return
				case orderID := <-q.orderQueue:
					q.push(ctx, log, pusher, orderID)
				}
			}
		}(q.logger.With(zap.Int("worker", i)))
	}

	<-ctx.Done()
	q.stop.Do(func() { close(q.done) })
	wg.Wait()
	return nil
}

func (q *PushQueue) push(ctx context.Context, log *zap.Logger, pusher port.OrderPusher, orderID uint64) {
	q.setState(orderID, stateRunning)
	defer q.finish(orderID)

	log.Debug("Start pushing order", zap.Uint64("order", orderID))
	result, err := pusher.PushOrderByID(context.WithoutCancel(ctx), orderID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			log.Warn("Order to push not found", zap.Uint64("order", orderID))
			return
		}
		log.Error("Push order", zap.Uint64("order", orderID), zap.Error(err))
		return
	}
	log.Info("Order pushed",
		zap.Uint64("order", orderID),
		zap.String("api_status", string(result.APIStatus)),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed))
}
