package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MikeRez0/sharpdata/internal/core/domain"
	"github.com/MikeRez0/sharpdata/internal/core/port/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestPushQueue_DeliversOrders(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	pusher := mock.NewMockOrderPusher(mockCtrl)

	var mu sync.Mutex
	pushed := make(map[uint64]int)
	wg := sync.WaitGroup{}
	wg.Add(3)
	pusher.EXPECT().PushOrderByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id uint64) (*domain.PushResult, error) {
			defer wg.Done()
			mu.Lock()
			pushed[id]++
			mu.Unlock()
			if id == 3 {
				return nil, domain.ErrDataNotFound
			}
			return &domain.PushResult{OrderID: id, APIStatus: domain.APIStatusSuccess}, nil
		}).Times(3)

	q := NewPushQueue(10, zaptest.NewLogger(t))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		_ = q.Run(ctx, pusher, 2)
		close(done)
	}()

	for _, id := range []uint64{1, 2, 3} {
		require.NoError(t, q.SchedulePush(context.Background(), id))
	}
	wg.Wait()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("queue did not stop")
	}

	assert.Equal(t, map[uint64]int{1: 1, 2: 1, 3: 1}, pushed)
	assert.ErrorIs(t, q.SchedulePush(context.Background(), 4), domain.ErrQueueClosed)
}

func TestPushQueue_SkipsQueuedDuplicates(t *testing.T) {
	q := NewPushQueue(5, zaptest.NewLogger(t))

	require.NoError(t, q.SchedulePush(context.Background(), 7))
	require.NoError(t, q.SchedulePush(context.Background(), 7))
	require.NoError(t, q.SchedulePush(context.Background(), 8))

	assert.Len(t, q.orderQueue, 2)
}

func TestPushQueue_RepushesWhenScheduledDuringPush(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	pusher := mock.NewMockOrderPusher(mockCtrl)

	started := make(chan struct{}, 2)
	release := make(chan struct{})
	wg := sync.WaitGroup{}
	wg.Add(2)
	pusher.EXPECT().PushOrderByID(gomock.Any(), uint64(5)).DoAndReturn(
		func(_ context.Context, id uint64) (*domain.PushResult, error) {
			defer wg.Done()
			started <- struct{}{}
			<-release
			return &domain.PushResult{OrderID: id, APIStatus: domain.APIStatusSuccess}, nil
		}).Times(2)

	q := NewPushQueue(5, zaptest.NewLogger(t))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		_ = q.Run(ctx, pusher, 1)
		close(done)
	}()

	require.NoError(t, q.SchedulePush(context.Background(), 5))
	<-started

	// both land while the first push is running and collapse into one more push
	require.NoError(t, q.SchedulePush(context.Background(), 5))
	require.NoError(t, q.SchedulePush(context.Background(), 5))
	close(release)

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("order was not pushed again")
	}
	wg.Wait()

	require.Eventually(t, func() bool {
		q.mu.Lock()
		defer q.mu.Unlock()
		return len(q.pending) == 0
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("queue did not stop")
	}
}

func TestPushQueue_FullQueueHonorsContext(t *testing.T) {
	q := NewPushQueue(1, zaptest.NewLogger(t))
	require.NoError(t, q.SchedulePush(context.Background(), 1))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, q.SchedulePush(ctx, 2), context.DeadlineExceeded)

	// a failed schedule does not block later attempts of the same id
	<-q.orderQueue
	assert.NoError(t, q.SchedulePush(context.Background(), 2))
}

func TestRecallOrders(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockRepository(mockCtrl)
	scheduler := mock.NewMockPushScheduler(mockCtrl)

	repo.EXPECT().ListOrdersByStatus(gomock.Any(), []domain.OrderStatus{domain.OrderStatusPending}).
		Return([]*domain.Order{
			{ID: 1, Status: domain.OrderStatusPending},
			{ID: 2, Status: domain.OrderStatusPending, APIStatus: domain.APIStatusFailed},
			{ID: 3, Status: domain.OrderStatusPending},
		}, nil)
	scheduler.EXPECT().SchedulePush(gomock.Any(), uint64(1)).Return(nil)
	scheduler.EXPECT().SchedulePush(gomock.Any(), uint64(3)).Return(nil)

	n, err := RecallOrders(context.Background(), repo, scheduler)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	repo.EXPECT().ListOrdersByStatus(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	_, err = RecallOrders(context.Background(), repo, scheduler)
	assert.Error(t, err)
}

func TestSyncScheduler_SyncOrderStatuses(t *testing.T) {
	t.Run("lease acquired", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		syncer := mock.NewMockStatusSyncer(mockCtrl)
		lease := mock.NewMockLease(mockCtrl)

		released := false
		lease.EXPECT().Acquire(gomock.Any(), syncLeaseKey, time.Minute).
			Return(func(context.Context) { released = true }, true, nil)
		syncer.EXPECT().SyncOrderStatuses(gomock.Any()).Return(&domain.SyncReport{RunID: "r", Scanned: 2}, nil)

		s := NewSyncScheduler(syncer, lease, time.Hour, time.Minute, zaptest.NewLogger(t))
		report, err := s.SyncOrderStatuses(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, report.Scanned)
		assert.True(t, released)
	})

	t.Run("lease busy", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		syncer := mock.NewMockStatusSyncer(mockCtrl)
		lease := mock.NewMockLease(mockCtrl)
		lease.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, false, nil)

		s := NewSyncScheduler(syncer, lease, time.Hour, time.Minute, zaptest.NewLogger(t))
		_, err := s.SyncOrderStatuses(context.Background())
		assert.ErrorIs(t, err, domain.ErrSyncInProgress)
	})

	t.Run("lease error", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		syncer := mock.NewMockStatusSyncer(mockCtrl)
		lease := mock.NewMockLease(mockCtrl)
		lease.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, false, errors.New("redis down"))

		s := NewSyncScheduler(syncer, lease, time.Hour, time.Minute, zaptest.NewLogger(t))
		_, err := s.SyncOrderStatuses(context.Background())
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrSyncInProgress)
	})
}

func TestSyncScheduler_Run(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	syncer := mock.NewMockStatusSyncer(mockCtrl)
	lease := mock.NewMockLease(mockCtrl)

	ctx, cancel := context.WithCancel(context.Background())
	lease.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(func(context.Context) {}, true, nil).MinTimes(1)
	syncer.EXPECT().SyncOrderStatuses(gomock.Any()).DoAndReturn(
		func(context.Context) (*domain.SyncReport, error) {
			cancel()
			return &domain.SyncReport{}, nil
		}).MinTimes(1)

	s := NewSyncScheduler(syncer, lease, 10*time.Millisecond, time.Minute, zaptest.NewLogger(t))

	done := make(chan error)
	go func() { done <- s.Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
