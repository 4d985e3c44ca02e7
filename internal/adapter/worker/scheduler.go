package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MikeRez0/sharpdata/internal/core/domain"
	"github.com/MikeRez0/sharpdata/internal/core/port"
	"go.uber.org/zap"
)

const syncLeaseKey = "sharpdata:sync:lease"

// SyncScheduler runs status syncs on a ticker and on demand.
// A run only starts when the shared lease is free.
type SyncScheduler struct {
	syncer   port.StatusSyncer
	lease    port.Lease
	interval time.Duration
	leaseTTL time.Duration
	logger   *zap.Logger
}

func NewSyncScheduler(syncer port.StatusSyncer, lease port.Lease, interval, leaseTTL time.Duration,
	log *zap.Logger) *SyncScheduler {
	return &SyncScheduler{
		syncer:   syncer,
		lease:    lease,
		interval: interval,
		leaseTTL: leaseTTL,
		logger:   log,
	}
}

func (s *SyncScheduler) SyncOrderStatuses(ctx context.Context) (*domain.SyncReport, error) {
	release, ok, err := s.lease.Acquire(ctx, syncLeaseKey, s.leaseTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire sync lease: %w", err)
	}
	if !ok {
		return nil, domain.ErrSyncInProgress
	}
	defer release(context.WithoutCancel(ctx))

	return s.syncer.SyncOrderStatuses(ctx)
}

// Run syncs every interval until ctx is done. A non-positive interval disables the ticker.
func (s *SyncScheduler) Run(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info("Periodic sync disabled")
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("Sync scheduler stopped")
			return nil
		case <-ticker.C:
			_, err := s.SyncOrderStatuses(ctx)
			switch {
			case errors.Is(err, domain.ErrSyncInProgress):
				s.logger.Debug("Sync skipped, another run holds the lease")
			case err != nil:
				s.logger.Error("Scheduled sync", zap.Error(err))
			}
		}
	}
}
