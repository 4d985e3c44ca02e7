package service

import (
	"context"
	"fmt"

	"github.com/MikeRez0/sharpdata/internal/core/domain"
	"github.com/MikeRez0/sharpdata/internal/core/port"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var syncedStatuses = []domain.OrderStatus{domain.OrderStatusPending, domain.OrderStatusProcessing}

// SyncService reconciles local order statuses with the fulfillment API.
type SyncService struct {
	repo     port.Repository
	upstream port.FulfillmentClient
	notifier port.Notifier
	recorder port.Recorder
	logger   *zap.Logger
}

func NewSyncService(repo port.Repository, upstream port.FulfillmentClient, notifier port.Notifier,
	recorder port.Recorder, logger *zap.Logger) (*SyncService, error) {
	return &SyncService{
		repo:     repo,
		upstream: upstream,
		notifier: notifier,
		recorder: recorder,
		logger:   logger,
	}, nil
}

// SyncOrderStatuses polls every pending or processing order once.
// Orders are independent: a failure is logged and counted, never returned.
// The only error is a failure to list the orders.
func (s *SyncService) SyncOrderStatuses(ctx context.Context) (*domain.SyncReport, error) {
	report := &domain.SyncReport{RunID: uuid.NewString()}
	log := s.logger.With(zap.String("run", report.RunID))

	orders, err := s.repo.ListOrdersByStatus(ctx, syncedStatuses)
	if err != nil {
		log.Error("List orders for sync", zap.Error(err))
		return report, fmt.Errorf("list orders for sync: %w", err)
	}
	report.Scanned = len(orders)
	log.Debug("Sync started", zap.Int("orders", len(orders)))

	ctx = detach(ctx)
	for _, order := range orders {
		outcome, notified := s.syncOrder(ctx, log, order)
		report.Add(outcome)
		if notified {
			report.Notified++
		}
		s.recorder.OrderSynced(outcome)
	}

	log.Info("Sync finished",
		zap.Int("scanned", report.Scanned),
		zap.Int("updated", report.Updated),
		zap.Int("failed", report.Failed),
		zap.Int("notified", report.Notified))
	return report, nil
}

func (s *SyncService) syncOrder(ctx context.Context, log *zap.Logger, order *domain.Order) (domain.SyncOutcome, bool) {
	ctx, span := tracer.Start(ctx, "SyncOrderStatus", trace.WithAttributes(
		attribute.Int64("order.id", int64(order.ID)),
		attribute.String("order.status", string(order.Status)),
	))
	defer span.End()

	log = log.With(zap.Uint64("order", order.ID), zap.String("current_status", string(order.Status)))

	external, err := s.upstream.TransactionStatus(ctx, order.ID)
	if err != nil {
		log.Warn("Fetch transaction status", zap.Error(err))
		spanError(span, err)
		return domain.SyncOutcomeFailed, false
	}

	newStatus, ok := domain.MapUpstreamStatus(external)
	if !ok {
		log.Info("Unknown upstream status", zap.String("external_status", external))
		return domain.SyncOutcomeUnknown, false
	}
	span.SetAttributes(attribute.String("order.new_status", string(newStatus)))

	if !order.Status.CanAdvanceTo(newStatus) {
		log.Debug("Order status unchanged",
			zap.String("external_status", external),
			zap.String("mapped_status", string(newStatus)))
		return domain.SyncOutcomeUnchanged, false
	}

	updated, err := s.repo.UpdateOrderStatus(ctx, order.ID, order.Status, newStatus)
	if err != nil {
		log.Error("Update order status", zap.String("new_status", string(newStatus)), zap.Error(err))
		spanError(span, err)
		return domain.SyncOutcomeFailed, false
	}
	if !updated {
		log.Info("Order status changed concurrently, skipping", zap.String("new_status", string(newStatus)))
		return domain.SyncOutcomeRaced, false
	}

	oldStatus := order.Status
	order.Status = newStatus
	log.Info("Order status updated",
		zap.String("old_status", string(oldStatus)),
		zap.String("new_status", string(newStatus)))

	if newStatus != domain.OrderStatusCompleted {
		return domain.SyncOutcomeUpdated, false
	}
	return domain.SyncOutcomeUpdated, s.notifyCompleted(ctx, log, order)
}

// notifyCompleted sends the completion SMS. Its failure does not touch the stored status.
func (s *SyncService) notifyCompleted(ctx context.Context, log *zap.Logger, order *domain.Order) bool {
	if !order.User.HasPhone() {
		log.Debug("Order owner has no phone, skipping notification")
		return false
	}
	phone := *order.User.Phone

	sent, err := s.notifier.SendSms(ctx, phone, domain.CompletionMessage(order))
	if err != nil {
		log.Error("Send SMS notification", zap.String("phone", phone), zap.Error(err))
		s.recorder.NotificationSent("error")
		return false
	}
	if !sent {
		log.Warn("SMS notification not accepted", zap.String("phone", phone))
		s.recorder.NotificationSent("rejected")
		return false
	}

	log.Info("SMS notification sent for completed order", zap.String("phone", phone))
	s.recorder.NotificationSent("sent")
	return true
}
