package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MikeRez0/sharpdata/internal/core/domain"
	"github.com/MikeRez0/sharpdata/internal/core/port"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// PusherService forwards placed orders to the fulfillment API, one request per line item.
type PusherService struct {
	repo     port.Repository
	upstream port.FulfillmentClient
	recorder port.Recorder
	validate *validator.Validate
	logger   *zap.Logger
}

func NewPusherService(repo port.Repository, upstream port.FulfillmentClient,
	recorder port.Recorder, logger *zap.Logger) (*PusherService, error) {
	return &PusherService{
		repo:     repo,
		upstream: upstream,
		recorder: recorder,
		validate: validator.New(),
		logger:   logger,
	}, nil
}

func (s *PusherService) PushOrderByID(ctx context.Context, orderID uint64) (*domain.PushResult, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Error("Read order for push", zap.Uint64("order", orderID), zap.Error(err))
		}
		return nil, err
	}

	return s.PushOrderToAPI(ctx, order)
}

// PushOrderToAPI submits every item of the order and stores the aggregated api status.
// A failing item never stops the remaining ones. An order without items keeps its api status.
func (s *PusherService) PushOrderToAPI(ctx context.Context, order *domain.Order) (*domain.PushResult, error) {
	ctx = detach(ctx)
	log := s.logger.With(zap.Uint64("order", order.ID))
	log.Info("Processing order for API push", zap.Int("items", len(order.Items)))

	result := &domain.PushResult{OrderID: order.ID}
	for _, item := range order.Items {
		ref, err := s.pushItem(ctx, log, order, item)
		if err != nil {
			result.Failed++
			continue
		}
		result.Succeeded++
		if ref != "" {
			result.ReferenceID = ref
		}
	}

	switch {
	case result.Failed > 0:
		result.APIStatus = domain.APIStatusFailed
	case result.Succeeded > 0:
		result.APIStatus = domain.APIStatusSuccess
	default:
		log.Info("Order has no items, api status left unset")
		return result, nil
	}

	err := s.repo.UpdateOrderAPIStatus(ctx, order.ID, result.APIStatus)
	if err != nil {
		log.Error("Update api status", zap.String("api_status", string(result.APIStatus)), zap.Error(err))
		return result, fmt.Errorf("update api status of order %d: %w", order.ID, err)
	}
	order.APIStatus = result.APIStatus

	log.Info("Order pushed",
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed),
		zap.String("api_status", string(result.APIStatus)))
	return result, nil
}

// pushItem returns the reference id the upstream assigned, if any.
func (s *PusherService) pushItem(ctx context.Context, log *zap.Logger,
	order *domain.Order, item *domain.OrderItem) (string, error) {
	ctx, span := tracer.Start(ctx, "PushOrderItem", trace.WithAttributes(
		attribute.Int64("order.id", int64(order.ID)),
		attribute.String("product.name", item.ProductName),
	))
	defer span.End()

	log = log.With(zap.Uint64("item", item.ID), zap.String("product", item.ProductName))

	req, err := s.buildRequest(item)
	if err != nil {
		log.Warn("Missing required order data", zap.Error(err))
		s.recorder.ItemPushed(ItemOutcomeInvalid)
		spanError(span, err)
		return "", err
	}
	span.SetAttributes(attribute.Int("network.id", int(req.NetworkID)), attribute.String("bundle.size", req.Size))

	log.Debug("Sending to API",
		zap.String("beneficiary", req.BeneficiaryNumber),
		zap.Int("network_id", int(req.NetworkID)),
		zap.String("size", req.Size))

	receipt, err := s.upstream.PlaceOrder(ctx, req)
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamRejected) {
			log.Warn("API rejected item", zap.Error(err))
			s.recorder.ItemPushed(ItemOutcomeRejected)
		} else {
			log.Error("API error", zap.Error(err))
			s.recorder.ItemPushed(ItemOutcomeError)
		}
		spanError(span, err)
		return "", err
	}

	if receipt != nil && receipt.ReferenceID != "" {
		err = s.repo.UpdateOrderReference(ctx, order.ID, receipt.ReferenceID)
		if err != nil {
			log.Error("Save reference id", zap.String("reference_id", receipt.ReferenceID), zap.Error(err))
			s.recorder.ItemPushed(ItemOutcomeError)
			spanError(span, err)
			return "", err
		}
		ref := receipt.ReferenceID
		order.ReferenceID = &ref
		log.Info("Reference ID saved", zap.String("reference_id", ref))
		s.recorder.ItemPushed(ItemOutcomeSuccess)
		return ref, nil
	}

	s.recorder.ItemPushed(ItemOutcomeSuccess)
	return "", nil
}

func (s *PusherService) buildRequest(item *domain.OrderItem) (domain.FulfillmentRequest, error) {
	if item.BeneficiaryNumber == "" {
		return domain.FulfillmentRequest{}, domain.ErrMissingBeneficiary
	}
	networkID, ok := domain.NetworkIDFromProduct(item.ProductName)
	if !ok {
		return domain.FulfillmentRequest{}, domain.ErrUnsupportedNetwork
	}
	size, ok := item.Variant.Size()
	if !ok {
		return domain.FulfillmentRequest{}, domain.ErrMissingSize
	}

	req := domain.FulfillmentRequest{
		BeneficiaryNumber: domain.FormatPhone(item.BeneficiaryNumber),
		NetworkID:         networkID,
		Size:              size,
	}
	if err := s.validate.Struct(req); err != nil {
		return domain.FulfillmentRequest{}, fmt.Errorf("%w: %w", domain.ErrInvalidFulfillment, err)
	}
	return req, nil
}
