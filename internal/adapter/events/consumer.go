package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/MikeRez0/sharpdata/internal/adapter/config"
	"github.com/MikeRez0/sharpdata/internal/core/port"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const EventOrderCreated = "order_created"

var errBadEvent = errors.New("bad order event")

var tracer = otel.Tracer("github.com/MikeRez0/sharpdata/internal/adapter/events")

type orderEvent struct {
	EventType string  `json:"event_type"`
	OrderID   *uint64 `json:"order_id"`
}

func InitConsumer(cfg *config.Kafka, log *zap.Logger) (sarama.Consumer, error) {
	conf := sarama.NewConfig()
	conf.Consumer.Return.Errors = true
	conf.Consumer.Retry.Backoff = 1 * time.Second

	consumer, err := sarama.NewConsumer(cfg.Brokers, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer: %w", err)
	}

	log.Info("Kafka consumer initialized", zap.Strings("brokers", cfg.Brokers))
	return consumer, nil
}

// OrderEventConsumer queues a push for every order_created event of the topic.
type OrderEventConsumer struct {
	consumer  sarama.Consumer
	topic     string
	scheduler port.PushScheduler
	logger    *zap.Logger
}

func NewOrderEventConsumer(consumer sarama.Consumer, topic string, scheduler port.PushScheduler,
	log *zap.Logger) *OrderEventConsumer {
	return &OrderEventConsumer{
		consumer:  consumer,
		topic:     topic,
		scheduler: scheduler,
		logger:    log,
	}
}

// Run consumes every partition of the topic from the newest offset until ctx is done.
func (c *OrderEventConsumer) Run(ctx context.Context) error {
	partitions, err := c.consumer.Partitions(c.topic)
	if err != nil {
		return fmt.Errorf("failed to list partitions of %s: %w", c.topic, err)
	}

	pcs := make([]sarama.PartitionConsumer, 0, len(partitions))
	for _, p := range partitions {
		pc, err := c.consumer.ConsumePartition(c.topic, p, sarama.OffsetNewest)
		if err != nil {
			for _, started := range pcs {
				_ = started.Close()
			}
			return fmt.Errorf("failed to consume partition %d: %w", p, err)
		}
		pcs = append(pcs, pc)
	}

	c.logger.Info("Kafka consumer started", zap.String("topic", c.topic), zap.Int("partitions", len(pcs)))

	wg := sync.WaitGroup{}
	for _, pc := range pcs {
		wg.Add(1)
		go func(pc sarama.PartitionConsumer) {
			defer wg.Done()
			c.consume(ctx, pc)
		}(pc)
	}
	wg.Wait()

	for _, pc := range pcs {
		if err := pc.Close(); err != nil {
			c.logger.Warn("Close partition consumer", zap.Error(err))
		}
	}
	return nil
}

func (c *OrderEventConsumer) consume(ctx context.Context, pc sarama.PartitionConsumer) {
	for {
		select {
		case <-ctx.Done():
			return
		case message, ok := <-pc.Messages():
			if !ok {
				return
			}
			if err := c.handleMessage(ctx, message); err != nil {
				c.logger.Warn("Skip order event",
					zap.Int32("partition", message.Partition),
					zap.Int64("offset", message.Offset),
					zap.Error(err))
			}
		case err, ok := <-pc.Errors():
			if !ok {
				return
			}
			c.logger.Error("Kafka consumer error", zap.Error(err))
		}
	}
}

func (c *OrderEventConsumer) handleMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	ctx = otel.GetTextMapPropagator().Extract(ctx, headerCarrier(message.Headers))
	ctx, span := tracer.Start(ctx, "ConsumeOrderEvent")
	defer span.End()

	var event orderEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		span.RecordError(err)
		return fmt.Errorf("%w: %w", errBadEvent, err)
	}
	span.SetAttributes(attribute.String("event.type", event.EventType))

	if event.EventType != EventOrderCreated {
		c.logger.Debug("Ignore event", zap.String("event_type", event.EventType))
		return nil
	}
	if event.OrderID == nil {
		return fmt.Errorf("%w: order_id is missing", errBadEvent)
	}
	span.SetAttributes(attribute.Int64("order.id", int64(*event.OrderID)))

	if err := c.scheduler.SchedulePush(ctx, *event.OrderID); err != nil {
		span.RecordError(err)
		return fmt.Errorf("schedule push of order %d: %w", *event.OrderID, err)
	}
	return nil
}

// headerCarrier reads trace context from Kafka record headers.
type headerCarrier []*sarama.RecordHeader

func (c headerCarrier) Get(key string) string {
	for _, h := range c {
		if h != nil && string(h.Key) == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c headerCarrier) Set(string, string) {}

func (c headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for _, h := range c {
		if h != nil {
			keys = append(keys, string(h.Key))
		}
	}
	return keys
}
