//go:generate swag init -d ../../ -g cmd/sharpdata/main.go -o ../../docs --parseInternal

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MikeRez0/sharpdata/internal/adapter/client/sms"
	"github.com/MikeRez0/sharpdata/internal/adapter/client/upstream"
	"github.com/MikeRez0/sharpdata/internal/adapter/config"
	"github.com/MikeRez0/sharpdata/internal/adapter/events"
	"github.com/MikeRez0/sharpdata/internal/adapter/handler/http"
	"github.com/MikeRez0/sharpdata/internal/adapter/lease"
	"github.com/MikeRez0/sharpdata/internal/adapter/logger"
	"github.com/MikeRez0/sharpdata/internal/adapter/metrics"
	"github.com/MikeRez0/sharpdata/internal/adapter/storage"
	"github.com/MikeRez0/sharpdata/internal/adapter/storage/repository"
	"github.com/MikeRez0/sharpdata/internal/adapter/tracing"
	"github.com/MikeRez0/sharpdata/internal/adapter/worker"
	"github.com/MikeRez0/sharpdata/internal/core/domain"
	"github.com/MikeRez0/sharpdata/internal/core/port"
	"github.com/MikeRez0/sharpdata/internal/core/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//	@title			Sharpdata API
//	@version		1.0
//	@description	Pushes data bundle orders to the fulfillment API and syncs their statuses.
//	@BasePath		/api
func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %s\n", err)
		os.Exit(2)
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating log: %s\n", err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	if err := run(conf, log); err != nil {
		log.Error("service stopped with error", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(conf *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.InitTracing(conf.Tracing, conf.App.Name, log.Named("Tracing"))
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("tracing shutdown error", zap.Error(err))
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(reg)

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	defer db.Close()
	if err = db.RunMigrations(); err != nil {
		return fmt.Errorf("database migration error: %w", err)
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		return fmt.Errorf("order repo creating error: %w", err)
	}

	upstreamClient, err := upstream.NewClient(conf.Upstream, log.Named("Upstream"))
	if err != nil {
		return fmt.Errorf("upstream client creating error: %w", err)
	}

	var notifier port.Notifier
	moolre, err := sms.NewMoolreClient(conf.SMS, log.Named("SMS"))
	switch {
	case errors.Is(err, domain.ErrNotifierUnavailable):
		log.Warn("SMS_API_KEY is not set, completion notifications are only logged")
		notifier = sms.NewLogNotifier(log.Named("SMS"))
	case err != nil:
		return fmt.Errorf("sms client creating error: %w", err)
	default:
		notifier = moolre
	}

	var syncLease port.Lease = lease.NewLocalLease()
	if conf.Redis.Addr != "" {
		rdb, err := lease.NewRedisClient(ctx, conf.Redis)
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()
		syncLease = lease.NewRedisLease(rdb, log.Named("Lease"))
	}

	pusher, err := service.NewPusherService(repo, upstreamClient, recorder, log.Named("Pusher"))
	if err != nil {
		return fmt.Errorf("pusher service creating error: %w", err)
	}
	syncer, err := service.NewSyncService(repo, upstreamClient, notifier, recorder, log.Named("Sync"))
	if err != nil {
		return fmt.Errorf("sync service creating error: %w", err)
	}

	queue := worker.NewPushQueue(conf.Push.QueueSize, log.Named("PushQueue"))
	scheduler := worker.NewSyncScheduler(syncer, syncLease, conf.Sync.Interval, conf.Sync.LeaseTTL,
		log.Named("SyncScheduler"))

	orderHandler, err := http.NewOrderHandler(queue, log.Named("Order handler"))
	if err != nil {
		return fmt.Errorf("order handler creating error: %w", err)
	}
	syncHandler, err := http.NewSyncHandler(scheduler, log.Named("Sync handler"))
	if err != nil {
		return fmt.Errorf("sync handler creating error: %w", err)
	}

	r, err := http.NewRouter(conf.HTTP, conf.App.Name, recorder, reg, orderHandler, syncHandler, log.Named("Router"))
	if err != nil {
		return fmt.Errorf("router creating error: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return queue.Run(gctx, pusher, conf.Push.Workers) })
	g.Go(func() error { return scheduler.Run(gctx) })
	g.Go(func() error { return r.Serve(gctx) })
	g.Go(func() error {
		n, err := worker.RecallOrders(gctx, repo, queue)
		if err != nil {
			log.Warn("recall of unpushed orders stopped", zap.Int("recalled", n), zap.Error(err))
			return nil
		}
		log.Info("unpushed orders recalled", zap.Int("recalled", n))
		return nil
	})

	if len(conf.Kafka.Brokers) > 0 {
		consumer, err := events.InitConsumer(conf.Kafka, log.Named("Kafka"))
		if err != nil {
			stop()
			_ = g.Wait()
			return err
		}
		defer func() { _ = consumer.Close() }()

		orderEvents := events.NewOrderEventConsumer(consumer, conf.Kafka.Topic, queue, log.Named("OrderEvents"))
		g.Go(func() error { return orderEvents.Run(gctx) })
	}

	log.Info("service started",
		zap.String("addr", conf.HTTP.HostString),
		zap.Int("push_workers", conf.Push.Workers),
		zap.Duration("sync_interval", conf.Sync.Interval))

	return g.Wait()
}
