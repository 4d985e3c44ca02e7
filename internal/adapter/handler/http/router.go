package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "github.com/MikeRez0/sharpdata/docs"
	"github.com/MikeRez0/sharpdata/internal/adapter/config"
	"github.com/MikeRez0/sharpdata/internal/adapter/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type Router struct {
	*gin.Engine
	listenAddr string
	logger     *zap.Logger
}

func NewRouter(
	conf *config.HTTP,
	serviceName string,
	recorder *metrics.Recorder,
	gatherer prometheus.Gatherer,
	orderHandler *OrderHandler,
	syncHandler *SyncHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()
	router.Use(otelgin.Middleware(serviceName))
	router.Use(gin.Recovery(), requestLogger(logger), recorder.Middleware())

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.POST("/orders/:id/push", orderHandler.PushOrder)
		api.POST("/sync", syncHandler.SyncOrders)
	}

	return &Router{Engine: router, listenAddr: conf.HostString, logger: logger}, nil
}

// Serve starts the HTTP server and shuts it down gracefully once ctx is done.
func (r *Router) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              r.listenAddr,
		Handler:           r.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("HTTP server started", zap.String("addr", r.listenAddr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	r.logger.Info("HTTP server stopped")
	return nil
}
