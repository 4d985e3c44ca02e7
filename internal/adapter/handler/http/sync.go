package http

import (
	"github.com/MikeRez0/sharpdata/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SyncHandler struct {
	Handler
	syncer port.StatusSyncer
}

func NewSyncHandler(syncer port.StatusSyncer, logger *zap.Logger) (*SyncHandler, error) {
	return &SyncHandler{
		Handler: *NewHandler(logger),
		syncer:  syncer,
	}, nil
}

// SyncOrders runs one status sync and replies with its report.
//
//	@Summary	Run a status sync
//	@Tags		sync
//	@Produce	json
//	@Success	200	{object}	domain.SyncReport
//	@Failure	409	{object}	errorResponse
//	@Failure	500	{object}	errorResponse
//	@Router		/sync [post]
func (sh *SyncHandler) SyncOrders(ctx *gin.Context) {
	report, err := sh.syncer.SyncOrderStatuses(ctx.Request.Context())
	if err != nil {
		sh.handleError(ctx, err)
		return
	}
	sh.handleSuccess(ctx, report)
}
