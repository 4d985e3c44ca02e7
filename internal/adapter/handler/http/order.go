package http

import (
	"net/http"
	"strconv"

	"github.com/MikeRez0/sharpdata/internal/core/domain"
	"github.com/MikeRez0/sharpdata/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	scheduler port.PushScheduler
}

func NewOrderHandler(scheduler port.PushScheduler, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler:   *NewHandler(logger),
		scheduler: scheduler,
	}, nil
}

type pushAccepted struct {
	OrderID uint64 `json:"order_id"`
}

// PushOrder queues an order for the fulfillment push and returns at once.
//
//	@Summary	Queue an order push
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"Order id"
//	@Success	202	{object}	pushAccepted
//	@Failure	400	{object}	errorResponse
//	@Failure	503	{object}	errorResponse
//	@Router		/orders/{id}/push [post]
func (oh *OrderHandler) PushOrder(ctx *gin.Context) {
	orderID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	if err := oh.scheduler.SchedulePush(ctx.Request.Context(), orderID); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, pushAccepted{OrderID: orderID}, http.StatusAccepted)
}
