package http

import (
	"errors"
	"net/http"

	"github.com/MikeRez0/sharpdata/internal/core/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:     http.StatusInternalServerError,
	domain.ErrDataNotFound: http.StatusNotFound,
	domain.ErrBadRequest:   http.StatusBadRequest,

	domain.ErrQueueClosed:    http.StatusServiceUnavailable,
	domain.ErrSyncInProgress: http.StatusConflict,
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

func statusFor(err error) (int, bool) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, true
		}
	}
	return http.StatusInternalServerError, false
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := statusFor(err)
	if !ok {
		h.logger.Error("error processing request", zap.String("path", ctx.FullPath()), zap.Error(err))
		err = domain.ErrInternal
	}
	ctx.AbortWithStatusJSON(statusCode, errorResponse{Error: err.Error()})
}

// handleSuccessWithStatus sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
