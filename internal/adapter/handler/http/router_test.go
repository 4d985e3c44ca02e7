package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MikeRez0/sharpdata/internal/adapter/config"
	"github.com/MikeRez0/sharpdata/internal/adapter/metrics"
	"github.com/MikeRez0/sharpdata/internal/core/domain"
	"github.com/MikeRez0/sharpdata/internal/core/port/mock"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestRouter(t *testing.T) (*Router, *mock.MockPushScheduler, *mock.MockStatusSyncer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockCtrl := gomock.NewController(t)
	t.Cleanup(mockCtrl.Finish)

	scheduler := mock.NewMockPushScheduler(mockCtrl)
	syncer := mock.NewMockStatusSyncer(mockCtrl)
	logger := zaptest.NewLogger(t)

	oh, err := NewOrderHandler(scheduler, logger)
	require.NoError(t, err)
	sh, err := NewSyncHandler(syncer, logger)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	r, err := NewRouter(&config.HTTP{HostString: "localhost:0"}, "sharpdata",
		metrics.NewRecorder(reg), reg, oh, sh, logger)
	require.NoError(t, err)
	return r, scheduler, syncer
}

func TestRouter_PushOrder(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		mock      func(s *mock.MockPushScheduler)
		expStatus int
		expBody   string
	}{
		{
			name: "accepted",
			path: "/api/orders/15/push",
			mock: func(s *mock.MockPushScheduler) {
				s.EXPECT().SchedulePush(gomock.Any(), uint64(15)).Return(nil)
			},
			expStatus: http.StatusAccepted,
			expBody:   `{"order_id":15}`,
		},
		{name: "not a number", path: "/api/orders/abc/push", expStatus: http.StatusBadRequest},
		{name: "zero id", path: "/api/orders/0/push", expStatus: http.StatusBadRequest},
		{
			name: "queue closed",
			path: "/api/orders/16/push",
			mock: func(s *mock.MockPushScheduler) {
				s.EXPECT().SchedulePush(gomock.Any(), uint64(16)).Return(domain.ErrQueueClosed)
			},
			expStatus: http.StatusServiceUnavailable,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, scheduler, _ := newTestRouter(t)
			if test.mock != nil {
				test.mock(scheduler)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, test.path, nil))

			assert.Equal(t, test.expStatus, w.Code)
			if test.expBody != "" {
				assert.JSONEq(t, test.expBody, w.Body.String())
			}
		})
	}
}

func TestRouter_Sync(t *testing.T) {
	t.Run("report", func(t *testing.T) {
		r, _, syncer := newTestRouter(t)
		syncer.EXPECT().SyncOrderStatuses(gomock.Any()).
			Return(&domain.SyncReport{RunID: "run-1", Scanned: 3, Updated: 1, Unchanged: 2}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/sync", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var report domain.SyncReport
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		assert.Equal(t, domain.SyncReport{RunID: "run-1", Scanned: 3, Updated: 1, Unchanged: 2}, report)
	})

	t.Run("already running", func(t *testing.T) {
		r, _, syncer := newTestRouter(t)
		syncer.EXPECT().SyncOrderStatuses(gomock.Any()).Return(nil, domain.ErrSyncInProgress)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/sync", nil))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("internal error is hidden", func(t *testing.T) {
		r, _, syncer := newTestRouter(t)
		syncer.EXPECT().SyncOrderStatuses(gomock.Any()).Return(nil, errors.New("pq: connection refused"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/sync", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `http_requests_total{endpoint="/health",method="GET",status="200"} 1`))
}

func TestRouter_Docs(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/docs/index.html", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/docs/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "/api", doc.BasePath)
	assert.Contains(t, doc.Paths["/orders/{id}/push"], "post")
	assert.Contains(t, doc.Paths["/sync"], "post")
}
