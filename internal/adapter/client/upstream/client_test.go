package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MikeRez0/sharpdata/internal/adapter/config"
	"github.com/MikeRez0/sharpdata/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(&config.Upstream{
		BaseURL:       srv.URL + "/",
		APIKey:        "key",
		PushTimeout:   time.Second,
		StatusTimeout: time.Second,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	return c
}

func TestClient_PlaceOrder(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expRef   string
		expError error
	}{
		{name: "string reference", status: http.StatusCreated, body: `{"order":{"reference_id":"REF-1"}}`, expRef: "REF-1"},
		{name: "numeric reference", status: http.StatusOK, body: `{"order":{"reference_id":12345}}`, expRef: "12345"},
		{name: "no reference", status: http.StatusOK, body: `{"message":"queued"}`},
		{name: "undecodable success body", status: http.StatusOK, body: `accepted`},
		{name: "rejected", status: http.StatusUnprocessableEntity, body: `{"message":"bad size"}`,
			expError: domain.ErrUpstreamRejected},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/normal-orders", r.URL.Path)
				assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.Equal(t, "application/json", r.Header.Get("Accept"))

				var req map[string]any
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, map[string]any{
					"beneficiary_number": "0241234567",
					"network_id":         float64(9),
					"size":               "10",
				}, req)

				w.WriteHeader(test.status)
				_, _ = w.Write([]byte(test.body))
			})

			receipt, err := c.PlaceOrder(context.Background(), domain.FulfillmentRequest{
				BeneficiaryNumber: "0241234567", NetworkID: domain.NetworkMTN, Size: "10",
			})
			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				var upErr *domain.UpstreamError
				require.ErrorAs(t, err, &upErr)
				assert.Equal(t, test.status, upErr.StatusCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expRef, receipt.ReferenceID)
		})
	}
}

func TestClient_TransactionStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		expStatus string
		expError  error
	}{
		{name: "ok", status: http.StatusOK, body: `{"success":true,"data":{"status":"Delivered"}}`, expStatus: "Delivered"},
		{name: "success false", status: http.StatusOK, body: `{"success":false,"data":{"status":"failed"}}`,
			expError: domain.ErrMalformedResponse},
		{name: "missing status", status: http.StatusOK, body: `{"success":true,"data":{}}`,
			expError: domain.ErrMalformedResponse},
		{name: "not json", status: http.StatusOK, body: `<html>`, expError: domain.ErrMalformedResponse},
		{name: "not found", status: http.StatusNotFound, body: `{}`, expError: domain.ErrUpstreamRejected},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/transactions/42", r.URL.Path)
				w.WriteHeader(test.status)
				_, _ = w.Write([]byte(test.body))
			})

			status, err := c.TransactionStatus(context.Background(), 42)
			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expStatus, status)
		})
	}
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(&config.Upstream{
		BaseURL:       srv.URL,
		StatusTimeout: 50 * time.Millisecond,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)

	_, err = c.TransactionStatus(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrUpstreamTransport)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_OversizedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"status":"`))
		_, _ = w.Write([]byte(strings.Repeat("a", 2*maxBodySize)))
		_, _ = w.Write([]byte(`"}}`))
	})

	_, err := c.TransactionStatus(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestNewClient_EmptyURL(t *testing.T) {
	_, err := NewClient(&config.Upstream{}, zaptest.NewLogger(t))
	assert.Error(t, err)
}
