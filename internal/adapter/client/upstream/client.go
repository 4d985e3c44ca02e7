package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MikeRez0/sharpdata/internal/adapter/config"
	"github.com/MikeRez0/sharpdata/internal/core/domain"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	maxBodyLog  = 1024
	maxBodySize = 1 << 20
)

// Client talks to the bundle fulfillment API.
type Client struct {
	logger        *zap.Logger
	httpClient    *http.Client
	limiter       *rate.Limiter
	baseURL       string
	apiKey        string
	pushTimeout   time.Duration
	statusTimeout time.Duration
}

func NewClient(cfg *config.Upstream, log *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("upstream base url is empty")
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RPS), 1)
	}

	return &Client{
		logger:        log,
		httpClient:    &http.Client{},
		limiter:       limiter,
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:        cfg.APIKey,
		pushTimeout:   cfg.PushTimeout,
		statusTimeout: cfg.StatusTimeout,
	}, nil
}

type placeOrderResponse struct {
	Order *struct {
		ReferenceID referenceID `json:"reference_id"`
	} `json:"order"`
}

// referenceID accepts both string and numeric ids.
type referenceID string

func (r *referenceID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = referenceID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = referenceID(n.String())
	return nil
}

type transactionResponse struct {
	Success bool `json:"success"`
	Data    *struct {
		Status *string `json:"status"`
	} `json:"data"`
}

func (c *Client) PlaceOrder(ctx context.Context, req domain.FulfillmentRequest) (*domain.FulfillmentReceipt, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("error on request encode: %w", err)
	}

	respBody, err := c.do(ctx, http.MethodPost, "/normal-orders", body, c.pushTimeout)
	if err != nil {
		return nil, err
	}

	receipt := &domain.FulfillmentReceipt{}
	var result placeOrderResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		// the order was accepted, only the reference is lost
		c.logger.Warn("Undecodable order response", zap.Error(err), zap.String("body", truncate(respBody)))
		return receipt, nil
	}
	if result.Order != nil {
		receipt.ReferenceID = string(result.Order.ReferenceID)
	}
	return receipt, nil
}

func (c *Client) TransactionStatus(ctx context.Context, orderID uint64) (string, error) {
	path := "/transactions/" + strconv.FormatUint(orderID, 10)
	respBody, err := c.do(ctx, http.MethodGet, path, nil, c.statusTimeout)
	if err != nil {
		return "", err
	}

	var result transactionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}
	if !result.Success || result.Data == nil || result.Data.Status == nil {
		return "", fmt.Errorf("%w: %s", domain.ErrMalformedResponse, truncate(respBody))
	}
	return *result.Data.Status, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, timeout time.Duration) ([]byte, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamTransport, err)
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}
	requestStr := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, requestStr, reader)
	if err != nil {
		return nil, fmt.Errorf("error on %s : %w", requestStr, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("Fire upstream request", zap.String("method", method), zap.String("url", requestStr))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// longer bodies are cut and then fail to decode
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", domain.ErrUpstreamTransport, err)
	}

	c.logger.Debug("Upstream response received",
		zap.String("url", requestStr),
		zap.Int("status", resp.StatusCode),
		zap.String("body", truncate(respBody)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Body: truncate(respBody)}
	}
	return respBody, nil
}

func truncate(b []byte) string {
	if len(b) > maxBodyLog {
		return string(b[:maxBodyLog]) + "..."
	}
	return string(b)
}
