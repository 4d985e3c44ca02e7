package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MikeRez0/sharpdata/internal/adapter/config"
	"github.com/MikeRez0/sharpdata/internal/core/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	sendPath    = "/open/sms/send"
	maxBodySize = 1 << 20
)

// MoolreClient sends SMS through the Moolre open API.
type MoolreClient struct {
	logger     *zap.Logger
	httpClient *http.Client
	baseURL    string
	apiKey     string
	senderID   string
}

func NewMoolreClient(cfg *config.SMS, log *zap.Logger) (*MoolreClient, error) {
	if cfg.APIKey == "" {
		return nil, domain.ErrNotifierUnavailable
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &MoolreClient{
		logger:     log,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		senderID:   cfg.SenderID,
	}, nil
}

type sendRequest struct {
	Type     int       `json:"type"`
	SenderID string    `json:"senderid"`
	Messages []message `json:"messages"`
}

type message struct {
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
	Ref       string `json:"ref"`
}

type sendResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SendSms reports true when the gateway accepted the message.
func (c *MoolreClient) SendSms(ctx context.Context, phone string, text string) (bool, error) {
	ref := uuid.NewString()
	body, err := json.Marshal(sendRequest{
		Type:     1,
		SenderID: c.senderID,
		Messages: []message{{Recipient: phone, Message: text, Ref: ref}},
	})
	if err != nil {
		return false, fmt.Errorf("error on request encode: %w", err)
	}

	requestStr := c.baseURL + sendPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestStr, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("error on %s : %w", requestStr, err)
	}
	req.Header.Set("X-API-VASKEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %w", domain.ErrUpstreamTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return false, fmt.Errorf("%w: read body: %w", domain.ErrUpstreamTransport, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, &domain.UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var result sendResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return false, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}

	c.logger.Debug("SMS gateway replied",
		zap.String("ref", ref),
		zap.Int("status", result.Status),
		zap.String("code", result.Code),
		zap.String("message", result.Message))

	return result.Status == 1, nil
}

// LogNotifier only logs messages. It stands in when no SMS gateway is configured.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) SendSms(_ context.Context, phone string, text string) (bool, error) {
	n.logger.Info("SMS gateway not configured, message dropped",
		zap.String("phone", phone), zap.String("message", text))
	return false, nil
}
