package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/Gunvolt24/tg_store/internal/ports"
	"github.com/Gunvolt24/tg_store/pkg/metrics"
	"github.com/sethvargo/go-retry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var (
	// ErrNotConfigured — токен или chat_id не заданы; сетевых вызовов не было.
	ErrNotConfigured = errors.New("telegram notifier is not configured")
	// ErrDeliveryFailed — все попытки исчерпаны или получена неповторяемая ошибка.
	ErrDeliveryFailed = errors.New("telegram delivery failed")
)

var _ ports.Notifier = (*Notifier)(nil)

// sendMessageRequest — тело запроса sendMessage.
type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

// apiResponse — общий конверт ответа Bot API.
type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

// Notifier — клиент sendMessage с ограниченным числом попыток.
type Notifier struct {
	cfg    Config
	client *http.Client
	log    ports.Logger
}

// New — клиент с таймаутами подключения и чтения из конфигурации.
func New(cfg *Config, log ports.Logger) *Notifier {
	c := cfg.withDefaults()

	dialer := &net.Dialer{Timeout: c.ConnectTimeout, KeepAlive: 30 * time.Second}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   c.ConnectTimeout,
		ResponseHeaderTimeout: c.ReadTimeout,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
	}

	return &Notifier{
		cfg: c,
		client: &http.Client{
			Transport: otelhttp.NewTransport(transport),
			Timeout:   c.ConnectTimeout + c.ReadTimeout,
		},
		log: log,
	}
}

func (n *Notifier) Configured() bool { return n.cfg.Configured() }

// Send — отправляет text в чат. Повторяет при не-200 ответе, таймауте и сетевой ошибке,
// прочие ошибки прерывают отправку сразу.
func (n *Notifier) Send(ctx context.Context, text string) error {
	if !n.Configured() {
		metrics.NotifierDeliveries.WithLabelValues("not_configured").Inc()
		return ErrNotConfigured
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID:                n.cfg.ChatID,
		Text:                  text,
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	})
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrDeliveryFailed, err)
	}

	var (
		attempt int
		next    time.Duration
	)
	backoff := retry.WithMaxRetries(uint64(n.cfg.MaxAttempts-1), retry.BackoffFunc(func() (time.Duration, bool) {
		return next, false
	}))

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		kind, err := n.attempt(ctx, body)
		metrics.NotifierAttempts.WithLabelValues(kind.String()).Inc()

		switch kind {
		case resultOK:
			return nil
		case resultStatus, resultTimeout:
			next = n.cfg.statusDelay(attempt)
		case resultNetwork:
			next = n.cfg.NetworkBackoff
		default:
			return err
		}
		if attempt < n.cfg.MaxAttempts {
			n.log.Warnf(ctx, "telegram attempt %d/%d failed: %v (retry in %s)", attempt, n.cfg.MaxAttempts, err, next)
		}
		return retry.RetryableError(err)
	})
	if err != nil {
		metrics.NotifierDeliveries.WithLabelValues("failed").Inc()
		return fmt.Errorf("%w after %d attempt(s): %v", ErrDeliveryFailed, attempt, err)
	}

	metrics.NotifierDeliveries.WithLabelValues("delivered").Inc()
	return nil
}

func (n *Notifier) endpoint() string {
	return n.cfg.APIURL + "/bot" + n.cfg.Token + "/sendMessage"
}

// attempt — одна попытка sendMessage.
func (n *Notifier) attempt(ctx context.Context, body []byte) (attemptResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint(), bytes.NewReader(body))
	if err != nil {
		return resultFatal, stripURL(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return classify(ctx, err), stripURL(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resultOK, nil
	}

	var api apiResponse
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4<<10)).Decode(&api)
	if api.Description != "" {
		return resultStatus, fmt.Errorf("status %d: %s", resp.StatusCode, api.Description)
	}
	return resultStatus, fmt.Errorf("status %d", resp.StatusCode)
}
