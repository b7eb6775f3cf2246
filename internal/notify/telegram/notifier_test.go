package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func testConfig(apiURL string) *Config {
	return &Config{
		Token:          "123:abc",
		ChatID:         "-100500",
		APIURL:         apiURL,
		ConnectTimeout: 200 * time.Millisecond,
		ReadTimeout:    200 * time.Millisecond,
		MaxAttempts:    3,
		StatusBackoff:  []time.Duration{20 * time.Millisecond, 40 * time.Millisecond},
		NetworkBackoff: 30 * time.Millisecond,
	}
}

func TestSend_NotConfigured_NoNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	tests := []struct {
		name   string
		token  string
		chatID string
	}{
		{"empty", "", ""},
		{"no chat", "123:abc", ""},
		{"placeholders", "YOUR_BOT_TOKEN", "YOUR_CHAT_ID"},
		{"placeholder token", "YOUR_BOT_TOKEN", "-100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(srv.URL)
			cfg.Token, cfg.ChatID = tt.token, tt.chatID
			n := New(cfg, nopLogger{})

			assert.False(t, n.Configured())
			err := n.Send(context.Background(), "hi")
			assert.ErrorIs(t, err, ErrNotConfigured)
		})
	}
	assert.Zero(t, calls.Load(), "no outbound calls")
}

func TestSend_RetriesOnStatusThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"ok":false,"error_code":502,"description":"Bad Gateway"}`))
			return
		}
		_, _ = w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	defer srv.Close()

	n := New(testConfig(srv.URL), nopLogger{})

	start := time.Now()
	err := n.Send(context.Background(), "order")
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.EqualValues(t, 3, calls.Load(), "exactly three attempts")
	assert.GreaterOrEqual(t, elapsed, 60*time.Millisecond, "backoff 20ms + 40ms")
}

func TestSend_ExhaustsAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	err := New(testConfig(srv.URL), nopLogger{}).Send(context.Background(), "order")

	require.ErrorIs(t, err, ErrDeliveryFailed)
	assert.EqualValues(t, 3, calls.Load())
	assert.NotContains(t, err.Error(), "123:abc", "token never leaks into errors")
}

func TestSend_TimeoutIsRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			select {
			case <-time.After(time.Second):
			case <-r.Context().Done():
			}
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	err := New(testConfig(srv.URL), nopLogger{}).Send(context.Background(), "order")

	require.NoError(t, err)
	assert.EqualValues(t, 2, calls.Load())
}

func TestSend_NetworkErrorIsRetried(t *testing.T) {
	// Закрытый порт: connection refused на каждой попытке.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	start := time.Now()
	err = New(testConfig("http://"+addr), nopLogger{}).Send(context.Background(), "order")

	require.ErrorIs(t, err, ErrDeliveryFailed)
	assert.Contains(t, err.Error(), "3 attempt(s)")
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond, "two network backoffs of 30ms")
}

func TestSend_FatalErrorStopsImmediately(t *testing.T) {
	cfg := testConfig("http://%zz") // невалидный URL — ошибка построения запроса
	err := New(cfg, nopLogger{}).Send(context.Background(), "order")

	require.ErrorIs(t, err, ErrDeliveryFailed)
	assert.Contains(t, err.Error(), "1 attempt(s)")
}

func TestSend_Payload(t *testing.T) {
	var got sendMessageRequest
	var path, contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		contentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	require.NoError(t, New(testConfig(srv.URL+"/"), nopLogger{}).Send(context.Background(), "<b>hi</b>"))

	assert.Equal(t, "/bot123:abc/sendMessage", path)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, sendMessageRequest{
		ChatID:                "-100500",
		Text:                  "<b>hi</b>",
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	}, got)
}

func TestSend_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(testConfig(srv.URL), nopLogger{}).Send(ctx, "order")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDeliveryFailed) || errors.Is(err, context.Canceled))
}

func TestConfig_StatusDelay(t *testing.T) {
	cfg := (&Config{StatusBackoff: []time.Duration{time.Second, 2 * time.Second}}).withDefaults()
	assert.Equal(t, time.Second, cfg.statusDelay(1))
	assert.Equal(t, 2*time.Second, cfg.statusDelay(2))
	assert.Equal(t, 2*time.Second, cfg.statusDelay(5))
	assert.Equal(t, "https://api.telegram.org", cfg.APIURL)
	assert.Equal(t, 3, cfg.MaxAttempts)
}
