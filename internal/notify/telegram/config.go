package telegram

import (
	"strings"
	"time"
)

// Значения-заглушки из шаблона окружения: считаются «не настроено».
const (
	placeholderToken  = "YOUR_BOT_TOKEN"
	placeholderChatID = "YOUR_CHAT_ID"
)

// Config — параметры отправки сообщений через Bot API.
type Config struct {
	Token  string
	ChatID string
	APIURL string // по умолчанию https://api.telegram.org

	ConnectTimeout time.Duration
	ReadTimeout    time.Duration

	MaxAttempts    int
	StatusBackoff  []time.Duration // пауза после не-200 ответа или таймаута, по номеру попытки
	NetworkBackoff time.Duration   // пауза после сетевой ошибки
}

// Configured — заданы ли реальные (не шаблонные) реквизиты.
func (c *Config) Configured() bool {
	token := strings.TrimSpace(c.Token)
	chat := strings.TrimSpace(c.ChatID)
	return token != "" && chat != "" && token != placeholderToken && chat != placeholderChatID
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.APIURL == "" {
		out.APIURL = "https://api.telegram.org"
	}
	out.APIURL = strings.TrimRight(out.APIURL, "/")
	if out.ConnectTimeout <= 0 {
		out.ConnectTimeout = 3 * time.Second
	}
	if out.ReadTimeout <= 0 {
		out.ReadTimeout = 10 * time.Second
	}
	if out.MaxAttempts <= 0 {
		out.MaxAttempts = 3
	}
	if len(out.StatusBackoff) == 0 {
		out.StatusBackoff = []time.Duration{time.Second, 2 * time.Second}
	}
	if out.NetworkBackoff <= 0 {
		out.NetworkBackoff = 2 * time.Second
	}
	return out
}

// statusDelay — пауза перед попыткой attempt+1; для попыток за пределами списка берётся последняя.
func (c *Config) statusDelay(attempt int) time.Duration {
	i := attempt - 1
	if i < 0 {
		i = 0
	}
	if i >= len(c.StatusBackoff) {
		i = len(c.StatusBackoff) - 1
	}
	return c.StatusBackoff[i]
}
