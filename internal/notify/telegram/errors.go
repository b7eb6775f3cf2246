package telegram

import (
	"context"
	"errors"
	"io"
	"net"
	"net/url"
	"syscall"
)

type attemptResult int

const (
	resultOK attemptResult = iota
	resultStatus
	resultTimeout
	resultNetwork
	resultFatal
)

func (r attemptResult) String() string {
	switch r {
	case resultOK:
		return "ok"
	case resultStatus:
		return "status"
	case resultTimeout:
		return "timeout"
	case resultNetwork:
		return "network"
	default:
		return "fatal"
	}
}

// classify — вид ошибки транспорта. Отмена родительского контекста не повторяется.
func classify(ctx context.Context, err error) attemptResult {
	if ctx.Err() != nil {
		return resultFatal
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return resultTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return resultTimeout
	}

	var opErr *net.OpError
	switch {
	case errors.As(err, &opErr),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.ECONNREFUSED):
		return resultNetwork
	}
	return resultFatal
}

// stripURL — убирает адрес запроса из ошибки: в нём токен бота.
func stripURL(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}
