package kafka

import (
	"context"

	"github.com/Gunvolt24/tg_store/pkg/ctxmeta"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
)

// headerCarrier — propagation.TextMapCarrier поверх заголовков сообщения.
type headerCarrier struct {
	headers *[]kafka.Header
}

func (c headerCarrier) Get(key string) string {
	for _, h := range *c.headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c headerCarrier) Set(key, value string) {
	for i := range *c.headers {
		if (*c.headers)[i].Key == key {
			(*c.headers)[i].Value = []byte(value)
			return
		}
	}
	*c.headers = append(*c.headers, kafka.Header{Key: key, Value: []byte(value)})
}

func (c headerCarrier) Keys() []string {
	keys := make([]string, 0, len(*c.headers))
	for _, h := range *c.headers {
		keys = append(keys, h.Key)
	}
	return keys
}

// messageHeaders — content-type, request_id и W3C trace context.
func messageHeaders(ctx context.Context) []kafka.Header {
	headers := []kafka.Header{{Key: "content-type", Value: []byte("application/json")}}
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		headers = append(headers, kafka.Header{Key: "x-request-id", Value: []byte(rid)})
	}
	otel.GetTextMapPropagator().Inject(ctx, headerCarrier{headers: &headers})
	return headers
}
