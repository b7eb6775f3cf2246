package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// PublisherConfig — параметры публикации событий заказов.
type PublisherConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// Enabled — публикация включена, если задан хотя бы один брокер.
func (c *PublisherConfig) Enabled() bool {
	return len(c.brokers()) > 0
}

func (c *PublisherConfig) writerConfig() *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(c.brokers()...),
		Topic:                  c.Topic,
		Balancer:               &kafka.Hash{}, // события одного заказа в одну партицию
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

// brokers — адреса без пустых элементов и пробелов (значение из env может быть "a:9092, ,b:9092").
func (c *PublisherConfig) brokers() []string {
	out := make([]string, 0, len(c.Brokers))
	for _, b := range c.Brokers {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
