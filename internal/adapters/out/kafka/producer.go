// Package kafka produces outbox payloads to the message bus.
package kafka

import (
	"context"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer writes pre-serialized event payloads to a single Kafka topic.
// Messages are keyed, so events of one order land on one partition and keep
// their relative order.
type Producer struct {
	writer *kafka.Writer
}

// NewProducer creates a producer for the given topic. brokersCSV is a
// comma-separated broker list.
func NewProducer(brokersCSV string, topic string) *Producer {
	brokers := make([]string, 0)
	for _, broker := range strings.Split(brokersCSV, ",") {
		broker = strings.TrimSpace(broker)
		if broker != "" {
			brokers = append(brokers, broker)
		}
	}

	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// Produce writes one keyed message to the topic.
func (p *Producer) Produce(ctx context.Context, key string, payload []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Time:  time.Now().UTC(),
	})
}

// Close flushes pending messages and releases the writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
