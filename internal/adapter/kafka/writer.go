package kafka

import (
	"context"
	"log/slog"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/route-grade-etl/internal/config"
	"github.com/couchcryptid/route-grade-etl/internal/domain"
)

// headerOrder fixes the order of message headers.
var headerOrder = []string{"discipline", "scale", "processed_at"}

// Writer produces messages to a Kafka topic.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// LoadBatch serializes and publishes enriched routes to the sink topic in a
// single WriteMessages call. Messages are keyed by route ID so re-imports of
// the same route land on the same partition.
func (w *Writer) LoadBatch(ctx context.Context, routes []domain.Route) error {
	if len(routes) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(routes))
	for i := range routes {
		msg, err := serializeToMessage(routes[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return err
	}
	w.logger.Debug("batch loaded", "size", len(msgs), "topic", w.writer.Topic)
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a Route into a Kafka message.
func serializeToMessage(route domain.Route) (kafkago.Message, error) {
	out, err := domain.SerializeRoute(route)
	if err != nil {
		return kafkago.Message{}, err
	}
	headers := make([]kafkago.Header, 0, len(headerOrder))
	for _, k := range headerOrder {
		headers = append(headers, kafkago.Header{Key: k, Value: []byte(out.Headers[k])})
	}
	return kafkago.Message{
		Key:     out.Key,
		Value:   out.Value,
		Headers: headers,
	}, nil
}
