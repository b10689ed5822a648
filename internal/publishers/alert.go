// Package publishers sends suspicious-transaction alerts to Kafka.
package publishers

//go:generate mockgen -source=alert.go -destination=alert_mock.go -package=publishers

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/aml-detector/internal/logger"
	"github.com/sbilibin2017/aml-detector/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AlertPublisher publishes alerts keyed by alert id.
type AlertPublisher struct {
	writer KafkaWriter
}

// NewAlertPublisher creates a new AlertPublisher. A nil writer disables publishing.
func NewAlertPublisher(writer KafkaWriter) *AlertPublisher {
	return &AlertPublisher{writer: writer}
}

// NewKafkaWriter creates a writer for the alert topic.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// Publish writes alerts in one call. Alerts that fail to marshal are skipped.
func (p *AlertPublisher) Publish(ctx context.Context, alerts ...models.Alert) error {
	if p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "alerts", len(alerts))
		return nil
	}

	msgs := make([]kafka.Message, 0, len(alerts))
	for _, a := range alerts {
		data, err := json.Marshal(a)
		if err != nil {
			logger.Log.Errorw("Failed to marshal alert for Kafka", "alert_id", a.AlertID, "error", err)
			continue
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(a.AlertID),
			Value: data,
		})
	}
	if len(msgs) == 0 {
		return nil
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		logger.Log.Errorw("Failed to publish alerts to Kafka", "alerts", len(msgs), "error", err)
		return err
	}

	logger.Log.Infow("Alerts published to Kafka", "alerts", len(msgs), "batch_id", alerts[0].BatchID)
	return nil
}

// Close closes the underlying writer.
func (p *AlertPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
