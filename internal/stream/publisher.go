package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

var (
	ErrMarshalRecord = errors.New("error marshalling record")
	ErrWriteMessage  = errors.New("error writing message")
)

type Config struct {
	Brokers string
	Topic   string
}

// TelemetryPublisher fans raw telemetry out to Kafka for downstream
// consumers. Publishing is best-effort; the database write is the
// durable copy.
type TelemetryPublisher struct {
	writer Writer
}

func NewTelemetryPublisher(cfg Config) *TelemetryPublisher {
	return &TelemetryPublisher{
		writer: kafka.NewWriter(kafka.WriterConfig{
			Brokers: []string{cfg.Brokers},
			Topic:   cfg.Topic,
		}),
	}
}

func (p *TelemetryPublisher) Publish(ctx context.Context, record TelemetryRecord) error {
	const fn = "TelemetryPublisher:Publish"
	if record.Timestamp == 0 {
		record.Timestamp = time.Now().UnixMilli()
	}
	out, err := json.Marshal(TelemetryEnvelope{Schema: TelemetrySchema, Payload: record})
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrMarshalRecord, err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(record.DeviceID), Value: out})
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrWriteMessage, err)
	}
	return nil
}

func (p *TelemetryPublisher) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing telemetry publisher...")
	p.writer.Close()
}

// LifecyclePublisher announces release state transitions on their own
// topic; the external webhook dispatcher consumes it.
type LifecyclePublisher struct {
	writer Writer
}

func NewLifecyclePublisher(cfg Config) *LifecyclePublisher {
	return &LifecyclePublisher{
		writer: kafka.NewWriter(kafka.WriterConfig{
			Brokers: []string{cfg.Brokers},
			Topic:   cfg.Topic,
		}),
	}
}

func (p *LifecyclePublisher) Publish(ctx context.Context, record TransitionRecord) error {
	const fn = "LifecyclePublisher:Publish"
	if record.Timestamp == 0 {
		record.Timestamp = time.Now().UnixMilli()
	}
	out, err := json.Marshal(TransitionEnvelope{Schema: TransitionSchema, Payload: record})
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrMarshalRecord, err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(record.ReleaseID), Value: out})
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrWriteMessage, err)
	}
	return nil
}

func (p *LifecyclePublisher) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing lifecycle publisher...")
	p.writer.Close()
}
