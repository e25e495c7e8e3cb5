package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"inclfinance/internal/constant"

	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"
)

// Event is what gets published once an analytics row is stored.
type Event struct {
	Id            int64              `json:"id"`
	WalletAddress string             `json:"wallet_address,omitempty"`
	EventType     constant.EventType `json:"event_type"`
	Payload       Payload            `json:"payload"`
	CreatedAt     time.Time          `json:"created_at"`
}

// Publisher 埋点事件发布器
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
	Close() error
}

// LogPublisher writes events to the service log. It is used when no broker
// is configured.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) Publish(ctx context.Context, evt Event) error {
	logx.WithContext(ctx).Infow("analytics event",
		logx.Field("event_type", evt.EventType),
		logx.Field("wallet", evt.WalletAddress),
		logx.Field("payload", evt.Payload),
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }

// KafkaPublisher sends events to a Kafka topic, keyed by wallet so that one
// wallet's events stay ordered within a partition. Writes are async: delivery
// errors surface in the log, never in the request.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			RequiredAcks:           kafka.RequireOne,
			BatchTimeout:           10 * time.Millisecond,
			WriteTimeout:           5 * time.Second,
			Async:                  true,
			Completion:             logDelivery,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, evt Event) error {
	msg, err := buildMessage(evt)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", evt.EventType, err)
	}
	return nil
}

// logDelivery 异步写入完成回调，失败只记日志
func logDelivery(messages []kafka.Message, err error) {
	if err == nil {
		return
	}
	for _, msg := range messages {
		logx.Errorf("kafka delivery failed: topic=%s key=%s: %v", msg.Topic, msg.Key, err)
	}
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func buildMessage(evt Event) (kafka.Message, error) {
	value, err := json.Marshal(evt)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(evt.WalletAddress),
		Value: value,
		Time:  evt.CreatedAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(evt.EventType)},
		},
	}, nil
}
