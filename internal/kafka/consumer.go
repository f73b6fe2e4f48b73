package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	reader  *kafka.Reader
	groupID string
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		groupID: groupID,
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			MinBytes:          1,
			MaxBytes:          1 << 20,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume reads messages until ctx is done or handler returns an error.
// In a consumer group the offset is committed only after handler succeeds,
// so a message whose handling fails is delivered again.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, kafka.Message) error) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			return err
		}

		log.Debug().Str("topic", msg.Topic).Int("partition", msg.Partition).Int64("offset", msg.Offset).Msg("Received from Kafka")
		if err := handler(ctx, msg); err != nil {
			return err
		}

		if c.groupID == "" {
			continue
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			return fmt.Errorf("commit offset %d: %w", msg.Offset, err)
		}
	}
}

// ConsumePlanRequests decodes every message as a plan request. Messages that
// cannot be decoded are logged and skipped.
func (c *Consumer) ConsumePlanRequests(ctx context.Context, handler func(context.Context, PlanRequestMessage) error) error {
	return c.Consume(ctx, func(ctx context.Context, msg kafka.Message) error {
		request, err := DecodePlanRequest(msg)
		if err != nil {
			log.Error().Err(err).Int64("offset", msg.Offset).Msg("Skipping plan request")
			return nil
		}
		return handler(ctx, request)
	})
}

// DecodePlanRequest reads a plan request, taking the ID from the message key
// when the payload has none.
func DecodePlanRequest(msg kafka.Message) (PlanRequestMessage, error) {
	var request PlanRequestMessage
	if err := json.Unmarshal(msg.Value, &request); err != nil {
		return PlanRequestMessage{}, fmt.Errorf("decode plan request: %w", err)
	}
	if request.ID == "" {
		request.ID = string(msg.Key)
	}
	return request, nil
}
