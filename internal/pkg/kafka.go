package pkg

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"forum-admin/internal/config"
)

type KafkaProducer struct {
	writer *kafka.Writer
	topic  string
}

func NewKafkaProducer(cfg config.KafkaConfig) (*KafkaProducer, error) {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}
	return &KafkaProducer{writer: w, topic: cfg.Topic}, nil
}

func (p *KafkaProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// ModeratorAddedEvent signals the running forum services that a community
// gained a moderator, keyed by community so per-community ordering holds.
type ModeratorAddedEvent struct {
	EventType   string `json:"event_type"`
	CommunityID uint64 `json:"community_id"`
	UserID      uint64 `json:"user_id"`
	EventTime   string `json:"event_time"`
}

func (p *KafkaProducer) SendModeratorAdded(ctx context.Context, communityID, userID uint64) error {
	payload, err := json.Marshal(ModeratorAddedEvent{
		EventType:   "community.moderator.added",
		CommunityID: communityID,
		UserID:      userID,
		EventTime:   time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%d", communityID)),
		Value: payload,
	}
	return p.writer.WriteMessages(ctx, msg)
}
