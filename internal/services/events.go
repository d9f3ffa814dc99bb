package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReplyEvent describes a generated reply without its conversation content.
type ReplyEvent struct {
	RequestID  string    `json:"request_id"`
	Provider   string    `json:"provider"`
	Messages   int       `json:"messages"`
	ReplyChars int       `json:"reply_chars"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

type EventPublisher interface {
	PublishReply(ctx context.Context, event ReplyEvent) error
}

// RedisEventPublisher fans reply events out over Redis pub/sub.
type RedisEventPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisEventPublisher(client *redis.Client, channel string) *RedisEventPublisher {
	return &RedisEventPublisher{client: client, channel: channel}
}

func (p *RedisEventPublisher) PublishReply(ctx context.Context, event ReplyEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode reply event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, string(data)).Err(); err != nil {
		return fmt.Errorf("failed to publish reply event: %w", err)
	}
	return nil
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishReply(context.Context, ReplyEvent) error { return nil }
