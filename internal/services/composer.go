package services

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/Hairash/ai-helper/internal/models"
)

const eventPublishTimeout = 2 * time.Second

// speakerLabel matches a "Me:" or "Assistant:" prefix echoed back by the model.
var speakerLabel = regexp.MustCompile(`(?i)^(me|assistant)\s*:\s*`)

// ReplyComposer turns a transcript into a reply drafted by the completion provider.
type ReplyComposer struct {
	provider CompletionProvider
	events   EventPublisher
	timeout  time.Duration
	logger   *slog.Logger
}

func NewReplyComposer(provider CompletionProvider, events EventPublisher, timeout time.Duration, logger *slog.Logger) *ReplyComposer {
	if events == nil {
		events = noopEventPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ReplyComposer{
		provider: provider,
		events:   events,
		timeout:  timeout,
		logger:   logger,
	}
}

func (c *ReplyComposer) ProviderName() string {
	return c.provider.Name()
}

// Compose validates the transcript, asks the provider for a reply and returns
// the cleaned-up text. Nothing is sent upstream for invalid input.
func (c *ReplyComposer) Compose(ctx context.Context, requestID string, messages []models.Message) (string, error) {
	if err := ValidateMessages(messages); err != nil {
		c.logger.Warn("rejected reply request", "request_id", requestID, "messages", len(messages), "error", err)
		return "", err
	}

	transcript := FormatTranscript(messages)
	c.logger.Info("received transcript", "request_id", requestID, "messages", len(messages), "transcript", transcript)

	req := CompletionRequest{
		System:      BuildReplyPrompt(transcript),
		User:        ReplyDirective,
		MaxTokens:   replyMaxTokens,
		Temperature: replyTemperature,
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	started := time.Now()
	raw, err := c.provider.Complete(ctx, req)
	if err != nil {
		c.logger.Error("completion failed", "request_id", requestID, "provider", c.provider.Name(), "error", err)
		var upErr *UpstreamError
		if !errors.As(err, &upErr) {
			upErr = newUpstreamError(c.provider.Name()+" completion failed", err)
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			upErr.Timeout = true
		}
		return "", upErr
	}

	reply := cleanReply(raw)
	if reply == "" {
		c.logger.Error("completion returned an empty reply", "request_id", requestID, "provider", c.provider.Name())
		return "", &UpstreamError{Message: c.provider.Name() + " returned an empty reply"}
	}
	elapsed := time.Since(started)

	c.logger.Info("generated reply", "request_id", requestID, "provider", c.provider.Name(), "duration", elapsed, "reply", reply)
	c.publish(ctx, ReplyEvent{
		RequestID:  requestID,
		Provider:   c.provider.Name(),
		Messages:   len(messages),
		ReplyChars: len([]rune(reply)),
		DurationMs: elapsed.Milliseconds(),
		CreatedAt:  time.Now().UTC(),
	})

	return reply, nil
}

func (c *ReplyComposer) publish(ctx context.Context, event ReplyEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventPublishTimeout)
	defer cancel()

	if err := c.events.PublishReply(ctx, event); err != nil {
		c.logger.Warn("reply event not published", "request_id", event.RequestID, "error", err)
	}
}

func cleanReply(raw string) string {
	reply := strings.TrimSpace(raw)
	reply = speakerLabel.ReplaceAllString(reply, "")
	return strings.TrimSpace(reply)
}
