package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-leave/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const outboxIDHeader = "outbox_id"

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type LeaveEventHandler interface {
	Handle(ctx context.Context, event events.LeaveEvent) error
}

// Parker hands a message that kept failing back to the outbox, which
// publishes it again after its own backoff.
type Parker interface {
	MarkFailed(ctx context.Context, id string, reason string) error
}

type Config struct {
	MaxAttempts       int
	RetryBackoff      time.Duration
	FetchErrorBackoff time.Duration
}

func (c Config) withDefaults() Config {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 5
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = 500 * time.Millisecond
	}
	if c.FetchErrorBackoff <= 0 {
		c.FetchErrorBackoff = time.Second
	}
	return c
}

// ConsumeLeaveLifecycle runs until ctx is cancelled. Undecodable messages are
// committed and dropped. A failing handler is retried with a linear backoff;
// after MaxAttempts the message is parked in the outbox before its offset is
// committed, so a later commit never skips an undelivered event.
func ConsumeLeaveLifecycle(
	ctx context.Context,
	reader MessageReader,
	handler LeaveEventHandler,
	parker Parker,
	logger *zap.Logger,
	cfg Config,
) {
	cfg = cfg.withDefaults()
	log := logger.Named("kafka.consumer.leave_lifecycle")
	log.Info("leave lifecycle consumer started", zap.Int("max_attempts", cfg.MaxAttempts))

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave lifecycle consumer stopped")
				return
			}
			log.Error("fetch leave lifecycle message failed", zap.Error(err))
			if !sleep(ctx, cfg.FetchErrorBackoff) {
				log.Info("leave lifecycle consumer stopped")
				return
			}
			continue
		}

		handleMessage(ctx, reader, handler, parker, msg, log, cfg)
	}
}

func handleMessage(
	ctx context.Context,
	reader MessageReader,
	handler LeaveEventHandler,
	parker Parker,
	msg kafkago.Message,
	log *zap.Logger,
	cfg Config,
) {
	var event events.LeaveEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode leave event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	if !events.IsLeaveEvent(event.EventType) {
		log.Warn("unknown leave event type, skipping", zap.String("event_type", event.EventType))
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		lastErr = handler.Handle(ctx, event)
		if lastErr == nil {
			break
		}
		log.Warn("handle leave event failed",
			zap.String("event_type", event.EventType),
			zap.String("leave_id", event.LeaveID),
			zap.Int("attempt", attempt),
			zap.Error(lastErr),
		)
		if attempt < cfg.MaxAttempts && !sleep(ctx, time.Duration(attempt)*cfg.RetryBackoff) {
			return
		}
	}

	if lastErr != nil && !park(ctx, parker, msg, event, lastErr, log, cfg) {
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit leave lifecycle message failed", zap.Error(err))
		return
	}

	if lastErr == nil {
		log.Info("leave event handled",
			zap.String("event_type", event.EventType),
			zap.String("leave_id", event.LeaveID),
		)
	}
}

// park reports whether the offset may be committed. It keeps retrying the
// outbox update until it succeeds or ctx ends.
func park(
	ctx context.Context,
	parker Parker,
	msg kafkago.Message,
	event events.LeaveEvent,
	cause error,
	log *zap.Logger,
	cfg Config,
) bool {
	outboxID := header(msg, outboxIDHeader)
	if parker == nil || outboxID == "" {
		log.Error("dropping leave event after retries",
			zap.String("event_type", event.EventType),
			zap.String("leave_id", event.LeaveID),
			zap.Int64("offset", msg.Offset),
			zap.Error(cause),
		)
		return true
	}

	for {
		err := parker.MarkFailed(ctx, outboxID, cause.Error())
		if err == nil {
			log.Warn("leave event parked for redelivery",
				zap.String("outbox_id", outboxID),
				zap.String("event_type", event.EventType),
				zap.String("leave_id", event.LeaveID),
			)
			return true
		}
		log.Error("park leave event failed", zap.String("outbox_id", outboxID), zap.Error(err))
		if !sleep(ctx, cfg.RetryBackoff) {
			return false
		}
	}
}

func header(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

// sleep waits for d and returns false if ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
