package consumer

import (
	"context"
	"errors"

	"go-writeup/internal/notify"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Dispatcher delivers one decoded notification.
type Dispatcher interface {
	Dispatch(ctx context.Context, topic string, payload []byte) error
}

// ConsumeNotifications delivers write-up and standing alert messages to
// Slack until ctx is cancelled. Poison messages are committed and skipped;
// delivery failures are left uncommitted so the group redelivers them.
func ConsumeNotifications(
	ctx context.Context,
	reader MessageReader,
	dispatcher Dispatcher,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.notifications")
	log.Info("notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("notification consumer stopped")
				return
			}
			log.Error("fetch notification message failed", zap.Error(err))
			continue
		}

		err = dispatcher.Dispatch(ctx, msg.Topic, msg.Value)
		if err != nil {
			var decodeErr *notify.DecodeError
			if errors.As(err, &decodeErr) || errors.Is(err, notify.ErrUnknownTopic) {
				log.Error("skip undeliverable notification",
					zap.String("topic", msg.Topic),
					zap.Int64("offset", msg.Offset),
					zap.Error(err),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("deliver notification failed",
				zap.String("topic", msg.Topic),
				zap.String("request_id", headerValue(msg, "request_id")),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit notification message failed", zap.Error(err))
			continue
		}

		log.Info("notification delivered",
			zap.String("topic", msg.Topic),
			zap.String("event_type", headerValue(msg, "event_type")),
			zap.String("request_id", headerValue(msg, "request_id")),
		)
	}
}

func headerValue(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
