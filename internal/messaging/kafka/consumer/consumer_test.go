package consumer_test

import (
	"context"
	"errors"
	"testing"

	"go-writeup/internal/messaging/kafka/consumer"
	"go-writeup/internal/notify"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// scriptedReader hands out msgs in order, then cancels the consumer.
type scriptedReader struct {
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *scriptedReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

type dispatchFunc func(ctx context.Context, topic string, payload []byte) error

func (f dispatchFunc) Dispatch(ctx context.Context, topic string, payload []byte) error {
	return f(ctx, topic, payload)
}

func TestConsumeNotifications(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	reader := &scriptedReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			{Topic: "ok", Offset: 1},
			{Topic: "poison", Offset: 2},
			{Topic: "slack-down", Offset: 3},
			{Topic: "unknown", Offset: 4},
		},
	}

	var delivered []string
	d := dispatchFunc(func(_ context.Context, topic string, _ []byte) error {
		switch topic {
		case "poison":
			return &notify.DecodeError{Topic: topic, Err: errors.New("bad json")}
		case "slack-down":
			return errors.New("timeout")
		case "unknown":
			return notify.ErrUnknownTopic
		}
		delivered = append(delivered, topic)
		return nil
	})

	consumer.ConsumeNotifications(ctx, reader, d, zap.NewNop())

	assert.Equal(t, []string{"ok"}, delivered)
	assert.Equal(t, []int64{1, 2, 4}, reader.committed)
}
