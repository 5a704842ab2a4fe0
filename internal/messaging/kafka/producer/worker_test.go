package producer_test

import (
	"context"
	"errors"
	"testing"

	"go-writeup/internal/messaging/kafka"
	kafkaMock "go-writeup/internal/messaging/kafka/mock"
	"go-writeup/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	msgs []kafkago.Message
	fail map[string]bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if w.fail[string(m.Key)] {
			return errors.New("broker unavailable")
		}
		w.msgs = append(w.msgs, m)
	}
	return nil
}

func TestProcessPending(t *testing.T) {
	ctx := context.Background()

	t.Run("sends and marks each event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{
			{ID: "o-1", RequestID: "req-1", AggregateID: "w-1", Topic: "hr.writeup.logged.v1", EventType: "writeup_logged", Payload: []byte(`{}`)},
			{ID: "o-2", AggregateID: "e-1", Topic: "hr.standing.alert.v1", EventType: "standing_alert", Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkSent(ctx, "o-1").Return(nil)
		repo.EXPECT().MarkSent(ctx, "o-2").Return(nil)

		sent, err := producer.ProcessPending(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Equal(t, 2, sent)
		assert.Len(t, writer.msgs, 2)
		assert.Equal(t, "hr.writeup.logged.v1", writer.msgs[0].Topic)
		assert.Len(t, writer.msgs[0].Headers, 3)
		assert.Len(t, writer.msgs[1].Headers, 2)
	})

	t.Run("publish failure marks failed and continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{fail: map[string]bool{"bad": true}}

		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{
			{ID: "o-1", AggregateID: "bad", Topic: "t"},
			{ID: "o-2", AggregateID: "good", Topic: "t"},
		}, nil)
		repo.EXPECT().MarkFailed(ctx, "o-1", "broker unavailable").Return(nil)
		repo.EXPECT().MarkSent(ctx, "o-2").Return(nil)

		sent, err := producer.ProcessPending(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(ctx, 50).Return(nil, errors.New("db down"))

		_, err := producer.ProcessPending(ctx, repo, &fakeWriter{}, zap.NewNop())
		assert.Error(t, err)
	})
}
