package kafka_test

import (
	"context"
	"testing"
	"time"

	"go-writeup/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutboxEvent(t *testing.T) {
	ev, err := kafka.NewOutboxEvent("hr.writeup.logged.v1", "writeup", "w-1", "writeup_logged", "req-1",
		map[string]any{"points": 3})

	require.NoError(t, err)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, kafka.OutboxStatusPending, ev.Status)
	assert.JSONEq(t, `{"points":3}`, string(ev.Payload))
	assert.NoError(t, kafka.ValidateOutboxEvent(ev))
}

func TestValidateOutboxEvent(t *testing.T) {
	base := kafka.OutboxEvent{ID: "1", Topic: "t", Payload: []byte("{}"), Status: kafka.OutboxStatusPending}

	noTopic := base
	noTopic.Topic = ""
	assert.Error(t, kafka.ValidateOutboxEvent(noTopic))

	badStatus := base
	badStatus.Status = "queued"
	assert.Error(t, kafka.ValidateOutboxEvent(badStatus))
}

func TestOutboxRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)
	ev, _ := kafka.NewOutboxEvent("topic", "writeup", "w-1", "writeup_logged", "req-1", map[string]int{"a": 1})

	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(ev.ID, "req-1", "writeup", "w-1", "writeup_logged", "topic", ev.Payload, kafka.OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(1, 1))

	assert.NoError(t, repo.Create(context.Background(), ev))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow("o-1", "req-1", "writeup", "w-1", "standing_alert", "hr.standing.alert.v1", []byte(`{}`), "pending", 0, now)

	mock.ExpectQuery("SELECT").
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 10, 25).
		WillReturnRows(rows)

	got, err := kafka.NewOutboxRepository(db).ListPending(context.Background(), 25)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "req-1", got[0].RequestID)
	assert.Equal(t, "hr.standing.alert.v1", got[0].Topic)
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("o-1", kafka.OutboxStatusFailed, "broker down").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, kafka.NewOutboxRepository(db).MarkFailed(context.Background(), "o-1", "broker down"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
