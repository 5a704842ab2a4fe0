package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"go-writeup/internal/events"
	"go-writeup/internal/messaging/kafka"
	kafkaMock "go-writeup/internal/messaging/kafka/mock"
	"go-writeup/internal/notify"
	"go-writeup/internal/standing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type recordingSender struct {
	mu    sync.Mutex
	posts map[string][]string
	err   error
}

func (s *recordingSender) Send(_ context.Context, url, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.posts == nil {
		s.posts = map[string][]string{}
	}
	s.posts[url] = append(s.posts[url], text)
	return s.err
}

func TestSlackSender_Send(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := notify.NewSlackSender(srv.Client()).Send(context.Background(), srv.URL, "hello")

	require.NoError(t, err)
	assert.Equal(t, "hello", got["text"])
}

func TestSlackSender_EmptyURLIsNoop(t *testing.T) {
	assert.NoError(t, notify.NewSlackSender().Send(context.Background(), "", "ignored"))
}

func TestSlackSender_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	err := notify.NewSlackSender(srv.Client()).Send(context.Background(), srv.URL, "x")
	assert.Error(t, err)
}

func TestWebhookPublisher(t *testing.T) {
	sender := &recordingSender{err: errors.New("slack down")}
	pub := notify.NewWebhookPublisher(sender, "https://hooks/writeups", "https://hooks/alerts", zap.NewNop())

	alert := events.NewStandingAlertEvent("emp-1", standing.AlertEvent{
		EmployeeName: "Ava", QuarterKey: "2025 Q1",
		BeforeTier: standing.TierGoodStanding, AfterTier: standing.TierBorderline, QuarterPoints: 10,
	}, "")

	assert.NoError(t, pub.PublishWriteUpLogged(context.Background(), events.WriteUpLoggedEvent{EmployeeName: "Ava"}))
	assert.NoError(t, pub.PublishStandingAlert(context.Background(), alert))
	pub.Close()

	assert.Len(t, sender.posts["https://hooks/writeups"], 1)
	require.Len(t, sender.posts["https://hooks/alerts"], 1)
	assert.Contains(t, sender.posts["https://hooks/alerts"][0], "Standing: Good Standing → *Borderline*")
}

func TestWebhookPublisher_UnconfiguredChannel(t *testing.T) {
	sender := &recordingSender{}
	pub := notify.NewWebhookPublisher(sender, "", "", zap.NewNop())

	assert.NoError(t, pub.PublishWriteUpLogged(context.Background(), events.WriteUpLoggedEvent{}))
	pub.Close()

	assert.Empty(t, sender.posts)
}

func TestOutboxPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	pub := notify.NewOutboxPublisher(outbox)

	outbox.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, row kafka.OutboxEvent) error {
			assert.Equal(t, events.StandingAlertTopic, row.Topic)
			assert.Equal(t, "emp-1", row.AggregateID)
			assert.Equal(t, "req-9", row.RequestID)
			return nil
		})

	err := pub.PublishStandingAlert(context.Background(), events.StandingAlertEvent{
		EventType: "standing_alert", EmployeeID: "emp-1", RequestID: "req-9",
	})
	assert.NoError(t, err)
}

func TestDispatcher(t *testing.T) {
	sender := &recordingSender{}
	d := notify.NewDispatcher(sender, "https://hooks/writeups", "https://hooks/alerts")
	ctx := context.Background()

	payload, _ := json.Marshal(events.StandingAlertEvent{
		EmployeeName: "Ava", QuarterKey: "2025 Q1", BeforeTier: "Borderline", AfterTier: "Suspension", QuarterPoints: 20,
	})
	require.NoError(t, d.Dispatch(ctx, events.StandingAlertTopic, payload))
	assert.Contains(t, sender.posts["https://hooks/alerts"][0], "Quarter Points: 20")

	var decodeErr *notify.DecodeError
	assert.ErrorAs(t, d.Dispatch(ctx, events.WriteUpLoggedTopic, []byte("{")), &decodeErr)
	assert.ErrorIs(t, d.Dispatch(ctx, "other.topic", nil), notify.ErrUnknownTopic)
	assert.ElementsMatch(t, []string{events.WriteUpLoggedTopic, events.StandingAlertTopic}, d.Topics())
}
