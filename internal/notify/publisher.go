package notify

import (
	"context"
	"sync"

	"go-writeup/internal/events"
	"go-writeup/internal/messaging/kafka"

	"go.uber.org/zap"
)

// Publisher hands events to the notification sink. Callers invoke it after
// their transaction commits and only log a returned error.
//
//go:generate mockgen -source=publisher.go -destination=mock/publisher_mock.go -package=mock
type Publisher interface {
	PublishWriteUpLogged(ctx context.Context, event events.WriteUpLoggedEvent) error
	PublishStandingAlert(ctx context.Context, event events.StandingAlertEvent) error
}

type noopPublisher struct{}

func NewNoopPublisher() Publisher { return noopPublisher{} }

func (noopPublisher) PublishWriteUpLogged(context.Context, events.WriteUpLoggedEvent) error {
	return nil
}

func (noopPublisher) PublishStandingAlert(context.Context, events.StandingAlertEvent) error {
	return nil
}

// outboxPublisher queues events in outbox_events for the relay worker.
type outboxPublisher struct {
	outbox kafka.OutboxRepository
}

func NewOutboxPublisher(outbox kafka.OutboxRepository) Publisher {
	return &outboxPublisher{outbox: outbox}
}

func (p *outboxPublisher) PublishWriteUpLogged(ctx context.Context, event events.WriteUpLoggedEvent) error {
	row, err := kafka.NewOutboxEvent(
		events.WriteUpLoggedTopic, "writeup", event.WriteUpID, event.EventType, event.RequestID, event,
	)
	if err != nil {
		return err
	}
	return p.outbox.Create(ctx, row)
}

func (p *outboxPublisher) PublishStandingAlert(ctx context.Context, event events.StandingAlertEvent) error {
	row, err := kafka.NewOutboxEvent(
		events.StandingAlertTopic, "employee", event.EmployeeID, event.EventType, event.RequestID, event,
	)
	if err != nil {
		return err
	}
	return p.outbox.Create(ctx, row)
}

// webhookPublisher posts straight to the webhooks from a goroutine so the
// HTTP request returns without waiting on Slack. Close waits for in-flight
// posts.
type webhookPublisher struct {
	sender     Sender
	writeUpURL string
	alertURL   string
	logger     *zap.Logger
	wg         sync.WaitGroup
}

type WebhookPublisher interface {
	Publisher
	Close()
}

func NewWebhookPublisher(sender Sender, writeUpURL, alertURL string, logger ...*zap.Logger) WebhookPublisher {
	l := zap.L().Named("notify.webhook")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notify.webhook")
	}
	return &webhookPublisher{
		sender:     sender,
		writeUpURL: writeUpURL,
		alertURL:   alertURL,
		logger:     l,
	}
}

func (p *webhookPublisher) PublishWriteUpLogged(ctx context.Context, event events.WriteUpLoggedEvent) error {
	p.post(ctx, p.writeUpURL, event.Text(), event.EventType)
	return nil
}

func (p *webhookPublisher) PublishStandingAlert(ctx context.Context, event events.StandingAlertEvent) error {
	p.post(ctx, p.alertURL, event.Text(), event.EventType)
	return nil
}

func (p *webhookPublisher) post(ctx context.Context, url, text, eventType string) {
	if url == "" {
		return
	}
	ctx = context.WithoutCancel(ctx)
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		if err := p.sender.Send(ctx, url, text); err != nil {
			p.logger.Warn("slack post failed", zap.String("event_type", eventType), zap.Error(err))
		}
	}()
}

func (p *webhookPublisher) Close() {
	p.wg.Wait()
}
