package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-writeup/internal/events"
)

// Dispatcher turns a consumed Kafka message into a Slack post.
type Dispatcher struct {
	sender     Sender
	writeUpURL string
	alertURL   string
}

func NewDispatcher(sender Sender, writeUpURL, alertURL string) *Dispatcher {
	return &Dispatcher{sender: sender, writeUpURL: writeUpURL, alertURL: alertURL}
}

// Topics lists the topics the dispatcher understands.
func (d *Dispatcher) Topics() []string {
	return []string{events.WriteUpLoggedTopic, events.StandingAlertTopic}
}

// ErrUnknownTopic is returned for messages from topics not in Topics.
var ErrUnknownTopic = errors.New("unknown notification topic")

// Dispatch decodes payload by topic and posts it. Decode errors are
// returned wrapped so the consumer can commit past poison messages.
func (d *Dispatcher) Dispatch(ctx context.Context, topic string, payload []byte) error {
	switch topic {
	case events.WriteUpLoggedTopic:
		var e events.WriteUpLoggedEvent
		if err := json.Unmarshal(payload, &e); err != nil {
			return &DecodeError{Topic: topic, Err: err}
		}
		return d.sender.Send(ctx, d.writeUpURL, e.Text())
	case events.StandingAlertTopic:
		var e events.StandingAlertEvent
		if err := json.Unmarshal(payload, &e); err != nil {
			return &DecodeError{Topic: topic, Err: err}
		}
		return d.sender.Send(ctx, d.alertURL, e.Text())
	default:
		return fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
	}
}

type DecodeError struct {
	Topic string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s payload: %v", e.Topic, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
