package events

import (
	"time"

	"go-writeup/internal/standing"
)

const StandingAlertTopic = "hr.standing.alert.v1"

type StandingAlertEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	EmployeeID    string    `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	QuarterKey    string    `json:"quarter"`
	BeforeTier    string    `json:"before_tier"`
	AfterTier     string    `json:"after_tier"`
	QuarterPoints int       `json:"quarter_points"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func NewStandingAlertEvent(employeeID string, alert standing.AlertEvent, requestID string) StandingAlertEvent {
	return StandingAlertEvent{
		EventType:     "standing_alert",
		RequestID:     requestID,
		EmployeeID:    employeeID,
		EmployeeName:  alert.EmployeeName,
		QuarterKey:    alert.QuarterKey,
		BeforeTier:    string(alert.BeforeTier),
		AfterTier:     string(alert.AfterTier),
		QuarterPoints: alert.QuarterPoints,
		OccurredAt:    time.Now().UTC(),
	}
}

func (e StandingAlertEvent) Alert() standing.AlertEvent {
	return standing.AlertEvent{
		EmployeeName:  e.EmployeeName,
		QuarterKey:    e.QuarterKey,
		BeforeTier:    standing.Tier(e.BeforeTier),
		AfterTier:     standing.Tier(e.AfterTier),
		QuarterPoints: e.QuarterPoints,
	}
}

func (e StandingAlertEvent) Text() string {
	return e.Alert().Text()
}
