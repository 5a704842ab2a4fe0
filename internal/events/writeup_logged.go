package events

import (
	"fmt"
	"time"
)

const WriteUpLoggedTopic = "hr.writeup.logged.v1"

type WriteUpLoggedEvent struct {
	EventType       string    `json:"event_type"`
	RequestID       string    `json:"request_id,omitempty"`
	WriteUpID       string    `json:"writeup_id"`
	EmployeeID      string    `json:"employee_id"`
	EmployeeName    string    `json:"employee_name"`
	CategoryName    string    `json:"category_name"`
	IncidentDate    string    `json:"incident_date"`
	Reason          string    `json:"reason"`
	Leader          string    `json:"leader"`
	SecondaryLeader string    `json:"secondary_leader"`
	Points          int       `json:"points"`
	CreatedBy       string    `json:"created_by"`
	OccurredAt      time.Time `json:"occurred_at"`
}

const notProvided = "(not provided)"

func orNotProvided(s string) string {
	if s == "" {
		return notProvided
	}
	return s
}

// Text renders the write-up log line posted to the write-up webhook.
func (e WriteUpLoggedEvent) Text() string {
	return fmt.Sprintf(
		"*New Write-Up Logged*\n"+
			"• Date: %s\n"+
			"• Team Member: %s\n"+
			"• Category: %s\n"+
			"• Reason: %s\n"+
			"• Lead: %s\n"+
			"• Secondary Lead: %s",
		e.IncidentDate,
		e.EmployeeName,
		e.CategoryName,
		orNotProvided(e.Reason),
		orNotProvided(e.Leader),
		orNotProvided(e.SecondaryLeader),
	)
}
