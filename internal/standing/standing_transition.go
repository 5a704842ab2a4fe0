package standing

import (
	"fmt"
	"strings"
)

type AlertEvent struct {
	EmployeeName  string `json:"employee_name"`
	QuarterKey    string `json:"quarter"`
	BeforeTier    Tier   `json:"before_tier"`
	AfterTier     Tier   `json:"after_tier"`
	QuarterPoints int    `json:"quarter_points"`
}

// ShouldAlert fires only on entry into a watched tier. Unchanged tiers,
// moves into Good Standing and moves out of a watched tier stay quiet.
func ShouldAlert(before, after Tier) bool {
	return after.Watched() && after != before
}

// EvaluateTransition compares the employee's standing in quarterKey before
// and after a write-up change. The tier is recomputed from each snapshot;
// nothing is cached between calls.
func EvaluateTransition[W Scored](employeeName string, before, after []W, quarterKey string) (AlertEvent, bool) {
	beforeTier := Classify(PointsInQuarter(before, quarterKey))
	afterPoints := PointsInQuarter(after, quarterKey)
	afterTier := Classify(afterPoints)

	if !ShouldAlert(beforeTier, afterTier) {
		return AlertEvent{}, false
	}
	return AlertEvent{
		EmployeeName:  employeeName,
		QuarterKey:    quarterKey,
		BeforeTier:    beforeTier,
		AfterTier:     afterTier,
		QuarterPoints: afterPoints,
	}, true
}

// Text renders the alert as a Slack mrkdwn message.
func (e AlertEvent) Text() string {
	var b strings.Builder
	b.WriteString("*Standing Alert*\n")
	fmt.Fprintf(&b, "• Team Member: %s\n", e.EmployeeName)
	fmt.Fprintf(&b, "• Quarter: %s\n", e.QuarterKey)
	fmt.Fprintf(&b, "• Standing: %s → *%s*\n", e.BeforeTier, e.AfterTier)
	fmt.Fprintf(&b, "• Quarter Points: %d", e.QuarterPoints)
	return b.String()
}
