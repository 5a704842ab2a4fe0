package standing_test

import (
	"testing"

	"go-writeup/internal/standing"

	"github.com/stretchr/testify/assert"
)

func TestShouldAlert(t *testing.T) {
	cases := []struct {
		name   string
		before standing.Tier
		after  standing.Tier
		want   bool
	}{
		{"good to borderline", standing.TierGoodStanding, standing.TierBorderline, true},
		{"borderline unchanged", standing.TierBorderline, standing.TierBorderline, false},
		{"suspension to good after delete", standing.TierSuspension, standing.TierGoodStanding, false},
		{"borderline to fired", standing.TierBorderline, standing.TierFired, true},
		{"borderline to suspension", standing.TierBorderline, standing.TierSuspension, true},
		{"fired to suspension", standing.TierFired, standing.TierSuspension, true},
		{"good unchanged", standing.TierGoodStanding, standing.TierGoodStanding, false},
		{"fired unchanged", standing.TierFired, standing.TierFired, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, standing.ShouldAlert(tc.before, tc.after))
		})
	}
}

func TestEvaluateTransition_EndToEnd(t *testing.T) {
	before := []standing.Entry{
		{Points: 5, IncidentDate: "2025-01-10"},
		{Points: 3, IncidentDate: "2025-02-20"},
		{Points: 4, IncidentDate: "2024-12-01"},
	}

	assert.Equal(t, standing.TierGoodStanding, standing.Classify(standing.PointsInQuarter(before, "2025 Q1")))
	assert.Equal(t, standing.TierGoodStanding, standing.Classify(standing.PointsInQuarter(before, "2025 Q3")))

	after := append(append([]standing.Entry{}, before...), standing.Entry{Points: 2, IncidentDate: "2025-03-05"})

	alert, ok := standing.EvaluateTransition("Jordan Lee", before, after, "2025 Q1")
	assert.True(t, ok)
	assert.Equal(t, standing.AlertEvent{
		EmployeeName:  "Jordan Lee",
		QuarterKey:    "2025 Q1",
		BeforeTier:    standing.TierGoodStanding,
		AfterTier:     standing.TierBorderline,
		QuarterPoints: 10,
	}, alert)
}

func TestEvaluateTransition_OtherQuarterIgnored(t *testing.T) {
	before := []standing.Entry{{Points: 9, IncidentDate: "2025-01-10"}}
	after := append(append([]standing.Entry{}, before...), standing.Entry{Points: 12, IncidentDate: "2025-05-01"})

	_, ok := standing.EvaluateTransition("A", before, after, "2025 Q1")
	assert.False(t, ok)

	alert, ok := standing.EvaluateTransition("A", before, after, "2025 Q2")
	assert.True(t, ok)
	assert.Equal(t, 12, alert.QuarterPoints)
}

func TestEvaluateTransition_Deletion(t *testing.T) {
	before := []standing.Entry{
		{Points: 15, IncidentDate: "2025-01-10"},
		{Points: 7, IncidentDate: "2025-01-11"},
	}

	t.Run("exit to good standing is quiet", func(t *testing.T) {
		after := []standing.Entry{{Points: 7, IncidentDate: "2025-01-11"}}
		_, ok := standing.EvaluateTransition("A", before, after, "2025 Q1")
		assert.False(t, ok)
	})

	t.Run("move between watched tiers still alerts", func(t *testing.T) {
		after := before[:1]
		alert, ok := standing.EvaluateTransition("A", before, after, "2025 Q1")
		assert.True(t, ok)
		assert.Equal(t, standing.TierSuspension, alert.BeforeTier)
		assert.Equal(t, standing.TierBorderline, alert.AfterTier)
		assert.Equal(t, 15, alert.QuarterPoints)
	})
}

func TestAlertEvent_Text(t *testing.T) {
	text := standing.AlertEvent{
		EmployeeName:  "Jordan Lee",
		QuarterKey:    "2025 Q1",
		BeforeTier:    standing.TierGoodStanding,
		AfterTier:     standing.TierBorderline,
		QuarterPoints: 10,
	}.Text()

	assert.Equal(t, "*Standing Alert*\n"+
		"• Team Member: Jordan Lee\n"+
		"• Quarter: 2025 Q1\n"+
		"• Standing: Good Standing → *Borderline*\n"+
		"• Quarter Points: 10", text)
}
