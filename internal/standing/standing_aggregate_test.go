package standing_test

import (
	"testing"
	"time"

	"go-writeup/internal/standing"

	"github.com/stretchr/testify/assert"
)

func sampleHistory() []standing.Entry {
	return []standing.Entry{
		{Points: 3, IncidentDate: "2025-01-15"},
		{Points: 5, IncidentDate: date(2025, time.March, 2)},
		{Points: 2, IncidentDate: "2024-11-30"},
		{Points: 4, IncidentDate: "2025-04-01T10:00:00Z"},
		{Points: 6, IncidentDate: "not a date"},
		{Points: 1, IncidentDate: nil},
		{Points: -2, IncidentDate: "2025-02-01"},
	}
}

func TestQuarterTotals(t *testing.T) {
	got := standing.QuarterTotals(sampleHistory())
	assert.Equal(t, map[string]int{
		"2024 Q4": 2,
		"2025 Q1": 8,
		"2025 Q2": 4,
	}, got)
}

func TestQuarterTotals_Idempotent(t *testing.T) {
	ws := sampleHistory()
	assert.Equal(t, standing.QuarterTotals(ws), standing.QuarterTotals(ws))
}

func TestSortedQuarterTotals(t *testing.T) {
	got := standing.SortedQuarterTotals(sampleHistory())
	assert.Equal(t, []standing.QuarterBucket{
		{QuarterKey: "2024 Q4", PointsTotal: 2},
		{QuarterKey: "2025 Q1", PointsTotal: 8},
		{QuarterKey: "2025 Q2", PointsTotal: 4},
	}, got)

	assert.Empty(t, standing.SortedQuarterTotals([]standing.Entry{}))
}

func TestPointsInQuarter(t *testing.T) {
	ws := sampleHistory()
	assert.Equal(t, 8, standing.PointsInQuarter(ws, "2025 Q1"))
	assert.Equal(t, 0, standing.PointsInQuarter(ws, "2023 Q1"))
	assert.Equal(t, 0, standing.PointsInQuarter([]standing.Entry(nil), "2025 Q1"))
}

func TestAllTimePoints_IncludesUndated(t *testing.T) {
	ws := sampleHistory()
	assert.Equal(t, 21, standing.AllTimePoints(ws))
	assert.Equal(t, 7, standing.UnattributedPoints(ws))
}

func TestConsistency(t *testing.T) {
	ws := sampleHistory()
	sum := 0
	for _, v := range standing.QuarterTotals(ws) {
		sum += v
	}
	assert.Less(t, sum, standing.AllTimePoints(ws))
	assert.Equal(t, standing.AllTimePoints(ws), sum+standing.UnattributedPoints(ws))

	dated := []standing.Entry{
		{Points: 3, IncidentDate: "2025-01-15"},
		{Points: 4, IncidentDate: "2025-07-15"},
	}
	sum = 0
	for _, v := range standing.QuarterTotals(dated) {
		sum += v
	}
	assert.Equal(t, standing.AllTimePoints(dated), sum)
}

func TestQuarterKeys(t *testing.T) {
	assert.Equal(t, []string{"2025 Q2", "2025 Q1", "2024 Q4"}, standing.QuarterKeys(sampleHistory()))
}

func TestReport(t *testing.T) {
	r := standing.Report(sampleHistory(), "2025 Q1")
	assert.Equal(t, "2025 Q1", r.QuarterKey)
	assert.Equal(t, 8, r.QuarterPoints)
	assert.Equal(t, 21, r.AllTimePoints)
	assert.Equal(t, standing.TierGoodStanding, r.Tier)
	assert.Equal(t, "#28a745", r.Color)
	assert.Len(t, r.History, 3)
}
