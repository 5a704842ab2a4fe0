package standing

import (
	"sort"
	"time"
)

// Scored is the view of a write-up the aggregator needs. IncidentDay reports
// ok=false when the record has no usable incident date.
type Scored interface {
	StandingPoints() int
	IncidentDay() (time.Time, bool)
}

// Entry is a minimal Scored value, handy for callers that only have raw
// points and dates.
type Entry struct {
	Points       int
	IncidentDate any
}

func (e Entry) StandingPoints() int { return e.Points }

func (e Entry) IncidentDay() (time.Time, bool) { return ParseIncidentDate(e.IncidentDate) }

type QuarterBucket struct {
	QuarterKey  string `json:"quarter"`
	PointsTotal int    `json:"points"`
}

// QuarterTotals sums points per quarter key. Records without a usable date
// are left out.
func QuarterTotals[W Scored](ws []W) map[string]int {
	totals := make(map[string]int)
	for _, w := range ws {
		d, ok := w.IncidentDay()
		if !ok {
			continue
		}
		totals[QuarterKey(d)] += clampPoints(w.StandingPoints())
	}
	return totals
}

// SortedQuarterTotals is QuarterTotals in ascending chronological order.
func SortedQuarterTotals[W Scored](ws []W) []QuarterBucket {
	totals := QuarterTotals(ws)
	out := make([]QuarterBucket, 0, len(totals))
	for k, v := range totals {
		out = append(out, QuarterBucket{QuarterKey: k, PointsTotal: v})
	}
	sort.Slice(out, func(i, j int) bool {
		return CompareQuarterKeys(out[i].QuarterKey, out[j].QuarterKey) < 0
	})
	return out
}

func PointsInQuarter[W Scored](ws []W, quarterKey string) int {
	total := 0
	for _, w := range ws {
		d, ok := w.IncidentDay()
		if !ok {
			continue
		}
		if QuarterKey(d) == quarterKey {
			total += clampPoints(w.StandingPoints())
		}
	}
	return total
}

// AllTimePoints counts every record, dated or not.
func AllTimePoints[W Scored](ws []W) int {
	total := 0
	for _, w := range ws {
		total += clampPoints(w.StandingPoints())
	}
	return total
}

// UnattributedPoints is the point mass AllTimePoints has but QuarterTotals
// does not.
func UnattributedPoints[W Scored](ws []W) int {
	total := 0
	for _, w := range ws {
		if _, ok := w.IncidentDay(); ok {
			continue
		}
		total += clampPoints(w.StandingPoints())
	}
	return total
}

// QuarterKeys returns every quarter with at least one dated record, newest
// first.
func QuarterKeys[W Scored](ws []W) []string {
	buckets := SortedQuarterTotals(ws)
	out := make([]string, len(buckets))
	for i, b := range buckets {
		out[len(buckets)-1-i] = b.QuarterKey
	}
	return out
}

type StandingReport struct {
	QuarterKey    string          `json:"quarter"`
	QuarterPoints int             `json:"quarter_points"`
	AllTimePoints int             `json:"all_time_points"`
	Tier          Tier            `json:"tier"`
	Color         string          `json:"color"`
	History       []QuarterBucket `json:"history"`
}

func Report[W Scored](ws []W, quarterKey string) StandingReport {
	qp := PointsInQuarter(ws, quarterKey)
	tier := Classify(qp)
	return StandingReport{
		QuarterKey:    quarterKey,
		QuarterPoints: qp,
		AllTimePoints: AllTimePoints(ws),
		Tier:          tier,
		Color:         tier.Color(),
		History:       SortedQuarterTotals(ws),
	}
}
