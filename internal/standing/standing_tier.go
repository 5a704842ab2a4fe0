package standing

import "math"

type Tier string

const (
	TierGoodStanding Tier = "Good Standing"
	TierBorderline   Tier = "Borderline"
	TierSuspension   Tier = "Suspension"
	TierFired        Tier = "Fired"
)

// NeutralColor is shown for labels that are not a known tier.
const NeutralColor = "#6c757d"

type tierBand struct {
	tier  Tier
	min   int
	max   int
	color string
}

// bands partition [0, MaxInt] without gaps, in display order.
var bands = []tierBand{
	{TierGoodStanding, 0, 9, "#28a745"},
	{TierBorderline, 10, 19, "#ffc107"},
	{TierSuspension, 20, 24, "#fd7e14"},
	{TierFired, 25, math.MaxInt, "#dc3545"},
}

// Tiers returns every tier from best to worst.
func Tiers() []Tier {
	out := make([]Tier, len(bands))
	for i, b := range bands {
		out[i] = b.tier
	}
	return out
}

// Classify maps a quarter point total to its tier. Negative totals count as 0.
func Classify(points int) Tier {
	p := clampPoints(points)
	for _, b := range bands {
		if p >= b.min && p <= b.max {
			return b.tier
		}
	}
	return TierFired
}

func ParseTier(label string) (Tier, bool) {
	for _, b := range bands {
		if string(b.tier) == label {
			return b.tier, true
		}
	}
	return "", false
}

// Rank is the tier's position in display order, -1 for unknown tiers.
// Alerting never looks at rank.
func (t Tier) Rank() int {
	for i, b := range bands {
		if b.tier == t {
			return i
		}
	}
	return -1
}

func (t Tier) Color() string {
	for _, b := range bands {
		if b.tier == t {
			return b.color
		}
	}
	return NeutralColor
}

// Range returns the inclusive point range; max is math.MaxInt for Fired.
func (t Tier) Range() (min, max int, ok bool) {
	for _, b := range bands {
		if b.tier == t {
			return b.min, b.max, true
		}
	}
	return 0, 0, false
}

// Watched tiers trigger a standing alert on entry.
func (t Tier) Watched() bool {
	return t == TierBorderline || t == TierSuspension || t == TierFired
}

// ColorOf looks a label up without failing.
func ColorOf(label string) string {
	return Tier(label).Color()
}
