package standing_test

import (
	"math"
	"testing"

	"go-writeup/internal/standing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Boundaries(t *testing.T) {
	cases := map[int]standing.Tier{
		-5:          standing.TierGoodStanding,
		0:           standing.TierGoodStanding,
		9:           standing.TierGoodStanding,
		10:          standing.TierBorderline,
		19:          standing.TierBorderline,
		20:          standing.TierSuspension,
		24:          standing.TierSuspension,
		25:          standing.TierFired,
		1000000:     standing.TierFired,
		math.MaxInt: standing.TierFired,
	}
	for points, want := range cases {
		assert.Equal(t, want, standing.Classify(points), "points=%d", points)
	}
}

func TestClassify_Partition(t *testing.T) {
	for p := 0; p <= 200; p++ {
		tier := standing.Classify(p)
		min, max, ok := tier.Range()
		assert.True(t, ok)
		assert.True(t, p >= min && p <= max, "points=%d tier=%s", p, tier)
	}
}

func TestTier_Color(t *testing.T) {
	assert.Equal(t, "#28a745", standing.TierGoodStanding.Color())
	assert.Equal(t, "#ffc107", standing.TierBorderline.Color())
	assert.Equal(t, "#fd7e14", standing.TierSuspension.Color())
	assert.Equal(t, "#dc3545", standing.TierFired.Color())
	assert.Equal(t, standing.NeutralColor, standing.ColorOf("Probation"))
	assert.Equal(t, standing.NeutralColor, standing.ColorOf(""))
}

func TestTier_Order(t *testing.T) {
	tiers := standing.Tiers()
	assert.Equal(t, []standing.Tier{
		standing.TierGoodStanding,
		standing.TierBorderline,
		standing.TierSuspension,
		standing.TierFired,
	}, tiers)
	for i, tier := range tiers {
		assert.Equal(t, i, tier.Rank())
	}
	assert.Equal(t, -1, standing.Tier("Probation").Rank())
}

func TestParseTier(t *testing.T) {
	tier, ok := standing.ParseTier("Suspension")
	assert.True(t, ok)
	assert.Equal(t, standing.TierSuspension, tier)

	_, ok = standing.ParseTier("suspension")
	assert.False(t, ok)
}
