package standing_test

import (
	"testing"

	"go-writeup/internal/standing"

	"github.com/stretchr/testify/assert"
)

func TestLateArrivalPoints_Windows(t *testing.T) {
	for m := 0; m <= 5; m++ {
		assert.Equal(t, 0, standing.LateArrivalPoints(m), "minutes=%d", m)
	}
	for m := 6; m <= 14; m++ {
		assert.Equal(t, 1, standing.LateArrivalPoints(m), "minutes=%d", m)
	}
	for m := 15; m <= 24; m++ {
		assert.Equal(t, 2, standing.LateArrivalPoints(m), "minutes=%d", m)
	}
	assert.Equal(t, 3, standing.LateArrivalPoints(25))
	assert.Equal(t, 3, standing.LateArrivalPoints(34))
	assert.Equal(t, 4, standing.LateArrivalPoints(35))
	assert.Equal(t, 60, standing.LateArrivalPoints(600))
}

func TestLateArrivalPoints_Formula(t *testing.T) {
	prev := 0
	for m := 0; m <= 2000; m++ {
		got := standing.LateArrivalPoints(m)
		assert.GreaterOrEqual(t, got, prev, "not monotonic at %d", m)
		if m >= 6 {
			assert.Equal(t, 1+(m-5)/10, got, "minutes=%d", m)
		}
		prev = got
	}
}

func TestLateArrivalPoints_Negative(t *testing.T) {
	assert.Equal(t, 0, standing.LateArrivalPoints(-30))
}

func TestResolvePoints(t *testing.T) {
	override := func(v int) *int { return &v }

	t.Run("fixed rule uses base points", func(t *testing.T) {
		assert.Equal(t, 4, standing.ResolvePoints(standing.PointInput{BasePoints: 4}))
	})

	t.Run("incremental rule uses minutes late", func(t *testing.T) {
		got := standing.ResolvePoints(standing.PointInput{BasePoints: 9, Incremental: true, MinutesLate: 17})
		assert.Equal(t, 2, got)
	})

	t.Run("override replaces computed value", func(t *testing.T) {
		got := standing.ResolvePoints(standing.PointInput{BasePoints: 4, Override: override(1)})
		assert.Equal(t, 1, got)

		got = standing.ResolvePoints(standing.PointInput{Incremental: true, MinutesLate: 40, Override: override(0)})
		assert.Equal(t, 0, got)
	})

	t.Run("documented conversation is always zero", func(t *testing.T) {
		got := standing.ResolvePoints(standing.PointInput{
			DocumentedConversation: true,
			BasePoints:             5,
			Incremental:            true,
			MinutesLate:            90,
			Override:               override(7),
		})
		assert.Equal(t, 0, got)
	})

	t.Run("negative result clamps to zero", func(t *testing.T) {
		assert.Equal(t, 0, standing.ResolvePoints(standing.PointInput{Override: override(-3)}))
	})
}
