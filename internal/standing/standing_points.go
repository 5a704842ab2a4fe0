package standing

const (
	lateGraceMinutes = 5
	lateBlockMinutes = 10
)

// LateArrivalPoints: 0 for 0-5 minutes, then 1 + (minutes-5)/10, so 6-14 is
// 1 point and 15-24 is 2. Negative input counts as on time.
func LateArrivalPoints(minutesLate int) int {
	if minutesLate <= lateGraceMinutes {
		return 0
	}
	return 1 + (minutesLate-lateGraceMinutes)/lateBlockMinutes
}

// PointInput is everything needed to price one write-up.
type PointInput struct {
	DocumentedConversation bool
	BasePoints             int
	Incremental            bool
	MinutesLate            int
	Override               *int
}

// ResolvePoints prices a write-up. A documented conversation is always 0 and
// ignores every other field, override included. An override replaces the
// computed value.
func ResolvePoints(in PointInput) int {
	if in.DocumentedConversation {
		return 0
	}

	points := in.BasePoints
	if in.Incremental {
		points = LateArrivalPoints(in.MinutesLate)
	}
	if in.Override != nil {
		points = *in.Override
	}
	return clampPoints(points)
}

func clampPoints(p int) int {
	if p < 0 {
		return 0
	}
	return p
}
