// Package standing holds the quarterly standing rules: quarter bucketing,
// late-arrival points, tier classification and alert decisions. Every
// function here is pure; callers pass in a snapshot of write-ups.
package standing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Quarter identifies a calendar quarter. Number is always 1..4.
type Quarter struct {
	Year   int
	Number int
}

func QuarterOf(d time.Time) Quarter {
	return Quarter{Year: d.Year(), Number: (int(d.Month())-1)/3 + 1}
}

func (q Quarter) Key() string {
	return fmt.Sprintf("%d Q%d", q.Year, q.Number)
}

func (q Quarter) Less(other Quarter) bool {
	if q.Year != other.Year {
		return q.Year < other.Year
	}
	return q.Number < other.Number
}

// Start returns the first day of the quarter in UTC.
func (q Quarter) Start() time.Time {
	return time.Date(q.Year, time.Month((q.Number-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
}

// End returns the last day of the quarter in UTC.
func (q Quarter) End() time.Time {
	return q.Start().AddDate(0, 3, -1)
}

// QuarterKey renders d as "{year} Q{n}", e.g. "2025 Q1".
func QuarterKey(d time.Time) string {
	return QuarterOf(d).Key()
}

func CurrentQuarterKey(now time.Time) string {
	return QuarterKey(now)
}

// ParseQuarterKey accepts keys produced by QuarterKey. Surrounding space and
// a lower-case "q" are tolerated.
func ParseQuarterKey(key string) (Quarter, bool) {
	fields := strings.Fields(strings.ToUpper(key))
	if len(fields) != 2 || !strings.HasPrefix(fields[1], "Q") {
		return Quarter{}, false
	}
	year, err := strconv.Atoi(fields[0])
	if err != nil || year <= 0 {
		return Quarter{}, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(fields[1], "Q"))
	if err != nil || n < 1 || n > 4 {
		return Quarter{}, false
	}
	return Quarter{Year: year, Number: n}, true
}

// CompareQuarterKeys orders keys by (year, quarter). Unparseable keys sort
// before every valid key and compare equal to each other.
func CompareQuarterKeys(a, b string) int {
	qa, okA := ParseQuarterKey(a)
	qb, okB := ParseQuarterKey(b)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return -1
	case !okB:
		return 1
	case qa.Less(qb):
		return -1
	case qb.Less(qa):
		return 1
	default:
		return 0
	}
}

// ParseIncidentDate normalises the date forms the store and the API hand us.
// Strings must be ISO-8601 (a plain date or an RFC 3339 timestamp, "Z"
// allowed). Anything else, including the zero time, reports ok=false so the
// caller can skip the record.
func ParseIncidentDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return dateOnly(d)
	case *time.Time:
		if d == nil {
			return time.Time{}, false
		}
		return dateOnly(*d)
	case string:
		return parseISO(d)
	case *string:
		if d == nil {
			return time.Time{}, false
		}
		return parseISO(*d)
	default:
		return time.Time{}, false
	}
}

func parseISO(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t)
		}
	}
	return time.Time{}, false
}

// dateOnly keeps the calendar date as written in t's own location.
func dateOnly(t time.Time) (time.Time, bool) {
	if t.IsZero() {
		return time.Time{}, false
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
}
