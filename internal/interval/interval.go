// Package interval implements half-open time ranges within one calendar day,
// measured in hours from midnight.
package interval

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

const (
	DayStart = 0.0
	DayEnd   = 24.0
)

// Interval is the half-open range [Start, End) in hours from midnight.
type Interval struct {
	Start float64
	End   float64
}

func New(start, end float64) Interval {
	return Interval{Start: start, End: end}
}

// FromClock builds an interval from two HH:MM strings.
func FromClock(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e}, nil
}

// Length returns End - Start.
func (i Interval) Length() float64 {
	return i.End - i.Start
}

// Valid reports whether Start < End and both lie within the day.
func (i Interval) Valid() bool {
	return i.Start < i.End && i.Start >= DayStart && i.End <= DayEnd
}

// Contains reports whether other lies entirely inside i.
func (i Interval) Contains(other Interval) bool {
	return other.Start >= i.Start && other.End <= i.End
}

// Expand widens the interval by buffer hours on both sides, clamped to the day.
func (i Interval) Expand(buffer float64) Interval {
	return Interval{
		Start: math.Max(i.Start-buffer, DayStart),
		End:   math.Min(i.End+buffer, DayEnd),
	}
}

func (i Interval) String() string {
	return Clock(i.Start) + "-" + Clock(i.End)
}

// Overlaps reports whether a and b share any time. Touching endpoints do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && a.End > b.Start
}

// Subtract removes every busy interval from free and returns the remaining
// fragments of at least minLength hours, ordered by start.
func Subtract(free Interval, busy []Interval, minLength float64) []Interval {
	fragments := []Interval{free}
	for _, b := range busy {
		next := make([]Interval, 0, len(fragments)+1)
		for _, f := range fragments {
			if !Overlaps(f, b) {
				next = append(next, f)
				continue
			}
			if f.Start < b.Start {
				next = append(next, Interval{Start: f.Start, End: b.Start})
			}
			if f.End > b.End {
				next = append(next, Interval{Start: b.End, End: f.End})
			}
		}
		fragments = next
	}

	result := make([]Interval, 0, len(fragments))
	for _, f := range fragments {
		if f.Length() >= minLength {
			result = append(result, f)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Start < result[j].Start
	})
	return result
}

// ParseClock converts an HH:MM (or HH:MM:SS) string to hours from midnight.
func ParseClock(clock string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 24 {
		return 0, fmt.Errorf("invalid hour in %q", clock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("invalid minute in %q", clock)
	}
	return float64(h) + float64(m)/60, nil
}

// Clock formats hours from midnight as HH:MM, rounding to the nearest minute.
func Clock(hours float64) string {
	total := int(math.Round(hours * 60))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
