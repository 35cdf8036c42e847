// Package timespan provides spans between two times of day, e.g. opening
// hours. The points are zone-less; durations wrap around midnight the way a
// wall clock does.
package timespan

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/ncruces/go-strftime"
	"github.com/pkg/errors"

	"github.com/henderiw/timespan/pkg/span"
	"github.com/henderiw/timespan/pkg/strf"
)

// Time is a zone-less time of day.
type Time struct {
	t civil.Time
}

// TimeOf wraps a civil time as a span point.
func TimeOf(t civil.Time) Time {
	return Time{t: t}
}

// Clock builds a time-of-day point from hour, minute and second.
func Clock(hour, min, sec int) Time {
	return Time{t: civil.Time{Hour: hour, Minute: min, Second: sec}}
}

// Civil returns the underlying civil time.
func (t Time) Civil() civil.Time { return t.t }

func (t Time) sinceMidnight() time.Duration {
	return time.Duration(t.t.Hour)*time.Hour +
		time.Duration(t.t.Minute)*time.Minute +
		time.Duration(t.t.Second)*time.Second +
		time.Duration(t.t.Nanosecond)
}

// anchor places the time of day on a fixed reference date for strftime
// handling and duration arithmetic.
func (t Time) anchor() time.Time {
	return time.Date(2000, time.January, 1, t.t.Hour, t.t.Minute, t.t.Second, t.t.Nanosecond, time.UTC)
}

// Compare returns -1, 0 or +1 ordering the times of day.
func (t Time) Compare(other Time) int {
	switch d := t.sinceMidnight() - other.sinceMidnight(); {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}

// Add displaces the time of day by d, wrapping around midnight.
func (t Time) Add(d time.Duration) Time {
	return Time{t: civil.TimeOf(t.anchor().Add(d))}
}

// Sub displaces the time of day backward by d, wrapping around midnight.
func (t Time) Sub(d time.Duration) Time {
	return t.Add(-d)
}

// DurationSince returns the signed clock difference to other.
func (t Time) DurationSince(other Time) time.Duration {
	return t.sinceMidnight() - other.sinceMidnight()
}

func (t Time) String() string { return t.t.String() }

// ParseText reads the native 15:04:05 form.
func (t Time) ParseText(s string) (Time, error) {
	ct, err := civil.ParseTime(s)
	if err != nil {
		return Time{}, err
	}
	return Time{t: ct}, nil
}

// ParseFormat reads s under a strftime layout.
func (t Time) ParseFormat(s, layout string) (Time, error) {
	parsed, err := strftime.Parse(layout, s)
	if err != nil {
		return Time{}, err
	}
	return Time{t: civil.TimeOf(parsed)}, nil
}

// Format renders the time of day under a strftime layout. Calendar and zone
// directives fail: a time of day carries neither.
func (t Time) Format(layout string) (string, error) {
	if strf.HasDirective(layout, strf.Calendar) || strf.HasDirective(layout, strf.Zone) {
		return "", errors.Errorf("layout %q needs fields a time of day does not carry", layout)
	}
	return strftime.Format(layout, t.anchor()), nil
}

// ParseTime reads a single time-of-day point under a strftime layout.
func ParseTime(s, layout string) (Time, error) {
	var t Time
	return t.ParseFormat(s, layout)
}

// Span is a span between two times of day.
type Span = span.Span[Time]

// New validates start < end and builds a span.
func New(start, end Time) (Span, error) {
	return span.New(start, end)
}

// Parse reads the default form, e.g. "09:00:00 - 17:00:00".
func Parse(s string) (Span, error) {
	return span.Parse[Time](s)
}

// ParseFormat reads a span using a {start}/{end} template and one strftime
// layout per placeholder.
func ParseFormat(s, tmpl, startLayout, endLayout string) (Span, error) {
	return span.ParseFormat[Time](s, tmpl, startLayout, endLayout)
}

// Format defers rendering of sp under tmpl.
func Format(sp Span, tmpl, startLayout, endLayout string) span.DelayedFormat[Time] {
	return span.Format(sp, tmpl, startLayout, endLayout)
}
