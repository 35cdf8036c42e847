// Package zonedspan provides spans between two zone-aware instants. Naive
// spans enter the zoned world through FromUTC or FromLocal; the latter fails
// when a zone transition makes the wall clock ambiguous.
package zonedspan

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/ncruces/go-strftime"
	"github.com/pkg/errors"

	"github.com/henderiw/timespan/pkg/datetimespan"
	"github.com/henderiw/timespan/pkg/span"
)

const displayLayout = "2006-01-02 15:04:05 MST"

// Instant is a zone-aware point in time.
type Instant struct {
	t time.Time
}

// InstantOf wraps a time as a span point.
func InstantOf(t time.Time) Instant {
	return Instant{t: t}
}

// Time returns the underlying time.
func (i Instant) Time() time.Time { return i.t }

// Compare returns -1, 0 or +1 ordering the instants.
func (i Instant) Compare(other Instant) int {
	return i.t.Compare(other.t)
}

// Add displaces the instant by d.
func (i Instant) Add(d time.Duration) Instant {
	return Instant{t: i.t.Add(d)}
}

// Sub displaces the instant backward by d.
func (i Instant) Sub(d time.Duration) Instant {
	return Instant{t: i.t.Add(-d)}
}

// DurationSince returns the signed difference to other.
func (i Instant) DurationSince(other Instant) time.Duration {
	return i.t.Sub(other.t)
}

func (i Instant) String() string { return i.t.Format(displayLayout) }

var parseLayouts = []string{
	"2006-01-02T15:04:05 -0700",
	time.RFC3339,
	displayLayout,
}

// ParseText reads an instant from one of the supported native forms, e.g.
// "2017-01-01T15:10:00 +0200".
func (i Instant) ParseText(s string) (Instant, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Instant{t: t}, nil
		}
	}
	return Instant{}, errors.Wrapf(span.ErrBadFormat, "unrecognized instant %q", s)
}

// ParseFormat reads s under a strftime layout. Without a zone directive the
// instant comes back in UTC.
func (i Instant) ParseFormat(s, layout string) (Instant, error) {
	parsed, err := strftime.Parse(layout, s)
	if err != nil {
		return Instant{}, err
	}
	return Instant{t: parsed}, nil
}

// Format renders the instant under a strftime layout.
func (i Instant) Format(layout string) (string, error) {
	return strftime.Format(layout, i.t), nil
}

// Span is a span between two zone-aware instants.
type Span = span.Span[Instant]

// New validates start < end and builds a span.
func New(start, end Instant) (Span, error) {
	return span.New(start, end)
}

// Parse reads the default form, e.g.
// "2017-01-01T15:10:00 +0200 - 2017-01-02T09:30:00 +0200".
func Parse(s string) (Span, error) {
	return span.Parse[Instant](s)
}

// ParseFormat reads a span using a {start}/{end} template and one strftime
// layout per placeholder.
func ParseFormat(s, tmpl, startLayout, endLayout string) (Span, error) {
	return span.ParseFormat[Instant](s, tmpl, startLayout, endLayout)
}

// Format defers rendering of sp under tmpl.
func Format(sp Span, tmpl, startLayout, endLayout string) span.DelayedFormat[Instant] {
	return span.Format(sp, tmpl, startLayout, endLayout)
}

// FromUTC reads a zone-naive span as UTC instants represented in loc.
func FromUTC(sp datetimespan.Span, loc *time.Location) Span {
	start := InstantOf(sp.Start().Civil().In(time.UTC).In(loc))
	end := InstantOf(sp.End().Civil().In(time.UTC).In(loc))
	// ordering survives the conversion, reconstruction cannot fail
	zs, _ := New(start, end)
	return zs
}

// FromLocal resolves a zone-naive span against the wall clock of loc. A wall
// time that a zone transition skips or repeats maps to zero or two instants
// and fails with span.ErrLocalAmbiguous.
func FromLocal(sp datetimespan.Span, loc *time.Location) (Span, error) {
	start, err := resolveLocal(sp.Start().Civil(), loc)
	if err != nil {
		return Span{}, err
	}
	end, err := resolveLocal(sp.End().Civil(), loc)
	if err != nil {
		return Span{}, err
	}
	return New(InstantOf(start), InstantOf(end))
}

// resolveLocal finds the instants in loc whose wall clock reads dt by probing
// the zone offsets on both sides of the nearest transition. Exactly one
// candidate is a valid local time.
func resolveLocal(dt civil.DateTime, loc *time.Location) (time.Time, error) {
	guess := dt.In(loc)
	var candidates []time.Time
	for _, probe := range []time.Time{guess.Add(-14 * time.Hour), guess, guess.Add(14 * time.Hour)} {
		_, offset := probe.Zone()
		cand := dt.In(time.UTC).Add(-time.Duration(offset) * time.Second).In(loc)
		if civil.DateTimeOf(cand) != dt {
			continue
		}
		dup := false
		for _, c := range candidates {
			if c.Equal(cand) {
				dup = true
				break
			}
		}
		if !dup {
			candidates = append(candidates, cand)
		}
	}
	if len(candidates) != 1 {
		return time.Time{}, span.ErrLocalAmbiguous
	}
	return candidates[0], nil
}
