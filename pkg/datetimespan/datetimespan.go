// Package datetimespan provides spans between two zone-naive date+time
// points, for ranges where the time zone does not matter.
package datetimespan

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/ncruces/go-strftime"
	"github.com/pkg/errors"

	"github.com/henderiw/timespan/pkg/span"
	"github.com/henderiw/timespan/pkg/strf"
)

// DateTime is a zone-naive date and time of day.
type DateTime struct {
	dt civil.DateTime
}

// DateTimeOf wraps a civil datetime as a span point.
func DateTimeOf(dt civil.DateTime) DateTime {
	return DateTime{dt: dt}
}

// Civil returns the underlying civil datetime.
func (d DateTime) Civil() civil.DateTime { return d.dt }

// utc pins the naive fields to UTC for duration arithmetic.
func (d DateTime) utc() time.Time { return d.dt.In(time.UTC) }

// Compare returns -1, 0 or +1 ordering the datetimes.
func (d DateTime) Compare(other DateTime) int {
	switch {
	case d.dt.Before(other.dt):
		return -1
	case d.dt.After(other.dt):
		return 1
	}
	return 0
}

// Add displaces the datetime by dur.
func (d DateTime) Add(dur time.Duration) DateTime {
	return DateTime{dt: civil.DateTimeOf(d.utc().Add(dur))}
}

// Sub displaces the datetime backward by dur.
func (d DateTime) Sub(dur time.Duration) DateTime {
	return d.Add(-dur)
}

// DurationSince returns the signed difference to other.
func (d DateTime) DurationSince(other DateTime) time.Duration {
	return d.utc().Sub(other.utc())
}

func (d DateTime) String() string { return d.dt.String() }

// ParseText reads the native 2006-01-02T15:04:05 form.
func (d DateTime) ParseText(s string) (DateTime, error) {
	cdt, err := civil.ParseDateTime(s)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{dt: cdt}, nil
}

// ParseFormat reads s under a strftime layout.
func (d DateTime) ParseFormat(s, layout string) (DateTime, error) {
	parsed, err := strftime.Parse(layout, s)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{dt: civil.DateTimeOf(parsed)}, nil
}

// Format renders the datetime under a strftime layout. Zone directives fail:
// the point is zone-naive.
func (d DateTime) Format(layout string) (string, error) {
	if strf.HasDirective(layout, strf.Zone) {
		return "", errors.Errorf("layout %q needs a zone a naive datetime does not carry", layout)
	}
	return strftime.Format(layout, d.utc()), nil
}

// Span is a span between two zone-naive datetimes.
type Span = span.Span[DateTime]

// New validates start < end and builds a span.
func New(start, end DateTime) (Span, error) {
	return span.New(start, end)
}

// Parse reads the default form, e.g.
// "2018-05-15T21:00:00 - 2018-06-14T21:00:00".
func Parse(s string) (Span, error) {
	return span.Parse[DateTime](s)
}

// ParseFormat reads a span using a {start}/{end} template and one strftime
// layout per placeholder.
func ParseFormat(s, tmpl, startLayout, endLayout string) (Span, error) {
	return span.ParseFormat[DateTime](s, tmpl, startLayout, endLayout)
}

// Format defers rendering of sp under tmpl.
func Format(sp Span, tmpl, startLayout, endLayout string) span.DelayedFormat[DateTime] {
	return span.Format(sp, tmpl, startLayout, endLayout)
}
