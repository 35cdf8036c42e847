// Package datespan provides spans between two calendar dates, e.g. holidays.
// The points are zone-less; durations count whole days.
package datespan

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/ncruces/go-strftime"
	"github.com/pkg/errors"

	"github.com/henderiw/timespan/pkg/span"
	"github.com/henderiw/timespan/pkg/strf"
)

const day = 24 * time.Hour

// Date is a zone-less calendar date.
type Date struct {
	d civil.Date
}

// DateOf wraps a civil date as a span point.
func DateOf(d civil.Date) Date {
	return Date{d: d}
}

// YMD builds a date point from year, month and day.
func YMD(year int, month time.Month, dayOfMonth int) Date {
	return Date{d: civil.Date{Year: year, Month: month, Day: dayOfMonth}}
}

// Civil returns the underlying civil date.
func (d Date) Civil() civil.Date { return d.d }

// Compare returns -1, 0 or +1 ordering the dates.
func (d Date) Compare(other Date) int {
	switch {
	case d.d.Before(other.d):
		return -1
	case d.d.After(other.d):
		return 1
	}
	return 0
}

// Add displaces the date by the whole days in dur; fractions of a day are
// dropped.
func (d Date) Add(dur time.Duration) Date {
	return Date{d: d.d.AddDays(int(dur / day))}
}

// Sub displaces the date backward by the whole days in dur.
func (d Date) Sub(dur time.Duration) Date {
	return d.Add(-dur)
}

// DurationSince returns the signed day difference to other.
func (d Date) DurationSince(other Date) time.Duration {
	return time.Duration(d.d.DaysSince(other.d)) * day
}

func (d Date) String() string { return d.d.String() }

// ParseText reads the native 2006-01-02 form.
func (d Date) ParseText(s string) (Date, error) {
	cd, err := civil.ParseDate(s)
	if err != nil {
		return Date{}, err
	}
	return Date{d: cd}, nil
}

// ParseFormat reads s under a strftime layout.
func (d Date) ParseFormat(s, layout string) (Date, error) {
	parsed, err := strftime.Parse(layout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{d: civil.DateOf(parsed)}, nil
}

// Format renders the date under a strftime layout. Clock and zone directives
// fail: a calendar date carries neither.
func (d Date) Format(layout string) (string, error) {
	if strf.HasDirective(layout, strf.Clock) || strf.HasDirective(layout, strf.Zone) {
		return "", errors.Errorf("layout %q needs fields a calendar date does not carry", layout)
	}
	return strftime.Format(layout, d.d.In(time.UTC)), nil
}

// Span is a span between two calendar dates.
type Span = span.Span[Date]

// New validates start < end and builds a span.
func New(start, end Date) (Span, error) {
	return span.New(start, end)
}

// Parse reads the default form, e.g. "2017-04-15 - 2017-08-15".
func Parse(s string) (Span, error) {
	return span.Parse[Date](s)
}

// ParseFormat reads a span using a {start}/{end} template and one strftime
// layout per placeholder.
func ParseFormat(s, tmpl, startLayout, endLayout string) (Span, error) {
	return span.ParseFormat[Date](s, tmpl, startLayout, endLayout)
}

// Format defers rendering of sp under tmpl.
func Format(sp Span, tmpl, startLayout, endLayout string) span.DelayedFormat[Date] {
	return span.Format(sp, tmpl, startLayout, endLayout)
}
