// Package strf classifies strftime directives so point types can refuse
// layouts asking for fields they do not carry.
package strf

import "strings"

const (
	// Calendar holds the directives that need a date.
	Calendar = "YyCGgmbBhdejUVWaAuwxvFDcs"
	// Clock holds the directives that need a time of day.
	Clock = "HIklMSpPrRTXcs"
	// Zone holds the directives that need a UTC offset or zone name.
	Zone = "zZ"
)

// HasDirective reports whether layout contains a %-directive whose letter is
// in set. The %% escape is never a directive.
func HasDirective(layout, set string) bool {
	for i := 0; i+1 < len(layout); i++ {
		if layout[i] != '%' {
			continue
		}
		c := layout[i+1]
		if c != '%' && strings.IndexByte(set, c) >= 0 {
			return true
		}
		i++
	}
	return false
}
