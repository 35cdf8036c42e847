package span

import (
	"strings"

	"github.com/pkg/errors"
)

// DelayedFormat captures a span together with a template and the two point
// layouts. Nothing is rendered until Render or String is called, so building
// one never fails; point-level format failures surface at render time.
type DelayedFormat[P FormatablePoint[P]] struct {
	span        Span[P]
	tmpl        string
	startLayout string
	endLayout   string
}

// Format defers rendering of s under tmpl, substituting {start} and {end}
// with the endpoints rendered under their respective layouts.
func Format[P FormatablePoint[P]](s Span[P], tmpl, startLayout, endLayout string) DelayedFormat[P] {
	return DelayedFormat[P]{
		span:        s,
		tmpl:        tmpl,
		startLayout: startLayout,
		endLayout:   endLayout,
	}
}

// Render substitutes the rendered endpoints into the template.
func (f DelayedFormat[P]) Render() (string, error) {
	start, err := f.span.Start().Format(f.startLayout)
	if err != nil {
		return "", errors.Wrap(err, "rendering start point")
	}
	end, err := f.span.End().Format(f.endLayout)
	if err != nil {
		return "", errors.Wrap(err, "rendering end point")
	}
	out := strings.ReplaceAll(f.tmpl, startToken, start)
	return strings.ReplaceAll(out, endToken, end), nil
}

// String renders the template, or returns the empty string when rendering
// fails. Use Render to observe the failure.
func (f DelayedFormat[P]) String() string {
	out, err := f.Render()
	if err != nil {
		return ""
	}
	return out
}
