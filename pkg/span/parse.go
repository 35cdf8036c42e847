package span

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	startToken = "{start}"
	endToken   = "{end}"
)

// The tokens show up escaped in the pattern because the whole template is
// quoted for literal matching first.
var placeholderPattern = regexp.MustCompile(`\\\{(?:start|end)\\\}`)

var paddedHyphen = regexp.MustCompile(`\s+-\s+`)

// Parse reads a span from its default "<start> - <end>" form, delegating each
// side to the point type's native parser.
func Parse[P ParseablePoint[P]](s string) (Span[P], error) {
	var zero P
	return parseWith[P](zero, s)
}

func parseWith[P Point[P]](parser Parseable[P], s string) (Span[P], error) {
	rawStart, rawEnd := splitDefault(s)
	start, err := parser.ParseText(rawStart)
	if err != nil {
		return Span[P]{}, fmt.Errorf("%w: %w", ErrParsing, err)
	}
	end, err := parser.ParseText(rawEnd)
	if err != nil {
		return Span[P]{}, fmt.Errorf("%w: %w", ErrParsing, err)
	}
	return New(start, end)
}

// splitDefault cuts the input at the first whitespace-padded hyphen and falls
// back to the first bare hyphen. A missing side comes back as the empty
// string and fails in the point parser rather than here.
func splitDefault(s string) (string, string) {
	if loc := paddedHyphen.FindStringIndex(s); loc != nil {
		return s[:loc[0]], s[loc[1]:]
	}
	if i := strings.IndexByte(s, '-'); i >= 0 {
		return strings.TrimRight(s[:i], " \t"), strings.TrimLeft(s[i+1:], " \t")
	}
	return s, ""
}

// ParseFormat reads a span from s using a template carrying the {start} and
// {end} placeholders plus one strftime layout per placeholder. The textual
// order of the placeholders in the template is free; captures are mapped back
// by placeholder position, so "end: {end}, start: {start}" works.
func ParseFormat[P ParseablePoint[P]](s, tmpl, startLayout, endLayout string) (Span[P], error) {
	pattern := placeholderPattern.ReplaceAllLiteralString(regexp.QuoteMeta(tmpl), `(.*)`)
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Span[P]{}, fmt.Errorf("%w: %w", ErrPattern, err)
	}

	caps := re.FindStringSubmatch(s)
	if caps == nil {
		return Span[P]{}, ErrEmpty
	}

	startIdx := strings.Index(tmpl, startToken)
	if startIdx < 0 {
		return Span[P]{}, ErrNoStart
	}
	endIdx := strings.Index(tmpl, endToken)
	if endIdx < 0 {
		return Span[P]{}, ErrNoEnd
	}

	// Both placeholders exist, so the pattern matched with two groups.
	rawStart, rawEnd := caps[1], caps[2]
	if endIdx < startIdx {
		rawStart, rawEnd = rawEnd, rawStart
	}

	var zero P
	start, err := zero.ParseFormat(rawStart, startLayout)
	if err != nil {
		return Span[P]{}, fmt.Errorf("%w: %w", ErrParsing, err)
	}
	end, err := zero.ParseFormat(rawEnd, endLayout)
	if err != nil {
		return Span[P]{}, fmt.Errorf("%w: %w", ErrParsing, err)
	}
	return New(start, end)
}
