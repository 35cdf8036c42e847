package span

import "time"

// Point is the capability a temporal type needs to be carried by a Span.
// Implementations are value types: Add and Sub return a displaced copy and
// leave the receiver untouched.
type Point[P any] interface {
	// Compare returns -1 if the point sorts before other, 0 if both are
	// equal and +1 if it sorts after other.
	Compare(other P) int
	// Add returns the point displaced forward by d.
	Add(d time.Duration) P
	// Sub returns the point displaced backward by d.
	Sub(d time.Duration) P
	// DurationSince returns the signed duration from other to the point.
	DurationSince(other P) time.Duration
	String() string
}

// Parseable points can be read back from text. The capability is separate
// from Point so span types over display-only points remain possible.
type Parseable[P any] interface {
	// ParseText parses the native string form of the point.
	ParseText(s string) (P, error)
	// ParseFormat parses s under a strftime layout.
	ParseFormat(s, layout string) (P, error)
}

// Formatable points can render themselves under a strftime layout.
type Formatable interface {
	// Format renders the point. It fails when the layout asks for fields
	// the point does not carry.
	Format(layout string) (string, error)
}

// ParseablePoint constrains a point that also parses from text.
type ParseablePoint[P any] interface {
	Point[P]
	Parseable[P]
}

// FormatablePoint constrains a point that also renders under a layout.
type FormatablePoint[P any] interface {
	Point[P]
	Formatable
}
