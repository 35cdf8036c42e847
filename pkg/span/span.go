package span

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Span is the closed range between two temporal points. The ordering
// invariant start < end holds strictly for every span; both construction and
// the displacement operations validate before committing.
type Span[P Point[P]] struct {
	start P
	end   P
}

// New validates the ordering invariant and builds a span.
func New[P Point[P]](start, end P) (Span[P], error) {
	if start.Compare(end) >= 0 {
		return Span[P]{}, ErrOrdering
	}
	return Span[P]{start: start, end: end}, nil
}

// Start returns the lower bound of the span.
func (s Span[P]) Start() P { return s.start }

// End returns the upper bound of the span.
func (s Span[P]) End() P { return s.end }

// Duration returns end - start. It is never negative given the ordering
// invariant.
func (s Span[P]) Duration() time.Duration {
	return s.end.DurationSince(s.start)
}

// Equal reports whether both spans cover the same range.
func (s Span[P]) Equal(other Span[P]) bool {
	return s.start.Compare(other.start) == 0 && s.end.Compare(other.end) == 0
}

// Contains reports whether p lies inside the span, both bounds inclusive.
func (s Span[P]) Contains(p P) bool {
	return s.start.Compare(p) <= 0 && s.end.Compare(p) >= 0
}

// IsDisjoint reports whether the spans share no range. Touching bounds count
// as disjoint.
func (s Span[P]) IsDisjoint(other Span[P]) bool {
	return s.end.Compare(other.start) <= 0 || s.start.Compare(other.end) >= 0
}

// IsSubset reports whether s lies entirely within other.
func (s Span[P]) IsSubset(other Span[P]) bool {
	return s.start.Compare(other.start) >= 0 && s.end.Compare(other.end) <= 0
}

// IsSuperset reports whether other lies entirely within s.
func (s Span[P]) IsSuperset(other Span[P]) bool {
	return s.start.Compare(other.start) <= 0 && s.end.Compare(other.end) >= 0
}

// Difference returns the part of s not covered by other. A result that would
// fall apart into two pieces is ErrNotContinuous, a fully covered s is
// ErrEmpty. The branches are ordered, reordering them changes which error a
// touching pair produces.
func (s Span[P]) Difference(other Span[P]) (Span[P], error) {
	switch {
	case s.start.Compare(other.start) >= 0 && s.end.Compare(other.end) <= 0:
		// s covered by other
		// f--[====]--t
		return Span[P]{}, ErrEmpty
	case s.end.Compare(other.start) <= 0 || s.start.Compare(other.end) >= 0:
		// no overlap
		// [====]  f----t
		return s, nil
	case s.end.Compare(other.start) > 0 && s.end.Compare(other.end) <= 0 && s.start.Compare(other.start) < 0:
		// s overlaps the start of other
		// [====f==]--t
		return New(s.start, other.start)
	case s.start.Compare(other.start) >= 0 && s.start.Compare(other.end) < 0 && s.end.Compare(other.end) > 0:
		// s overlaps the end of other
		// f--[==t====]
		return New(other.end, s.end)
	default:
		// other strictly inside s, two remainders
		// [==f----t==]
		return Span[P]{}, ErrNotContinuous
	}
}

// SymmetricDifference concatenates two exactly adjacent spans. Any other
// arrangement would need two result pieces and is ErrNotContinuous.
func (s Span[P]) SymmetricDifference(other Span[P]) (Span[P], error) {
	if s.end.Compare(other.start) == 0 {
		return New(s.start, other.end)
	}
	if other.end.Compare(s.start) == 0 {
		return New(other.start, s.end)
	}
	return Span[P]{}, ErrNotContinuous
}

// Intersection returns the range covered by both spans. Touching bounds
// overlap in a single point only, which is ErrEmpty; disjoint spans with a
// true gap are ErrNotContinuous. The zero-width check must stay the first
// branch.
func (s Span[P]) Intersection(other Span[P]) (Span[P], error) {
	if s.end.Compare(other.start) == 0 || other.end.Compare(s.start) == 0 {
		return Span[P]{}, ErrEmpty
	}
	if s.end.Compare(other.start) < 0 || other.end.Compare(s.start) < 0 {
		return Span[P]{}, ErrNotContinuous
	}
	return New(maxPoint(s.start, other.start), minPoint(s.end, other.end))
}

// Union returns the range covered by either span. Touching bounds merge;
// disjoint spans with a true gap are ErrNotContinuous.
func (s Span[P]) Union(other Span[P]) (Span[P], error) {
	if s.end.Compare(other.start) < 0 || other.end.Compare(s.start) < 0 {
		return Span[P]{}, ErrNotContinuous
	}
	return New(minPoint(s.start, other.start), maxPoint(s.end, other.end))
}

// SplitOff cuts the span at a point strictly inside it and returns the two
// halves, the cut point ending the first and starting the second.
func (s Span[P]) SplitOff(at P) (Span[P], Span[P], error) {
	if s.start.Compare(at) >= 0 || s.end.Compare(at) <= 0 {
		return Span[P]{}, Span[P]{}, ErrOutOfRange
	}
	return Span[P]{start: s.start, end: at}, Span[P]{start: at, end: s.end}, nil
}

// Append moves the end forward by d. The span is unchanged when the new end
// would not come after the start.
func (s *Span[P]) Append(d time.Duration) error {
	moved := s.end.Add(d)
	if moved.Compare(s.start) <= 0 {
		return ErrEmpty
	}
	s.end = moved
	return nil
}

// Prepend moves the start backward by d. The span is unchanged when the new
// start would not come before the end.
func (s *Span[P]) Prepend(d time.Duration) error {
	moved := s.start.Sub(d)
	if moved.Compare(s.end) >= 0 {
		return ErrEmpty
	}
	s.start = moved
	return nil
}

// Pop moves the end backward by d. The span is unchanged when the new end
// would not come after the start.
func (s *Span[P]) Pop(d time.Duration) error {
	moved := s.end.Sub(d)
	if moved.Compare(s.start) <= 0 {
		return ErrEmpty
	}
	s.end = moved
	return nil
}

// Shift moves the start forward by d. The span is unchanged when the new
// start would not come before the end.
func (s *Span[P]) Shift(d time.Duration) error {
	moved := s.start.Add(d)
	if moved.Compare(s.end) >= 0 {
		return ErrEmpty
	}
	s.start = moved
	return nil
}

// String renders the default "<start> - <end>" form.
func (s Span[P]) String() string {
	return fmt.Sprintf("%s - %s", s.start, s.end)
}

// MarshalText serializes the span as its default string form.
func (s Span[P]) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses the default string form. It needs the point type to
// carry the Parseable capability.
func (s *Span[P]) UnmarshalText(text []byte) error {
	var zero P
	parser, ok := any(zero).(Parseable[P])
	if !ok {
		return errors.Errorf("point type %T does not support parsing", zero)
	}
	parsed, err := parseWith[P](parser, string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func maxPoint[P Point[P]](a, b P) P {
	if a.Compare(b) >= 0 {
		return a
	}
	return b
}

func minPoint[P Point[P]](a, b P) P {
	if a.Compare(b) <= 0 {
		return a
	}
	return b
}
