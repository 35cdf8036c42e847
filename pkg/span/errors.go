package span

import "github.com/pkg/errors"

// The closed set of failures produced by span construction, algebra and
// parsing. Collaborator failures are wrapped so errors.Is reaches both the
// sentinel and the underlying cause.
var (
	ErrParsing        = errors.New("could not parse a point under this format")
	ErrPattern        = errors.New("malformed span template")
	ErrOrdering       = errors.New("start must precede end")
	ErrOutOfRange     = errors.New("split point outside span")
	ErrEmpty          = errors.New("resulting span is empty")
	ErrNotContinuous  = errors.New("resulting span is not a single continuous span")
	ErrNoStart        = errors.New("template is missing {start}")
	ErrNoEnd          = errors.New("template is missing {end}")
	ErrLocalAmbiguous = errors.New("local time is ambiguous")
	ErrBadFormat      = errors.New("input string malformed")
)
