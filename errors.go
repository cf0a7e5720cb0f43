package mymoney

import "fmt"

// ParseError reports an input token that could not be interpreted as a
// number or, in trailing position, a month name. It is fatal: the run
// aborts on the first one.
type ParseError struct {
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Token, e.Reason)
}

// ValidationError reports an invalid portfolio or asset definition, such as
// weights that do not sum to 100. It is raised at construction time, before
// any command is processed.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// LookupError reports a reference to something that does not exist: an
// asset outside the portfolio, an unknown investor, or a balance query for
// a month that was never recorded.
type LookupError struct {
	Kind string // "asset", "investor" or "snapshot"
	Key  string
}

func (e *LookupError) Error() string { return fmt.Sprintf("unknown %s %q", e.Kind, e.Key) }
