package parser

import (
	"errors"
	"fmt"

	"github.com/npillmayer/sexp"
)

// ErrInvalid is the single kind of error the parser reports. Every error
// returned by Parse matches it with errors.Is.
var ErrInvalid = errors.New("invalid s-expression")

// ParseError describes the first problem found in an input. Msg is meant for
// humans and already contains the reason and, where available, the position.
type ParseError struct {
	Msg string
	Pos sexp.Position // position at which the problem was detected; may be null
}

func (e *ParseError) Error() string {
	return e.Msg
}

// Unwrap makes errors.Is(err, ErrInvalid) hold.
func (e *ParseError) Unwrap() error {
	return ErrInvalid
}

func errorAt(pos sexp.Position, reason string) *ParseError {
	return &ParseError{
		Msg: fmt.Sprintf("ERROR: %s on %s", reason, pos),
		Pos: pos,
	}
}

// trailing characters are detected outside of the cursor machinery, so this
// message carries no position
func trailingCharError(r rune) *ParseError {
	return &ParseError{
		Msg: fmt.Sprintf("Unexpected character %q after expression", r),
	}
}
