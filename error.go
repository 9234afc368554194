package kopyt

import (
	"fmt"

	"github.com/juju/errors"
)

// KopytError is the common category implemented by both LexError and
// ParseError, so callers can catch either with a single interface
// check instead of a type switch.
type KopytError interface {
	error
	Position() Position
}

// LexError reports a failure during tokenization: an unrecognized
// character or an unterminated construct (comment, string, character
// literal, escape sequence, backtick identifier).
type LexError struct {
	Message string
	Pos     Position
	cause   error
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// Position returns the location the failure occurred at.
func (e *LexError) Position() Position { return e.Pos }

// Unwrap exposes the underlying juju/errors-annotated cause to
// errors.Is/errors.As.
func (e *LexError) Unwrap() error { return e.cause }

func newLexError(pos Position, format string, args ...interface{}) *LexError {
	msg := fmt.Sprintf(format, args...)
	return &LexError{
		Message: msg,
		Pos:     pos,
		cause:   errors.Annotatef(errors.New(msg), "lex error at %s", pos),
	}
}

// ParseError reports a failure during parsing: an unexpected token, a
// violated structural constraint (duplicate accessor, type annotation
// on a destructuring declaration, and the like), or reaching EOF where
// more input was required.
//
// Message has the form "<what>, but found '<token value>' at line L
// column C" or "<what>, but reached end of file", unless the call site
// asked for a bare, non-verbose message.
type ParseError struct {
	Message string
	Pos     Position
	Token   *Token
	cause   error
}

func (e *ParseError) Error() string { return e.Message }

// Position returns the location the failure occurred at.
func (e *ParseError) Position() Position { return e.Pos }

// Unwrap exposes the underlying juju/errors-annotated cause to
// errors.Is/errors.As.
func (e *ParseError) Unwrap() error { return e.cause }

func newParseError(message string, tok *Token, verbose bool) *ParseError {
	formatted := message
	var pos Position
	if tok != nil {
		pos = tok.Pos
	}
	if verbose {
		switch {
		case tok == nil:
		case tok.Typ == TokenEOF:
			formatted = fmt.Sprintf("%s, but reached end of file", message)
		default:
			formatted = fmt.Sprintf("%s, but found '%s' at %s", message, tok.Val, tok.Pos)
		}
	}
	return &ParseError{
		Message: formatted,
		Pos:     pos,
		Token:   tok,
		cause:   errors.Annotatef(errors.New(formatted), "parse error"),
	}
}
