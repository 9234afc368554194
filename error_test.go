package kopyt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexErrorFormatting(t *testing.T) {
	err := newLexError(Position{Line: 3, Column: 5}, "unterminated string literal")
	assert.Equal(t, "unterminated string literal at line 3 column 5", err.Error())
	assert.Equal(t, Position{Line: 3, Column: 5}, err.Position())

	var target *LexError
	assert.True(t, errors.As(error(err), &target))
}

func TestParseErrorVerboseWithToken(t *testing.T) {
	tok := &Token{Typ: TokenSeparator, Val: ")", Pos: Position{Line: 1, Column: 7}}
	err := newParseError("expecting ','", tok, true)
	assert.Equal(t, `expecting ',', but found ')' at line 1 column 7`, err.Error())
}

func TestParseErrorVerboseAtEOF(t *testing.T) {
	tok := &Token{Typ: TokenEOF, Val: "", Pos: Position{Line: 4, Column: 1}}
	err := newParseError("expecting an expression", tok, true)
	assert.Equal(t, "expecting an expression, but reached end of file", err.Error())
}

func TestParseErrorNonVerbose(t *testing.T) {
	err := newParseError("type annotation is not allowed on a destructuring declaration", nil, false)
	assert.Equal(t, "type annotation is not allowed on a destructuring declaration", err.Error())
}

func TestKopytErrorInterfaceSatisfiedByBoth(t *testing.T) {
	var errs []KopytError
	errs = append(errs, newLexError(Position{Line: 1, Column: 1}, "bad char"))
	errs = append(errs, newParseError("bad token", nil, false))
	for _, e := range errs {
		assert.NotEmpty(t, e.Error())
	}
}
