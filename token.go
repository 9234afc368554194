package kopyt

import "fmt"

// TokenType classifies a Token into one of the lexical categories
// named in the grammar: trivia, structural tokens, literals, operators,
// identifiers and keywords.
type TokenType int

const (
	TokenEOF TokenType = iota

	// Trivia
	TokenNewLine
	TokenDelimitedComment
	TokenLineComment
	TokenShebangLine

	// Structural
	TokenSeparator
	TokenAt

	// Literals
	TokenIntegerLiteral
	TokenHexLiteral
	TokenBinLiteral
	TokenUnsignedLiteral
	TokenLongLiteral
	TokenFloatLiteral
	TokenDoubleLiteral
	TokenBooleanLiteral
	TokenNullLiteral
	TokenCharacterLiteral
	TokenLineStringLiteral
	TokenMultiLineStringLiteral

	// Operators (word-form and symbolic alike)
	TokenOperator

	// Identifiers and keywords
	TokenIdentifier
	TokenHardKeyword
	TokenReserved
)

var tokenTypeNames = map[TokenType]string{
	TokenEOF:                    "EOF",
	TokenNewLine:                "NewLine",
	TokenDelimitedComment:       "DelimitedComment",
	TokenLineComment:            "LineComment",
	TokenShebangLine:            "ShebangLine",
	TokenSeparator:              "Separator",
	TokenAt:                     "At",
	TokenIntegerLiteral:         "IntegerLiteral",
	TokenHexLiteral:             "HexLiteral",
	TokenBinLiteral:             "BinLiteral",
	TokenUnsignedLiteral:        "UnsignedLiteral",
	TokenLongLiteral:            "LongLiteral",
	TokenFloatLiteral:           "FloatLiteral",
	TokenDoubleLiteral:          "DoubleLiteral",
	TokenBooleanLiteral:         "BooleanLiteral",
	TokenNullLiteral:            "NullLiteral",
	TokenCharacterLiteral:       "CharacterLiteral",
	TokenLineStringLiteral:      "LineStringLiteral",
	TokenMultiLineStringLiteral: "MultiLineStringLiteral",
	TokenOperator:               "Operator",
	TokenIdentifier:             "Identifier",
	TokenHardKeyword:            "HardKeyword",
	TokenReserved:               "Reserved",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a tagged value: a classification, the source substring it
// was scanned from, and its position. The parser compares tokens by
// class-plus-literal (Acceptable as a string) or by class alone
// (Acceptable as a TokenType).
type Token struct {
	Typ TokenType
	Val string
	Pos Position
}

func (t *Token) String() string {
	if t == nil {
		return "<nil token>"
	}
	return fmt.Sprintf("<Token %s %q at %s>", t.Typ, t.Val, t.Pos)
}

// hardKeywords is the exhaustive set of Kotlin hard keywords. Contextual
// soft forms (as, as?, in, is, null, true, false, return@, continue@,
// break@, this@, super@) are deliberately absent here: they are
// produced as Operator, NullLiteral, BooleanLiteral or a HardKeyword
// with an appended '@' by the identifier classifier directly, never by
// membership in this set.
var hardKeywords = map[string]bool{
	"break": true, "class": true, "continue": true, "do": true,
	"else": true, "for": true, "fun": true, "if": true,
	"interface": true, "object": true, "package": true, "return": true,
	"super": true, "this": true, "throw": true, "try": true,
	"typealias": true, "typeof": true, "val": true, "var": true,
	"when": true, "while": true,
}

// operatorValues is the full set of symbolic operator spellings matched
// by scanOperator. Word-form operators (in, is, as, as?) come from
// identifier classification, and !in/!is from scanOperator's own check.
var operatorValues = []string{
	// 3-char
	"!==",
	"...", "===",
	// 2-char
	"++", "--", "->", "?:", "::", "..", "&&", "||", "!!",
	"+=", "-=", "*=", "/=", "%=", "==", "!=", "<=", ">=", "?.",
	// 1-char
	"+", "-", "*", "/", "%", "=", "<", ">", "!", "?", ":",
}

var operatorsPerLen [][]string

func init() {
	maxLen := 0
	for _, op := range operatorValues {
		if len(op) > maxLen {
			maxLen = len(op)
		}
	}
	operatorsPerLen = make([][]string, maxLen+1)
	for _, op := range operatorValues {
		operatorsPerLen[len(op)] = append(operatorsPerLen[len(op)], op)
	}
}

// separatorValues is the exhaustive set of Separator token spellings.
var separatorValues = map[byte]bool{
	'.': true, ',': true, '(': true, ')': true,
	'[': true, ']': true, '{': true, '}': true, ';': true,
}
