package kopyt

// cursor is a peekable, buffered iterator over a token slice supporting
// nestable save/restore markers. It is the Go expression of the
// reference implementation's PeekableIterator: a FIFO cache of
// already-produced tokens plus a stack of markers, each of which
// records the tokens consumed while it was the active (innermost)
// marker.
type cursor struct {
	tokens  []*Token
	idx     int
	def     *Token
	markers [][]*Token
}

func newCursor(tokens []*Token) *cursor {
	var def *Token
	if n := len(tokens); n > 0 {
		def = tokens[n-1]
		if def.Typ != TokenEOF {
			def = &Token{Typ: TokenEOF, Val: "", Pos: def.Pos}
		}
	} else {
		def = &Token{Typ: TokenEOF}
	}
	return &cursor{tokens: tokens, def: def}
}

// peek returns the token n positions ahead of the cursor without
// consuming anything, or the EOF sentinel past the end of the stream.
func (c *cursor) peek(n int) *Token {
	i := c.idx + n
	if i < 0 || i >= len(c.tokens) {
		return c.def
	}
	return c.tokens[i]
}

// next advances the cursor by one token and returns the token it moved
// past. If a marker is active, the consumed token is recorded onto it
// so a later restore can put it back.
func (c *cursor) next() *Token {
	tok := c.peek(0)
	if c.idx < len(c.tokens) {
		c.idx++
	}
	if n := len(c.markers); n > 0 {
		c.markers[n-1] = append(c.markers[n-1], tok)
	}
	return tok
}

func (c *cursor) pushMarker() {
	c.markers = append(c.markers, nil)
}

// popMarker removes the innermost marker. If reset is true, the tokens
// recorded on it are unwound — the cursor's idx moves back by that
// many positions, restoring pre-scope state. If reset is false, the
// recorded tokens are folded into the next-outer marker (if any) so
// that an enclosing rollback still unwinds them.
func (c *cursor) popMarker(reset bool) {
	n := len(c.markers)
	if n == 0 {
		return
	}
	consumed := c.markers[n-1]
	c.markers = c.markers[:n-1]
	if reset {
		c.idx -= len(consumed)
		return
	}
	if n-1 > 0 {
		c.markers[n-2] = append(c.markers[n-2], consumed...)
	}
}

// transaction runs fn (which may abort by panicking with a
// *parseSignal, the parser's internal unwinding mechanism — see
// guard) inside a nested marker. If fn aborts or guard otherwise
// reports an error, the cursor is rewound to its state before the
// call and the error is returned; otherwise the consumed tokens merge
// into the enclosing marker and fn's result is returned. Speculative
// parsing is built on this primitive.
func transaction[T any](c *cursor, fn func() T) (T, error) {
	c.pushMarker()
	v, err := guard(fn)
	if err != nil {
		c.popMarker(true)
		var zero T
		return zero, err
	}
	c.popMarker(false)
	return v, nil
}

// simulate runs fn inside a nested marker and unconditionally rewinds
// the cursor afterward, regardless of whether fn succeeded. It is used
// to test whether a lookahead sequence would succeed without consuming
// any tokens.
func simulate[T any](c *cursor, fn func() T) (T, error) {
	c.pushMarker()
	defer c.popMarker(true)
	return guard(fn)
}
