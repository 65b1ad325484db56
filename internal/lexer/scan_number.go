package lexer

import "edlgen/internal/token"

// scanNumber consumes either `0[xX][0-9A-Fa-f]+` or plain `[0-9]+`. No
// sign and no suffix are recognized — the grammar has neither.
func (lx *Lexer) scanNumber() token.Token {
	line, column := lx.cur.line, lx.cur.column
	start := lx.cur.off

	if lx.cur.peek() == '0' && (lx.cur.peekAt(1) == 'x' || lx.cur.peekAt(1) == 'X') {
		lx.cur.bump() // '0'
		lx.cur.bump() // 'x'/'X'
		for isHex(lx.cur.peek()) {
			lx.cur.bump()
		}
		return token.Token{
			Kind:   token.HexLit,
			Text:   string(lx.cur.buf[start:lx.cur.off]),
			Line:   line,
			Column: column,
		}
	}

	for isDec(lx.cur.peek()) {
		lx.cur.bump()
	}
	return token.Token{
		Kind:   token.UintLit,
		Text:   string(lx.cur.buf[start:lx.cur.off]),
		Line:   line,
		Column: column,
	}
}
