package lexer

import "edlgen/internal/token"

// TokenizeAll drains lx into a slice, including the trailing EOF token.
// Used by the "tokenize" debugging subcommand; the parser itself never
// materializes the whole stream, it only ever holds cur/next.
func TokenizeAll(src []byte) []token.Token {
	lx := New(src)
	var out []token.Token
	for {
		tok := lx.GetNextToken()
		out = append(out, tok)
		if tok.IsEOF() {
			return out
		}
	}
}
