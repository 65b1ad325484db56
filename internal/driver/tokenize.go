// Package driver wires the core lexer/parser/emitplan/planstore packages
// into the operations the CLI exposes: tokenize, plan, and generate. It is
// the only place independent .edl files are fanned out concurrently — the
// core parser itself stays single-threaded and synchronous per call.
package driver

import (
	"os"

	"edlgen/internal/lexer"
	"edlgen/internal/token"
)

// TokenizeResult is the token stream for one file, for the "tokenize"
// debugging subcommand.
type TokenizeResult struct {
	Path   string
	Tokens []token.Token
}

// Tokenize reads path and returns its full token stream, including the
// trailing EOF sentinel. Unlike Parse, tokenization never fails on
// malformed input — the lexer has no error productions of its own.
func Tokenize(path string) (*TokenizeResult, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &TokenizeResult{Path: path, Tokens: lexer.TokenizeAll(src)}, nil
}
