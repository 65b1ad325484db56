// Package parser turns an EDL token stream into a validated ir.Edl. It is a
// single-pass, top-down recursive-descent parser with one-token lookahead:
// every branching decision is made from (cur, next) alone, there is no
// backtracking, and the first semantic violation aborts parsing with a
// single diag.Error. There is no partial IR on failure.
package parser

import (
	"os"
	"path/filepath"
	"strings"

	"edlgen/internal/diag"
	"edlgen/internal/ir"
	"edlgen/internal/lexer"
	"edlgen/internal/token"
)

// Parser holds the mutable state of one parse. It is not safe for concurrent
// use and is discarded after Parse returns.
type Parser struct {
	lx   *lexer.Lexer
	file string

	cur  token.Token
	next token.Token

	edl        *ir.Edl
	abiCounter uint64

	// anonEnum is the single anonymous enum every unnamed `enum` block in
	// the module merges into. Nil until the first anonymous block.
	anonEnum *ir.DeveloperType
}

// Parse reads path, lexes and parses it, and returns the validated IR. The
// module name is the file's base name without extension.
func Parse(path string) (*ir.Edl, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ParseSource(path, name, data)
}

// ParseSource parses already-loaded bytes as if they were read from file,
// under the given module name. It exists so callers (tests, the driver's
// content-addressed cache) can bypass the filesystem.
func ParseSource(file, moduleName string, src []byte) (*ir.Edl, error) {
	p := &Parser{
		lx:   lexer.New(src),
		file: file,
		edl:  ir.New(moduleName),
	}
	p.cur = p.lx.GetNextToken()
	p.next = p.lx.GetNextToken()

	if err := p.parseModule(); err != nil {
		return nil, err
	}
	if err := p.finalize(); err != nil {
		return nil, err
	}
	return p.edl, nil
}

func (p *Parser) bump() {
	p.cur = p.next
	p.next = p.lx.GetNextToken()
}

func (p *Parser) errf(id diag.Code, args ...string) *diag.Error {
	return diag.New(id, p.file, p.cur.Line, p.cur.Column, args...)
}

func (p *Parser) describeCur() string {
	if p.cur.IsEOF() {
		return "<eof>"
	}
	return p.cur.Text
}

// expectKeyword consumes cur if it is the identifier kw, else fails.
func (p *Parser) expectKeyword(kw string) error {
	if !p.cur.IsIdentifier() || !p.cur.Is(kw) {
		return p.errf(diag.ExpectedTokenNotFound, kw, p.describeCur())
	}
	p.bump()
	return nil
}

// expectPunct consumes cur if it has kind k, else fails. lit is the token's
// canonical spelling, used only for the error message.
func (p *Parser) expectPunct(k token.Kind, lit string) error {
	if p.cur.Kind != k {
		return p.errf(diag.ExpectedTokenNotFound, lit, p.describeCur())
	}
	p.bump()
	return nil
}

// isReservedName reports whether name may not be used for a developer
// type, function, field, or parameter — spec.md §4.B's reserved set.
func isReservedName(name string) bool {
	return token.IsStructuralKeyword(name) || token.IsAttributeKeyword(name) || ir.IsPrimitiveName(name)
}
