package parser

import (
	"edlgen/internal/diag"
	"edlgen/internal/token"
)

// parseModule implements: module := 'enclave' '{' decl* '}'
func (p *Parser) parseModule() error {
	if err := p.expectKeyword("enclave"); err != nil {
		return err
	}
	if err := p.expectPunct(token.LBrace, "{"); err != nil {
		return err
	}

	for p.cur.Kind != token.RBrace && !p.cur.IsEOF() {
		switch {
		case p.cur.Is("trusted"):
			if err := p.parseBank(true); err != nil {
				return err
			}
		case p.cur.Is("untrusted"):
			if err := p.parseBank(false); err != nil {
				return err
			}
		case p.cur.Is("enum"):
			if err := p.parseEnum(); err != nil {
				return err
			}
		case p.cur.Is("struct"):
			if err := p.parseStruct(); err != nil {
				return err
			}
		default:
			return p.errf(diag.UnexpectedToken, p.describeCur())
		}
	}

	return p.expectPunct(token.RBrace, "}")
}

// parseBank implements: decl := ('trusted'|'untrusted') '{' function* '}' ';'
func (p *Parser) parseBank(trusted bool) error {
	p.bump() // consume 'trusted' / 'untrusted'
	if err := p.expectPunct(token.LBrace, "{"); err != nil {
		return err
	}
	for p.cur.Kind != token.RBrace && !p.cur.IsEOF() {
		if err := p.parseFunctionDeclaration(trusted); err != nil {
			return err
		}
	}
	if err := p.expectPunct(token.RBrace, "}"); err != nil {
		return err
	}
	return p.expectPunct(token.Semicolon, ";")
}
