package parser

import (
	"edlgen/internal/diag"
	"edlgen/internal/ir"
	"edlgen/internal/token"
)

// parseStruct implements:
//
//	'struct' Ident '{' field (';' field)* ';' '}' ';'
//
// Fields are terminated one at a time by ';', which is equivalent to the
// grammar's "first field then (';' field) pairs then a final ';'" shape.
// Zero fields is legal.
func (p *Parser) parseStruct() error {
	p.bump() // consume 'struct'

	if !p.cur.IsIdentifier() {
		return p.errf(diag.StructIdentifierNotFound, p.describeCur())
	}
	name := p.cur.Text
	if isReservedName(name) {
		return p.errf(diag.TypeNameIdentifierIsReserved, name)
	}
	if _, exists := p.edl.DeveloperTypes[name]; exists {
		return p.errf(diag.DuplicateTypeDefinition, name)
	}
	p.bump()

	if err := p.expectPunct(token.LBrace, "{"); err != nil {
		return err
	}

	dt := ir.NewStruct(name)
	seen := map[string]bool{}

	for p.cur.Kind != token.RBrace && !p.cur.IsEOF() {
		field, err := p.parseDeclaration(ir.ParentStruct, seen, name)
		if err != nil {
			return err
		}
		dt.Fields = append(dt.Fields, field)
		if err := p.expectPunct(token.Semicolon, ";"); err != nil {
			return err
		}
	}

	if err := p.expectPunct(token.RBrace, "}"); err != nil {
		return err
	}
	if err := p.expectPunct(token.Semicolon, ";"); err != nil {
		return err
	}

	p.edl.AddDeveloperType(&dt)
	return nil
}
