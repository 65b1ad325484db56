package parser

import (
	"fmt"

	"edlgen/internal/diag"
	"edlgen/internal/ir"
	"edlgen/internal/token"
)

// parseFunctionDeclaration implements:
//
//	function := type [('*')] Ident '(' [param (',' param)*] ')' ';'
func (p *Parser) parseFunctionDeclaration(trusted bool) error {
	returnType, err := p.parseTypeInfoAndPointer()
	if err != nil {
		return err
	}

	if !p.cur.IsIdentifier() {
		return p.errf(diag.FunctionIdentifierNotFound, p.describeCur())
	}
	name := p.cur.Text
	if isReservedName(name) {
		return p.errf(diag.TypeNameIdentifierIsReserved, name)
	}
	p.bump()

	if err := p.expectPunct(token.LParen, "("); err != nil {
		return err
	}

	var params []ir.Declaration
	seen := map[string]bool{}
	if p.cur.Kind != token.RParen {
		for {
			param, err := p.parseDeclaration(ir.ParentFunction, seen, name)
			if err != nil {
				return err
			}
			params = append(params, param)
			if p.cur.Kind == token.Comma {
				p.bump()
				continue
			}
			break
		}
	}

	if err := p.expectPunct(token.RParen, ")"); err != nil {
		return err
	}
	if err := p.expectPunct(token.Semicolon, ";"); err != nil {
		return err
	}

	if returnType.IsPointer {
		return p.errf(diag.ReturnValuesCannotBePointers, name)
	}

	fn := &ir.Function{
		Name: name,
		ReturnInfo: ir.Declaration{
			ParentKind: ir.ParentFunction,
			Name:       ir.ReturnValueName,
			TypeInfo:   returnType,
			Attributes: &ir.AttributeInfo{Out: true},
		},
		Parameters: params,
	}

	bankMap := p.edl.UntrustedMap
	if trusted {
		bankMap = p.edl.TrustedMap
	}
	if _, exists := bankMap[fn.Signature()]; exists {
		return p.errf(diag.DuplicateFunctionDeclaration, name)
	}

	fn.AbiName = fmt.Sprintf("%s_%d", name, p.abiCounter)
	p.abiCounter++

	p.edl.AddFunction(trusted, fn)
	return nil
}
