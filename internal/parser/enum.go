package parser

import (
	"strconv"

	"edlgen/internal/diag"
	"edlgen/internal/ir"
	"edlgen/internal/token"
)

// parseEnum implements:
//
//	'enum' [Ident] '{' enum_item (',' enum_item)* '}' ';'
//	enum_item := Ident [ '=' (Uint|Hex) ]
//
// An enum with no identifier merges into the module's single anonymous
// enum, created lazily on first use.
func (p *Parser) parseEnum() error {
	p.bump() // consume 'enum'

	anonymous := true
	name := ir.AnonymousEnumName
	if p.cur.IsIdentifier() {
		name = p.cur.Text
		if isReservedName(name) {
			return p.errf(diag.TypeNameIdentifierIsReserved, name)
		}
		if _, exists := p.edl.DeveloperTypes[name]; exists {
			return p.errf(diag.DuplicateTypeDefinition, name)
		}
		anonymous = false
		p.bump()
	}

	if err := p.expectPunct(token.LBrace, "{"); err != nil {
		return err
	}

	var target *ir.DeveloperType
	if anonymous {
		if p.anonEnum == nil {
			dt := ir.NewEnum(ir.AnonymousEnumName, true)
			p.anonEnum = &dt
			p.edl.AddDeveloperType(p.anonEnum)
		}
		target = p.anonEnum
	} else {
		dt := ir.NewEnum(name, false)
		target = &dt
	}

	var lastPosition uint64
	isHex := false
	first := true

	for {
		if !p.cur.IsIdentifier() {
			return p.errf(diag.EnumValueIdentifierNotFound, p.describeCur())
		}
		memberName := p.cur.Text
		if _, exists := target.Items[memberName]; exists {
			return p.errf(diag.EnumNameDuplicated, memberName)
		}
		p.bump()

		var declaredPosition *uint64
		if p.cur.Kind == token.Equal {
			p.bump()
			val, hex, err := p.parseEnumValueToken()
			if err != nil {
				return err
			}
			declaredPosition = &val
			isHex = hex
		}

		var position uint64
		switch {
		case declaredPosition != nil:
			position = *declaredPosition
		case first:
			position = 0
		default:
			position = lastPosition + 1
		}

		target.AddMember(ir.EnumMember{
			Name:             memberName,
			Position:         position,
			DeclaredPosition: declaredPosition,
			IsHex:            isHex,
			IsDefault:        first,
		})
		lastPosition = position
		first = false

		if p.cur.Kind == token.Comma {
			p.bump()
			continue
		}
		break
	}

	if err := p.expectPunct(token.RBrace, "}"); err != nil {
		return err
	}
	if err := p.expectPunct(token.Semicolon, ";"); err != nil {
		return err
	}

	if !anonymous {
		p.edl.AddDeveloperType(target)
	}
	return nil
}

// parseEnumValueToken implements the '=' (Uint|Hex) suffix, returning the
// parsed value and whether it was spelled in hexadecimal.
func (p *Parser) parseEnumValueToken() (uint64, bool, error) {
	switch {
	case p.cur.IsUnsignedInteger():
		val, err := strconv.ParseUint(p.cur.Text, 10, 64)
		if err != nil {
			return 0, false, p.errf(diag.EnumValueNotFound, p.cur.Text)
		}
		p.bump()
		return val, false, nil
	case p.cur.IsHex():
		val, err := strconv.ParseUint(p.cur.Text[2:], 16, 64)
		if err != nil {
			return 0, false, p.errf(diag.EnumValueNotFound, p.cur.Text)
		}
		p.bump()
		return val, true, nil
	default:
		return 0, false, p.errf(diag.EnumValueNotFound, p.describeCur())
	}
}
