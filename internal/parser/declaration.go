package parser

import (
	"edlgen/internal/diag"
	"edlgen/internal/ir"
	"edlgen/internal/token"
)

// parseDeclaration implements the shared field/param production:
//
//	field := [attrs] type [('*')] Ident array_dims
//	param := [attrs] type [('*')] Ident array_dims
//
// seen tracks sibling names already declared in the same parameter list or
// field list, for the duplicate-name rule. parentName is the enclosing
// function or struct name, used only in diagnostic messages.
func (p *Parser) parseDeclaration(parentKind ir.ParentKind, seen map[string]bool, parentName string) (ir.Declaration, error) {
	attrs, err := p.parseAttributesOptional()
	if err != nil {
		return ir.Declaration{}, err
	}

	typeInfo, err := p.parseTypeInfoAndPointer()
	if err != nil {
		return ir.Declaration{}, err
	}

	if !p.cur.IsIdentifier() {
		return ir.Declaration{}, p.errf(diag.IdentifierNameNotFound, p.describeCur())
	}
	name := p.cur.Text
	if isReservedName(name) {
		return ir.Declaration{}, p.errf(diag.TypeNameIdentifierIsReserved, name)
	}
	if seen[name] {
		return ir.Declaration{}, p.errf(diag.DuplicateFieldOrParameter, name, parentName)
	}
	seen[name] = true
	p.bump()

	arrayDims, err := p.parseArrayDimensions()
	if err != nil {
		return ir.Declaration{}, err
	}

	hadBlock := attrs != nil

	if parentKind == ir.ParentStruct {
		if attrs != nil && (attrs.In || attrs.Out) {
			return ir.Declaration{}, p.errf(diag.NonSizeOrCountAttributeInStruct)
		}
	} else if attrs == nil {
		// Absence of any attribute block implies the default direction.
		attrs = &ir.AttributeInfo{In: true}
	}

	if typeInfo.IsPointer {
		if typeInfo.Kind == ir.Void && !hadBlock {
			return ir.Declaration{}, p.errf(diag.PointerToVoidMustBeAnnotated)
		}
		if parentKind == ir.ParentFunction && (len(arrayDims) > 0 || typeInfo.Kind == ir.Vector) {
			return ir.Declaration{}, p.errf(diag.PointerToArrayNotAllowed)
		}
	} else if attrs.IsSizeOrCountPresent() {
		return ir.Declaration{}, p.errf(diag.SizeAndCountNotValidForNonPointer, typeInfo.Name)
	}

	return ir.Declaration{
		ParentKind:      parentKind,
		Name:            name,
		TypeInfo:        typeInfo,
		Attributes:      attrs,
		ArrayDimensions: arrayDims,
	}, nil
}

// parseAttributesOptional implements:
//
//	attrs := '[' attr (',' attr)* ']'
//	attr  := 'in' | 'out' | 'size' '=' (Ident|Uint) | 'count' '=' (Ident|Uint)
//
// Returns (nil, nil) when no attribute block is present.
func (p *Parser) parseAttributesOptional() (*ir.AttributeInfo, error) {
	if p.cur.Kind != token.LBracket {
		return nil, nil
	}
	p.bump()

	attrs := &ir.AttributeInfo{}
	seen := map[string]bool{}

	for {
		if !p.cur.IsIdentifier() {
			return nil, p.errf(diag.InvalidAttribute, p.describeCur())
		}
		key := p.cur.Text

		switch key {
		case "in":
			if seen["in"] {
				return nil, p.errf(diag.DuplicateAttributeFound)
			}
			seen["in"] = true
			attrs.In = true
			p.bump()
			if p.cur.Kind == token.Equal {
				return nil, p.errf(diag.InvalidAttribute, "=")
			}
		case "out":
			if seen["out"] {
				return nil, p.errf(diag.DuplicateAttributeFound)
			}
			seen["out"] = true
			attrs.Out = true
			p.bump()
			if p.cur.Kind == token.Equal {
				return nil, p.errf(diag.InvalidAttribute, "=")
			}
		case "size":
			if seen["size"] {
				return nil, p.errf(diag.DuplicateAttributeFound)
			}
			seen["size"] = true
			tok, err := p.parseAttributeValue()
			if err != nil {
				return nil, err
			}
			attrs.SizeInfo = tok
		case "count":
			if seen["count"] {
				return nil, p.errf(diag.DuplicateAttributeFound)
			}
			seen["count"] = true
			tok, err := p.parseAttributeValue()
			if err != nil {
				return nil, err
			}
			attrs.CountInfo = tok
		default:
			return nil, p.errf(diag.InvalidAttribute, key)
		}

		if p.cur.Kind == token.Comma {
			p.bump()
			continue
		}
		break
	}

	if err := p.expectPunct(token.RBracket, "]"); err != nil {
		return nil, err
	}
	attrs.InAndOut = attrs.In && attrs.Out
	return attrs, nil
}

// parseAttributeValue implements the '=' (Ident|Uint) suffix of a size/count
// attribute. cur is positioned on the attribute keyword on entry.
func (p *Parser) parseAttributeValue() (*token.Token, error) {
	p.bump() // consume 'size' / 'count'
	if err := p.expectPunct(token.Equal, "="); err != nil {
		return nil, err
	}
	if !p.cur.IsIdentifier() && !p.cur.IsUnsignedInteger() {
		return nil, p.errf(diag.SizeOrCountValueInvalid, p.describeCur())
	}
	tok := p.cur
	p.bump()
	return &tok, nil
}

// parseTypeInfoAndPointer implements: type [('*')], where type is either a
// primitive/developer-type identifier or a vector<T> construction.
func (p *Parser) parseTypeInfoAndPointer() (ir.TypeInfo, error) {
	if p.cur.Is("vector") {
		return p.parseVector()
	}

	if !p.cur.IsIdentifier() {
		return ir.TypeInfo{}, p.errf(diag.IdentifierNameNotFound, p.describeCur())
	}
	name := p.cur.Text

	kind, ok := ir.LookupPrimitive(name)
	if !ok {
		dt, exists := p.edl.DeveloperTypes[name]
		if !exists {
			return ir.TypeInfo{}, p.errf(diag.DeveloperTypesMustBeDefinedBeforeUse, name)
		}
		kind = dt.Kind
	}
	p.bump()

	typeInfo := ir.TypeInfo{Name: name, Kind: kind}
	if p.cur.Kind == token.Star {
		p.bump()
		if p.cur.Kind == token.Star {
			return ir.TypeInfo{}, p.errf(diag.PointerToPointerInvalid)
		}
		typeInfo.IsPointer = true
	}
	return typeInfo, nil
}

// parseVector implements: 'vector' '<' Ident '>'. T must be a primitive
// other than vector itself, or a previously declared developer type.
func (p *Parser) parseVector() (ir.TypeInfo, error) {
	p.bump() // consume 'vector'
	if p.cur.Kind != token.LAngle {
		return ir.TypeInfo{}, p.errf(diag.VectorDoesNotStartWithArrowBracket)
	}
	p.bump()

	if !p.cur.IsIdentifier() {
		return ir.TypeInfo{}, p.errf(diag.VectorNameIdentifierNotFound, p.describeCur())
	}
	name := p.cur.Text

	var innerKind ir.TypeKind
	if name == "vector" {
		return ir.TypeInfo{}, p.errf(diag.TypeInVectorMustBePreviouslyDefined, name)
	}
	if kind, ok := ir.LookupPrimitive(name); ok {
		innerKind = kind
	} else if dt, exists := p.edl.DeveloperTypes[name]; exists {
		innerKind = dt.Kind
	} else {
		return ir.TypeInfo{}, p.errf(diag.TypeInVectorMustBePreviouslyDefined, name)
	}
	p.bump()

	if err := p.expectPunct(token.RAngle, ">"); err != nil {
		return ir.TypeInfo{}, err
	}

	inner := &ir.TypeInfo{Name: name, Kind: innerKind}
	return ir.TypeInfo{Name: "vector<" + name + ">", Kind: ir.Vector, InnerType: inner}, nil
}

// parseArrayDimensions implements: ('[' (Uint|Ident) ']')?, rejecting a
// second dimension outright.
func (p *Parser) parseArrayDimensions() ([]token.Token, error) {
	if p.cur.Kind != token.LBracket {
		return nil, nil
	}
	p.bump()

	if !p.cur.IsUnsignedInteger() && !p.cur.IsIdentifier() {
		return nil, p.errf(diag.ArrayDimensionIdentifierInvalid, p.describeCur())
	}
	dim := p.cur
	p.bump()

	if err := p.expectPunct(token.RBracket, "]"); err != nil {
		return nil, err
	}

	if p.cur.Kind == token.LBracket {
		return nil, p.errf(diag.OnlySingleDimensionsSupported)
	}

	return []token.Token{dim}, nil
}
