package parser

import (
	"edlgen/internal/diag"
	"edlgen/internal/ir"
	"edlgen/internal/token"
)

// finalize runs once both module bodies are fully parsed: it resolves every
// identifier-valued size/count attribute token against the anonymous enum
// and sibling declarations, then propagates struct pointer/container
// metadata through nested struct fields.
func (p *Parser) finalize() error {
	if err := p.resolveFunctionBank(p.edl.TrustedList); err != nil {
		return err
	}
	if err := p.resolveFunctionBank(p.edl.UntrustedList); err != nil {
		return err
	}
	for _, dt := range p.edl.DeveloperTypesOrder {
		if dt.Kind != ir.Struct {
			continue
		}
		if err := p.resolveDeclarationList(dt.Fields, dt.Name); err != nil {
			return err
		}
	}

	p.propagateStructMetadata()
	return nil
}

func (p *Parser) resolveFunctionBank(fns []*ir.Function) error {
	for _, fn := range fns {
		if err := p.resolveDeclarationList(fn.Parameters, fn.Name); err != nil {
			return err
		}
	}
	return nil
}

// resolveDeclarationList resolves size/count identifier tokens for every
// declaration in decls against its own sibling list, named parentName for
// diagnostics.
func (p *Parser) resolveDeclarationList(decls []ir.Declaration, parentName string) error {
	for i := range decls {
		attrs := decls[i].Attributes
		if attrs == nil {
			continue
		}
		if attrs.SizeInfo != nil && attrs.SizeInfo.IsIdentifier() {
			if err := p.resolveSizeOrCountToken(*attrs.SizeInfo, decls, parentName); err != nil {
				return err
			}
		}
		if attrs.CountInfo != nil && attrs.CountInfo.IsIdentifier() {
			if err := p.resolveSizeOrCountToken(*attrs.CountInfo, decls, parentName); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveSizeOrCountToken implements the resolution order from spec.md
// §4.E's final validation pass: first the anonymous enum's members, then a
// sibling declaration in decls.
func (p *Parser) resolveSizeOrCountToken(tok token.Token, decls []ir.Declaration, parentName string) error {
	if p.anonEnum != nil {
		if _, ok := p.anonEnum.Items[tok.Text]; ok {
			return nil
		}
	}

	for _, sibling := range decls {
		if sibling.Name != tok.Text {
			continue
		}
		if sibling.IsArray() {
			return diag.New(diag.SizeOrCountForArrayNotValid, p.file, tok.Line, tok.Column, parentName)
		}
		if !sibling.TypeInfo.Kind.IsUnsignedInteger() {
			return diag.New(diag.SizeOrCountInvalidType, p.file, tok.Line, tok.Column, parentName, sibling.TypeInfo.Kind.String())
		}
		return nil
	}

	return diag.New(diag.SizeOrCountAttributeNotFound, p.file, tok.Line, tok.Column, tok.Text, parentName)
}

// propagateStructMetadata sets contains_inner_pointer / contains_container_type
// directly from each struct's own fields, then folds in nested struct
// fields' metadata in declaration order. A single ordered pass suffices
// because declare-before-use forbids forward references: by the time a
// struct referencing another struct is visited, the referenced struct's
// metadata is already final.
func (p *Parser) propagateStructMetadata() {
	for _, dt := range p.edl.DeveloperTypesOrder {
		if dt.Kind != ir.Struct {
			continue
		}
		for _, field := range dt.Fields {
			if field.HasPointer() {
				dt.ContainsInnerPointer = true
			}
			if field.IsContainer() {
				dt.ContainsContainerType = true
			}
		}
	}

	for _, dt := range p.edl.DeveloperTypesOrder {
		if dt.Kind != ir.Struct {
			continue
		}
		for _, field := range dt.Fields {
			if field.TypeInfo.Kind != ir.Struct {
				continue
			}
			nested, ok := p.edl.DeveloperTypes[field.TypeInfo.Name]
			if !ok {
				continue
			}
			dt.ContainsInnerPointer = dt.ContainsInnerPointer || nested.ContainsInnerPointer
			dt.ContainsContainerType = dt.ContainsContainerType || nested.ContainsContainerType
		}
	}
}
