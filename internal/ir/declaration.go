package ir

import "edlgen/internal/token"

// ParentKind is the kind of thing a Declaration lives inside of.
type ParentKind uint8

const (
	ParentFunction ParentKind = iota
	ParentStruct
)

// AttributeInfo is the parsed `[in, out, size=..., count=...]` block
// attached to a declaration. InAndOut is a derived invariant: it is true
// exactly when both In and Out are set.
type AttributeInfo struct {
	In        bool
	Out       bool
	InAndOut  bool
	SizeInfo  *token.Token
	CountInfo *token.Token
}

// IsSizeOrCountPresent reports whether either binding attribute is set.
func (a *AttributeInfo) IsSizeOrCountPresent() bool {
	if a == nil {
		return false
	}
	return a.SizeInfo != nil || a.CountInfo != nil
}

// Declaration is a single field (struct) or parameter/return (function),
// with its resolved type, attributes, and array dimensions.
type Declaration struct {
	ParentKind      ParentKind
	Name            string
	TypeInfo        TypeInfo
	Attributes      *AttributeInfo
	ArrayDimensions []token.Token
}

// HasPointer reports whether the declaration's type is a pointer.
func (d *Declaration) HasPointer() bool { return d.TypeInfo.IsPointer }

// IsContainer reports whether the declaration's type is a Vector.
func (d *Declaration) IsContainer() bool { return d.TypeInfo.Kind == Vector }

// IsType reports whether the declaration's type kind matches k.
func (d *Declaration) IsType(k TypeKind) bool { return d.TypeInfo.Kind == k }

// IsArray reports whether the declaration carries an array dimension.
func (d *Declaration) IsArray() bool { return len(d.ArrayDimensions) > 0 }
