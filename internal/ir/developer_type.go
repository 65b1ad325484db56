package ir

import "edlgen/internal/token"

// EnumMember is a single `name [= value]` entry inside an enum block.
type EnumMember struct {
	Name             string
	Position         uint64
	DeclaredPosition *uint64
	ValueToken       *token.Token
	IsHex            bool
	IsDefault        bool
}

// DeveloperType is a struct or enum declared in the module. For enums,
// Fields is empty; for structs, Items is empty.
type DeveloperType struct {
	Name     string
	Kind     TypeKind // Struct, Enum, or AnonymousEnum
	Fields   []Declaration
	Items    map[string]EnumMember
	// ItemOrder preserves the declaration order of Items, since Go maps
	// do not — needed for deterministic emission of enum bodies.
	ItemOrder []string

	ContainsInnerPointer  bool
	ContainsContainerType bool
}

// NewStruct returns an empty struct-shaped DeveloperType.
func NewStruct(name string) DeveloperType {
	return DeveloperType{Name: name, Kind: Struct}
}

// NewEnum returns an empty enum-shaped DeveloperType (named or anonymous).
func NewEnum(name string, anonymous bool) DeveloperType {
	kind := Enum
	if anonymous {
		kind = AnonymousEnum
	}
	return DeveloperType{Name: name, Kind: kind, Items: map[string]EnumMember{}}
}

// AddMember appends an enum member, preserving declaration order.
func (d *DeveloperType) AddMember(m EnumMember) {
	if d.Items == nil {
		d.Items = map[string]EnumMember{}
	}
	d.Items[m.Name] = m
	d.ItemOrder = append(d.ItemOrder, m.Name)
}
