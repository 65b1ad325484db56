// Package ir is the validated in-memory model a parsed EDL module is
// reduced to: developer types, the trusted/untrusted function banks, and
// the per-declaration attribute/pointer/array metadata the emission
// planner consumes. Nothing in this package parses anything — it is the
// pure data model spec'd alongside the parser that builds it.
package ir

// TypeKind is the closed set of type categories a declaration can carry.
type TypeKind uint8

const (
	Void TypeKind = iota
	Bool
	Char
	WChar
	Int8
	Int16
	Int32
	Int64
	UInt8
	UInt16
	UInt32
	UInt64
	Float
	Double
	SizeT
	UIntPtr
	Vector
	Struct
	Enum
	AnonymousEnum
)

// String renders the kind the way a diagnostic message would name it.
func (k TypeKind) String() string {
	switch k {
	case Void:
		return "void"
	case Bool:
		return "bool"
	case Char:
		return "char"
	case WChar:
		return "wchar_t"
	case Int8:
		return "int8_t"
	case Int16:
		return "int16_t"
	case Int32:
		return "int32_t"
	case Int64:
		return "int64_t"
	case UInt8:
		return "uint8_t"
	case UInt16:
		return "uint16_t"
	case UInt32:
		return "uint32_t"
	case UInt64:
		return "uint64_t"
	case Float:
		return "float"
	case Double:
		return "double"
	case SizeT:
		return "size_t"
	case UIntPtr:
		return "uintptr_t"
	case Vector:
		return "vector"
	case Struct:
		return "struct"
	case Enum:
		return "enum"
	case AnonymousEnum:
		return "anonymous enum"
	default:
		return "unknown"
	}
}

// IsPrimitive reports whether the kind belongs to the built-in primitive
// set (everything up through UIntPtr — vector, struct, and the two enum
// kinds are developer/container types, not primitives).
func (k TypeKind) IsPrimitive() bool {
	return k <= UIntPtr
}

// IsUnsignedInteger reports whether the kind is in the subset legal for a
// size/count attribute binding.
func (k TypeKind) IsUnsignedInteger() bool {
	switch k {
	case UInt8, UInt16, UInt32, UInt64, SizeT:
		return true
	default:
		return false
	}
}

// primitiveNames maps the EDL spelling of every primitive, plus "vector",
// to its TypeKind. This is the static table spec.md §4.B calls for; it is
// process-wide immutable data, built once at package init.
var primitiveNames = map[string]TypeKind{
	"void":      Void,
	"bool":      Bool,
	"char":      Char,
	"wchar_t":   WChar,
	"int8_t":    Int8,
	"int16_t":   Int16,
	"int32_t":   Int32,
	"int64_t":   Int64,
	"uint8_t":   UInt8,
	"uint16_t":  UInt16,
	"uint32_t":  UInt32,
	"uint64_t":  UInt64,
	"float":     Float,
	"double":    Double,
	"size_t":    SizeT,
	"uintptr_t": UIntPtr,
	"vector":    Vector,
}

// LookupPrimitive returns the TypeKind for a primitive or "vector" name.
func LookupPrimitive(name string) (TypeKind, bool) {
	k, ok := primitiveNames[name]
	return k, ok
}

// IsPrimitiveName reports whether name is a primitive or "vector" keyword.
func IsPrimitiveName(name string) bool {
	_, ok := primitiveNames[name]
	return ok
}

// AnonymousEnumName is the fixed sentinel type name every unnamed `enum`
// block in a module merges into.
const AnonymousEnumName = "__anonymous_enum__"

// ReturnValueName is the synthetic declaration name given to a function's
// return slot.
const ReturnValueName = "_return_value_"

// TypeInfo describes the type of a declaration. InnerType is populated
// only when Kind is Vector.
type TypeInfo struct {
	Name      string
	Kind      TypeKind
	IsPointer bool
	InnerType *TypeInfo
}
