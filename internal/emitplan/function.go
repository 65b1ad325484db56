package emitplan

import "edlgen/internal/ir"

// MarshalKind is the closed set of strategies a parameter can use to cross
// the trust boundary.
type MarshalKind uint8

const (
	Scalar MarshalKind = iota
	Enum
	StructByValue
	PointerSized
	PointerCounted
	Vector
)

func (k MarshalKind) String() string {
	switch k {
	case Scalar:
		return "Scalar"
	case Enum:
		return "Enum"
	case StructByValue:
		return "StructByValue"
	case PointerSized:
		return "PointerSized"
	case PointerCounted:
		return "PointerCounted"
	case Vector:
		return "Vector"
	default:
		return "Unknown"
	}
}

// ParamPlan is one function parameter's (or return value's) crossing plan.
type ParamPlan struct {
	Name string

	Forward bool // direction includes 'in'
	Return  bool // direction includes 'out'

	ConvertInStruct bool // a forwarded struct/vector needs an input record
	CopyBackOut     bool // a returned pointer needs its buffer copied back

	SizeBinding  string // resolved sibling name or literal text, if any
	CountBinding string

	MarshalKind MarshalKind
}

// FunctionPlan is one function's full emission plan: its two serialized
// records and the per-parameter crossing plan for every parameter plus the
// return value.
type FunctionPlan struct {
	Function *ir.Function

	ArgsRecordName string // "{abi_name}_args"
	RetsRecordName string // "{abi_name}_rets"

	Params      []ParamPlan
	ReturnParam ParamPlan
}

func buildFunctionPlan(fn *ir.Function) *FunctionPlan {
	fp := &FunctionPlan{
		Function:       fn,
		ArgsRecordName: fn.AbiName + "_args",
		RetsRecordName: fn.AbiName + "_rets",
		ReturnParam:    buildParamPlan(fn.ReturnInfo),
	}
	for _, param := range fn.Parameters {
		fp.Params = append(fp.Params, buildParamPlan(param))
	}
	return fp
}

func buildParamPlan(d ir.Declaration) ParamPlan {
	pp := ParamPlan{Name: d.Name}

	if attrs := d.Attributes; attrs != nil {
		pp.Forward = attrs.In || attrs.InAndOut
		pp.Return = attrs.Out || attrs.InAndOut
		if attrs.SizeInfo != nil {
			pp.SizeBinding = attrs.SizeInfo.Text
		}
		if attrs.CountInfo != nil {
			pp.CountBinding = attrs.CountInfo.Text
		}
	}

	pp.ConvertInStruct = pp.Forward && (d.TypeInfo.Kind == ir.Struct || d.IsContainer())
	pp.CopyBackOut = pp.Return && d.HasPointer()
	pp.MarshalKind = classifyMarshalKind(d)
	return pp
}

// classifyMarshalKind picks the crossing strategy for a single declaration.
// Count takes priority over size when a pointer carries both — the planner
// needs exactly one strategy per parameter.
func classifyMarshalKind(d ir.Declaration) MarshalKind {
	if d.IsContainer() {
		return Vector
	}
	if d.HasPointer() {
		if d.Attributes != nil && d.Attributes.CountInfo != nil {
			return PointerCounted
		}
		return PointerSized
	}
	switch d.TypeInfo.Kind {
	case ir.Struct:
		return StructByValue
	case ir.Enum, ir.AnonymousEnum:
		return Enum
	default:
		return Scalar
	}
}
