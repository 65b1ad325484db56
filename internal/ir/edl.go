package ir

// Edl is the fully validated IR for one parsed module. It is built once
// by Parse and never mutated afterward — the tree rooted here, plus the
// developer-type-name lookups inside it, is the entirety of the parse
// result.
type Edl struct {
	Name string

	DeveloperTypes      map[string]*DeveloperType
	DeveloperTypesOrder []*DeveloperType

	TrustedMap  map[string]*Function
	TrustedList []*Function

	UntrustedMap  map[string]*Function
	UntrustedList []*Function
}

// New returns an empty Edl ready for a parser to populate.
func New(name string) *Edl {
	return &Edl{
		Name:           name,
		DeveloperTypes: map[string]*DeveloperType{},
		TrustedMap:     map[string]*Function{},
		UntrustedMap:   map[string]*Function{},
	}
}

// AddDeveloperType registers a struct or enum, preserving first-seen order.
func (e *Edl) AddDeveloperType(dt *DeveloperType) {
	if _, exists := e.DeveloperTypes[dt.Name]; !exists {
		e.DeveloperTypesOrder = append(e.DeveloperTypesOrder, dt)
	}
	e.DeveloperTypes[dt.Name] = dt
}

// AddFunction registers a function in the given bank, assigning it to
// both the lookup map (keyed by overload signature) and the ordered list.
func (e *Edl) AddFunction(trusted bool, fn *Function) {
	if trusted {
		e.TrustedMap[fn.Signature()] = fn
		e.TrustedList = append(e.TrustedList, fn)
		return
	}
	e.UntrustedMap[fn.Signature()] = fn
	e.UntrustedList = append(e.UntrustedList, fn)
}
