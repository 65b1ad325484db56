// Package emitplan walks a validated ir.Edl and computes the emission plan
// the (out-of-scope) text renderer consumes: which files to produce, which
// named sections each contains, and how each function's parameters marshal
// across the trust boundary. Nothing here renders text — ModulePlan is a
// pure data structure, and Plan is a pure function of its Edl argument.
package emitplan

import "edlgen/internal/ir"

// ModulePlan is the root of one module's emission plan.
type ModulePlan struct {
	ModuleName  string
	Files       []FilePlan
	Functions   []*FunctionPlan
	Diagnostics []string
}

// FilePlan is one of the six logical output files, named by Name, with an
// ordered list of section identifiers a renderer walks in order.
type FilePlan struct {
	Name     string
	Sections []string
}

// Plan computes the emission plan for edl. Output order is entirely a
// function of edl's own order: developer types follow DeveloperTypesOrder,
// functions follow TrustedList then UntrustedList.
func Plan(edl *ir.Edl) *ModulePlan {
	fnPlans := make([]*FunctionPlan, 0, len(edl.TrustedList)+len(edl.UntrustedList))
	for _, fn := range edl.TrustedList {
		fnPlans = append(fnPlans, buildFunctionPlan(fn))
	}
	for _, fn := range edl.UntrustedList {
		fnPlans = append(fnPlans, buildFunctionPlan(fn))
	}

	return &ModulePlan{
		ModuleName: edl.Name,
		Files:      buildFiles(edl),
		Functions:  fnPlans,
	}
}
