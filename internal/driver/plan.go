package driver

import (
	"edlgen/internal/diag"
	"edlgen/internal/emitplan"
	"edlgen/internal/ir"
	"edlgen/internal/parser"
)

// PlanResult is the outcome of the "plan" subcommand: parse then plan, with
// no cache interaction (that's GenerateFile's job).
type PlanResult struct {
	Path     string
	Edl      *ir.Edl
	Plan     *emitplan.ModulePlan
	ParseErr *diag.Error
}

// Plan parses path and computes its emission plan.
func Plan(path string) (*PlanResult, error) {
	edl, err := parser.Parse(path)
	if err != nil {
		diagErr, _ := err.(*diag.Error)
		return &PlanResult{Path: path, ParseErr: diagErr}, nil
	}
	return &PlanResult{Path: path, Edl: edl, Plan: emitplan.Plan(edl)}, nil
}
