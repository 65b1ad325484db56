package diag

import "fmt"

// Error is the single-fatal-error value the parser returns. EDL analysis
// stops at the first violation it finds — there is no accumulation inside
// the core parser, only here at the reporting boundary.
type Error struct {
	ID     Code
	File   string
	Line   uint32
	Column uint32
	Args   []string
}

// New builds an Error for id, formatting args into its message template
// positionally.
func New(id Code, file string, line, column uint32, args ...string) *Error {
	return &Error{ID: id, File: file, Line: line, Column: column, Args: args}
}

// Message renders the human-readable text for this error, independent of
// file/line/column framing.
func (e *Error) Message() string {
	tmpl, ok := messageTemplates[e.ID]
	if !ok {
		return "unknown error"
	}
	anyArgs := make([]any, len(e.Args))
	for i, a := range e.Args {
		anyArgs[i] = a
	}
	return fmt.Sprintf(tmpl, anyArgs...)
}

// Error implements the standard error interface with the canonical
// "file:line:column: code: message" shape.
func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", e.File, e.Line, e.Column, e.ID, e.Message())
}
