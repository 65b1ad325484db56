package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"edlgen/internal/diag"
)

// Pretty writes a single error in the canonical
// "<path>:<line>:<column>: error <CODE>: <message>" shape, colorizing the
// path, the "error" tag, and the code when color is enabled.
func Pretty(w io.Writer, err *diag.Error, mode ColorMode, isTTY bool) {
	if err == nil {
		return
	}
	if !mode.Resolve(isTTY) {
		fmt.Fprintf(w, "%s:%d:%d: error %s: %s\n", err.File, err.Line, err.Column, err.ID, err.Message())
		return
	}

	pathColor := color.New(color.FgWhite, color.Bold)
	errColor := color.New(color.FgRed, color.Bold)
	codeColor := color.New(color.FgYellow)

	fmt.Fprintf(w,
		"%s: %s %s: %s\n",
		pathColor.Sprintf("%s:%d:%d", err.File, err.Line, err.Column),
		errColor.Sprint("error"),
		codeColor.Sprint(err.ID),
		err.Message(),
	)
}
