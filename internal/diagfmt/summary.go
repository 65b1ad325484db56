package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"edlgen/internal/diag"
)

var (
	summaryOkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	summaryFailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	summaryHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Summary writes every error in bag (already file/position sorted by
// Bag.Items), one per line via Pretty, followed by a lipgloss-styled totals
// line. It is the multi-file counterpart to Pretty's single-error print.
func Summary(w io.Writer, bag *diag.Bag, mode ColorMode, isTTY bool) {
	items := bag.Items()
	for _, err := range items {
		Pretty(w, err, mode, isTTY)
	}

	useColor := mode.Resolve(isTTY)
	failed := countFiles(items)
	if !bag.HasErrors() {
		line := "no errors"
		if useColor {
			line = summaryOkStyle.Render(line)
		}
		fmt.Fprintln(w, line)
		return
	}

	line := fmt.Sprintf("%d file(s) failed, %d error(s) total", failed.failedFiles, len(items))
	if useColor {
		line = summaryFailStyle.Render(line)
	}
	fmt.Fprintln(w, line)

	if len(failed.files) > 0 {
		hint := "failed: " + strings.Join(failed.files, ", ")
		if useColor {
			hint = summaryHintStyle.Render(hint)
		}
		fmt.Fprintln(w, hint)
	}
}

type fileCounts struct {
	total       int
	failedFiles int
	files       []string
}

func countFiles(items []*diag.Error) fileCounts {
	seen := map[string]bool{}
	var c fileCounts
	for _, err := range items {
		if !seen[err.File] {
			seen[err.File] = true
			c.failedFiles++
			c.files = append(c.files, err.File)
		}
	}
	c.total = len(seen)
	return c
}
