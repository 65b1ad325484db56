// Package diagfmt renders diag.Error and diag.Bag values for a terminal.
// Single-file runs print one error the way the core parser hands it back;
// multi-file runs go through Bag, printing every error followed by one
// lipgloss-styled totals line for the whole batch.
package diagfmt

// ColorMode controls whether output is colorized.
type ColorMode uint8

const (
	// ColorAuto colorizes only when the destination is a terminal.
	ColorAuto ColorMode = iota
	ColorOn
	ColorOff
)

// Resolve decides whether color should be used for the given mode and
// terminal-ness of the destination, per the "on|auto|off" --color flag
// contract.
func (m ColorMode) Resolve(isTTY bool) bool {
	switch m {
	case ColorOn:
		return true
	case ColorOff:
		return false
	default:
		return isTTY
	}
}

// ParseColorMode converts a --color flag value, defaulting to ColorAuto for
// any value it doesn't recognize.
func ParseColorMode(s string) ColorMode {
	switch s {
	case "on":
		return ColorOn
	case "off":
		return ColorOff
	default:
		return ColorAuto
	}
}
