package layout

import "fmt"

// Alignment specifies horizontal alignment of each line against the widest
// line of the text block.
type Alignment int

const (
	// AlignLeft starts every line at x = 0 (default).
	AlignLeft Alignment = iota
	// AlignCenter centers each line on the widest line.
	AlignCenter
	// AlignRight aligns the end of each line with the widest line.
	AlignRight
)

// String returns the lower-case name used by the command-line tools.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// ratio is the share of a line's slack (maxAdvance - lineAdvance) that is
// added in front of the line.
func (a Alignment) ratio() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1.0
	default:
		return 0
	}
}

// ParseAlignment converts "left", "center" or "right" to an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "left", "":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("layout: unknown alignment %q", s)
}

// Options configures a layout call. The zero value lays out left-aligned.
type Options struct {
	Alignment Alignment
}
