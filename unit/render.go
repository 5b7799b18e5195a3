package unit

import (
	"fmt"
	"strings"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

var flavor = catppuccin.Mocha

func verdictStyle(res Result) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch res {
	case Success:
		return style.Foreground(lipgloss.Color(flavor.Green().Hex))
	case Skipped:
		return style.Foreground(lipgloss.Color(flavor.Blue().Hex))
	case Failure:
		return style.Foreground(lipgloss.Color(flavor.Red().Hex))
	case Error:
		return style.Foreground(lipgloss.Color(flavor.Maroon().Hex))
	default:
		return style.Foreground(lipgloss.Color(flavor.Peach().Hex))
	}
}

// Render renders the report for terminal output, one line per field, with
// the verdict colored when styled is set.
func (r *Report) Render(styled bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "name: %s\n", r.Name)
	for res := Success; res <= Invalid; res++ {
		fmt.Fprintf(&sb, "%s: %d\n", res, r.counts[res])
	}

	verdict := r.Result().String()
	if styled {
		verdict = verdictStyle(r.Result()).Render(verdict)
	}
	fmt.Fprintf(&sb, "result: %s", verdict)
	return sb.String()
}
