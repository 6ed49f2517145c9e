package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/qwell/internal/solver"
	"github.com/san-kum/qwell/internal/wells"
)

// Summary renders the geometry and enclosing box of a structure.
func Summary(name string, s wells.Structure, basis int) string {
	var sb strings.Builder
	sb.WriteString(Title.Render(name) + "\n")
	line := func(label, value string) {
		sb.WriteString(MetricLabel.Render(fmt.Sprintf("  %-10s", label)) + MetricValue.Render(value) + "\n")
	}
	line("walls", fmt.Sprintf("%g / %g", s.Vext[0], s.Vext[1]))
	line("wells", fmt.Sprint(s.Wells))
	if len(s.Barriers) > 0 {
		line("barriers", fmt.Sprint(s.Barriers))
		line("heights", fmt.Sprint(s.Vint))
	}
	line("box", fmt.Sprintf("L = %.4g (h = %.4g)", s.Width(), s.Shift()))
	line("basis", fmt.Sprint(basis))
	return sb.String()
}

// SpectrumTable renders one row per bound state with its energy, the gap
// to the previous state and the coefficient norm.
func SpectrumTable(res *solver.Result) string {
	if res.Len() == 0 {
		return Subtle.Render("no bound states") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(fmt.Sprintf("%-6s %14s %14s %10s", "STATE", "ENERGY", "GAP", "NORM")) + "\n")
	for k, e := range res.Energies {
		gap := "-"
		if k > 0 {
			gap = fmt.Sprintf("%.6f", e-res.Energies[k-1])
		}
		sb.WriteString(fmt.Sprintf("%-6d %s %14s %10.6f\n",
			k, MetricValue.Render(fmt.Sprintf("%14.6f", e)), gap, res.Norm(k)))
	}
	if res.Len() > 1 {
		sb.WriteString(MetricLabel.Render("ladder ") + Sparkline(res.Energies) + "\n")
	}
	return sb.String()
}
