package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/qwell/internal/solver"
	"github.com/san-kum/qwell/internal/sweep"
	"github.com/san-kum/qwell/internal/wells"
)

type PlotOptions struct {
	Width   int
	Height  int
	Samples int
	// States limits how many wavefunctions are drawn; 0 draws all.
	States int
	// Density draws |ψ|² instead of ψ.
	Density bool
}

func DefaultPlotOptions() PlotOptions {
	return PlotOptions{Width: 80, Height: 12, Samples: 200}
}

// PlotPotential draws V(x) over the enclosing box.
func PlotPotential(lay wells.Layout, opts PlotOptions) string {
	_, vs := lay.Sample(opts.Samples)
	return asciigraph.Plot(vs,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption(fmt.Sprintf("V(x) on [0, %.3g]", lay.L)),
	)
}

// PlotStates draws the potential followed by one graph per bound state.
func PlotStates(lay wells.Layout, res *solver.Result, opts PlotOptions) string {
	var sb strings.Builder
	sb.WriteString(PlotPotential(lay, opts))
	sb.WriteString("\n\n")

	n := res.Len()
	if opts.States > 0 {
		n = min(n, opts.States)
	}
	for k := 0; k < n; k++ {
		var ys []float64
		caption := fmt.Sprintf("psi_%d  E = %.6f", k, res.Energies[k])
		if opts.Density {
			_, ys = res.Density(k, opts.Samples)
			caption = fmt.Sprintf("|psi_%d|^2  E = %.6f", k, res.Energies[k])
		} else {
			_, ys = res.Sample(k, opts.Samples)
		}
		sb.WriteString(asciigraph.Plot(ys,
			asciigraph.Height(opts.Height),
			asciigraph.Width(opts.Width),
			asciigraph.Caption(caption),
		))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// PlotSweep draws the ground-pair splitting against barrier height. Points
// without a splitting are left out.
func PlotSweep(res *sweep.Result, opts PlotOptions) string {
	ys := make([]float64, 0, len(res.Points))
	for _, p := range res.Points {
		if p.Splitting != nil {
			ys = append(ys, *p.Splitting)
		}
	}
	if len(ys) == 0 {
		return Subtle.Render("no split ground pair in sweep")
	}
	first, last := res.Points[0].Barrier, res.Points[len(res.Points)-1].Barrier
	return asciigraph.Plot(ys,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption(fmt.Sprintf("E1 - E0 for barrier %.3g .. %.3g", first, last)),
	)
}
