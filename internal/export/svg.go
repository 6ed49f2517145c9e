package export

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/san-kum/qwell/internal/solver"
	"github.com/san-kum/qwell/internal/wells"
)

var palette = []string{"#00ffff", "#ff00ff", "#ffcc00", "#00ff88", "#ff6b6b", "#88aaff"}

// Series is one curve drawn over x.
type Series struct {
	Label  string
	Color  string
	Y      []float64
	Offset float64
}

// StatesToSVG draws the potential in grey and each bound state offset by
// its energy, the usual textbook picture of a level diagram. Wavefunctions
// are scaled to a fraction of the lowest wall so they stay readable.
func StatesToSVG(lay wells.Layout, res *solver.Result, samples, width, height int) string {
	xs, vs := lay.Sample(samples)

	series := []Series{{Label: "V(x)", Color: "#666688", Y: vs}}

	top := 0.0
	for _, v := range vs {
		top = math.Max(top, v)
	}
	scale := 0.1 * top
	if scale == 0 {
		scale = 1
	}
	for k := range res.Energies {
		_, psi := res.Sample(k, samples)
		peak := 0.0
		for _, p := range psi {
			peak = math.Max(peak, math.Abs(p))
		}
		if peak > 0 {
			for i := range psi {
				psi[i] *= scale / peak
			}
		}
		series = append(series, Series{
			Label:  fmt.Sprintf("E%d = %.4f", k, res.Energies[k]),
			Color:  palette[k%len(palette)],
			Y:      psi,
			Offset: res.Energies[k],
		})
	}
	return SeriesToSVG(xs, series, width, height)
}

// SeriesToSVG renders curves sharing the x samples xs on common axes.
func SeriesToSVG(xs []float64, series []Series, width, height int) string {
	if len(xs) < 2 || len(series) == 0 {
		return ""
	}

	minX, maxX := xs[0], xs[len(xs)-1]
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, y := range s.Y {
			minY = math.Min(minY, y+s.Offset)
			maxY = math.Max(maxY, y+s.Offset)
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.05
	rangeY *= 1.1

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for si, s := range series {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, s.Color))
		for i, y := range s.Y {
			if i >= len(xs) {
				break
			}
			px := (xs[i] - minX) / rangeX * float64(width)
			py := float64(height) - (y+s.Offset-minY)/rangeY*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
			}
		}
		sb.WriteString("\"/>\n")
		sb.WriteString(fmt.Sprintf(`<text x="8" y="%d" fill="%s" font-family="monospace" font-size="12">%s</text>
`, 16+14*si, s.Color, s.Label))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteSVG writes svg to path, or to stdout when path is "-".
func WriteSVG(path, svg string) error {
	if path == "-" {
		_, err := io.WriteString(os.Stdout, svg)
		return err
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
