// Package sweep solves a structure over a range of barrier heights.
//
// Each solve is independent, so points are computed concurrently and
// returned in input order.
package sweep

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/qwell/internal/solver"
	"github.com/san-kum/qwell/internal/wells"
)

// Point is the spectrum of the structure at one barrier height.
type Point struct {
	Barrier  float64   `json:"barrier"`
	Energies []float64 `json:"energies"`
	// Splitting is E₁ − E₀, or nil with fewer than two bound states.
	Splitting *float64 `json:"splitting"`
}

// Result holds one Point per requested height.
type Result struct {
	Basis  int     `json:"basis"`
	Points []Point `json:"points"`
}

// Linspace returns n evenly spaced values over [from, to].
func Linspace(from, to float64, n int) []float64 {
	if n <= 1 {
		return []float64{from}
	}
	out := make([]float64, n)
	step := (to - from) / float64(n-1)
	for i := range out {
		out[i] = from + float64(i)*step
	}
	return out
}

// BarrierHeights solves s with every barrier set to each of heights. The
// first failing solve cancels the rest.
func BarrierHeights(ctx context.Context, s wells.Structure, numBasis int, heights []float64) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	points := make([]Point, len(heights))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, v := range heights {
		i, v := i, v
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := solver.Solve(s.WithBarrierHeight(v), numBasis)
			if err != nil {
				return err
			}
			points[i] = Point{Barrier: v, Energies: res.Energies}
			if split, ok := res.Splitting(); ok {
				points[i].Splitting = &split
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Result{Basis: numBasis, Points: points}, nil
}
