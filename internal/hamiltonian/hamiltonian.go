// Package hamiltonian assembles the Hamiltonian of a piecewise-constant
// potential in the infinite-square-well basis.
//
// Matrix index i corresponds to basis index n = i+1.
package hamiltonian

import (
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/qwell/internal/basis"
	"github.com/san-kum/qwell/internal/wells"
)

// Element returns ⟨n|V|m⟩ for the regions of lay.
func Element(lay wells.Layout, n, m int) float64 {
	v := 0.0
	for _, r := range lay.Regions {
		if r.V == 0 {
			continue
		}
		v += r.V * basis.Overlap(n, m, r.Lo, r.Hi, lay.L)
	}
	return v
}

// PotentialElement returns ⟨n|V|m⟩ for s. It rebuilds the layout on every
// call; use [Element] when filling a whole matrix. s is not validated.
func PotentialElement(n, m int, s wells.Structure) float64 {
	return Element(wells.NewLayout(s), n, m)
}

// Potential returns the size×size potential matrix of lay.
func Potential(lay wells.Layout, size int) *mat.SymDense {
	v := mat.NewSymDense(size, nil)
	for i := 0; i < size; i++ {
		for j := i; j < size; j++ {
			v.SetSym(i, j, Element(lay, i+1, j+1))
		}
	}
	return v
}

// Free returns the diagonal of free infinite-well energies.
func Free(l float64, size int) []float64 {
	e := make([]float64, size)
	for i := range e {
		e[i] = basis.FreeEnergy(i+1, l)
	}
	return e
}

// Build returns the full Hamiltonian diag(Free) + Potential.
func Build(lay wells.Layout, size int) *mat.SymDense {
	h := Potential(lay, size)
	for i, e := range Free(lay.L, size) {
		h.SetSym(i, i, h.At(i, i)+e)
	}
	return h
}
