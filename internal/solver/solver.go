// Package solver finds the bound states of a piecewise-constant potential
// with the Rayleigh-Ritz method in an infinite-square-well basis.
//
// # Example
//
//	s := wells.SingleWell(1, 10)
//	res, err := solver.Solve(s, 20)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Energies)
package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/qwell/internal/hamiltonian"
	"github.com/san-kum/qwell/internal/wells"
)

// ErrNoConvergence indicates the symmetric eigensolver failed.
var ErrNoConvergence = errors.New("solver: eigendecomposition did not converge")

// Result holds the bound states of one solve.
type Result struct {
	// Energies are ascending and all below the lower exterior wall.
	Energies []float64 `json:"energies"`
	// Vectors[k] holds the basis coefficients of the state with Energies[k].
	Vectors [][]float64 `json:"vectors"`
	// L is the width of the enclosing infinite well, H the structure offset.
	L     float64 `json:"l"`
	H     float64 `json:"h"`
	Basis int     `json:"basis"`
}

// Len returns the number of bound states.
func (r *Result) Len() int { return len(r.Energies) }

// Solve diagonalizes the Hamiltonian of s in a basis of numBasis functions
// and keeps the eigenpairs below min(Vext). Finding no bound state is not
// an error.
func Solve(s wells.Structure, numBasis int) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if numBasis < 1 {
		return nil, fmt.Errorf("%w: got %d", wells.ErrBasisSize, numBasis)
	}

	lay := wells.NewLayout(s)
	h := hamiltonian.Build(lay, numBasis)

	var es mat.EigenSym
	if ok := es.Factorize(h, true); !ok {
		return nil, ErrNoConvergence
	}
	values := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	// values are ascending, so the bound states form a prefix
	limit := s.MinWall()
	bound := 0
	for bound < len(values) && values[bound] < limit {
		bound++
	}

	res := &Result{
		Energies: make([]float64, bound),
		Vectors:  make([][]float64, bound),
		L:        lay.L,
		H:        lay.H,
		Basis:    numBasis,
	}
	copy(res.Energies, values[:bound])
	for k := 0; k < bound; k++ {
		res.Vectors[k] = mat.Col(nil, k, &vecs)
	}
	return res, nil
}
