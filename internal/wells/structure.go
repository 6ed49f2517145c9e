package wells

import (
	"fmt"
	"math"
)

// Structure is a piecewise-constant potential: interior wells at zero
// potential, barriers between consecutive wells, and two exterior walls.
type Structure struct {
	// Vext holds the left and right exterior wall heights.
	Vext [2]float64 `json:"vext" yaml:"vext"`
	// Vint holds one height per barrier.
	Vint []float64 `json:"vint" yaml:"vint"`
	// Wells holds the width of each interior well.
	Wells []float64 `json:"wells" yaml:"wells"`
	// Barriers holds the gap between Wells[i] and Wells[i+1].
	Barriers []float64 `json:"barriers" yaml:"barriers"`
	// Placement selects how barrier offsets are accumulated.
	Placement Placement `json:"placement,omitempty" yaml:"placement,omitempty"`
}

// SingleWell returns a lone well of the given width between walls of height v.
func SingleWell(width, v float64) Structure {
	return Structure{Vext: [2]float64{v, v}, Wells: []float64{width}}
}

// Validate checks the shape and widths of s. The returned error wraps one
// of the package sentinels.
func (s Structure) Validate() error {
	if len(s.Wells) == 0 {
		return ErrNoWells
	}
	if len(s.Barriers) != len(s.Wells)-1 {
		return fmt.Errorf("%w: %d wells need %d barriers, got %d",
			ErrShapeMismatch, len(s.Wells), len(s.Wells)-1, len(s.Barriers))
	}
	if len(s.Vint) != len(s.Barriers) {
		return fmt.Errorf("%w: %d barriers need %d heights, got %d",
			ErrShapeMismatch, len(s.Barriers), len(s.Barriers), len(s.Vint))
	}
	if s.Placement != Shifted && s.Placement != Adjacent {
		return fmt.Errorf("%w: %d", ErrUnknownPlacement, int(s.Placement))
	}
	for i, w := range s.Wells {
		if !(w > 0) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: well %d has width %g", ErrNonPositiveWidth, i, w)
		}
	}
	for i, b := range s.Barriers {
		if !(b > 0) || math.IsInf(b, 0) {
			return fmt.Errorf("%w: barrier %d has width %g", ErrNonPositiveWidth, i, b)
		}
	}
	for i, v := range s.Vext {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: exterior wall %d is %g", ErrNonFinitePotential, i, v)
		}
	}
	for i, v := range s.Vint {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: barrier %d is %g", ErrNonFinitePotential, i, v)
		}
	}
	return nil
}

// Shift returns h, the total width of all wells and barriers. The structure
// starts at x = h inside the enclosing well.
func (s Structure) Shift() float64 {
	h := 0.0
	for _, w := range s.Wells {
		h += w
	}
	for _, b := range s.Barriers {
		h += b
	}
	return h
}

// Width returns L = 3h, the width of the enclosing infinite well.
func (s Structure) Width() float64 {
	return 3 * s.Shift()
}

// MinWall returns the lower exterior wall. Only states below it are bound.
func (s Structure) MinWall() float64 {
	return math.Min(s.Vext[0], s.Vext[1])
}

// WithBarrierHeight returns a copy of s with every barrier set to v.
func (s Structure) WithBarrierHeight(v float64) Structure {
	c := s.Clone()
	for i := range c.Vint {
		c.Vint[i] = v
	}
	return c
}

// Clone returns a deep copy of s.
func (s Structure) Clone() Structure {
	c := Structure{Vext: s.Vext, Placement: s.Placement}
	c.Vint = append([]float64(nil), s.Vint...)
	c.Wells = append([]float64(nil), s.Wells...)
	c.Barriers = append([]float64(nil), s.Barriers...)
	return c
}
