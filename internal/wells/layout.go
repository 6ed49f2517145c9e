package wells

// Region is a constant-potential interval [Lo, Hi] inside the enclosing well.
type Region struct {
	Lo, Hi float64
	V      float64
}

// Layout is the list of non-zero potential regions of a structure in
// absolute coordinates on [0, L]. Interior wells sit at zero potential and
// are not listed.
type Layout struct {
	H, L    float64
	Regions []Region
}

// NewLayout places s inside the enclosing well using s.Placement. It does
// not validate s: a Vint shorter than Barriers panics with an index out of
// range.
func NewLayout(s Structure) Layout {
	h := s.Shift()
	l := 3 * h

	regions := make([]Region, 0, len(s.Barriers)+2)
	regions = append(regions, Region{Lo: 0, Hi: h, V: s.Vext[0]})

	// offset is the right edge of the previous barrier, starting at h.
	offset := h
	for i, b := range s.Barriers {
		well := s.Wells[i+1]
		if s.Placement == Adjacent {
			well = s.Wells[i]
		}
		lo := offset + well
		regions = append(regions, Region{Lo: lo, Hi: lo + b, V: s.Vint[i]})
		offset = lo + b
	}

	regions = append(regions, Region{Lo: l - h, Hi: l, V: s.Vext[1]})
	return Layout{H: h, L: l, Regions: regions}
}

// PotentialAt returns V(x). Points outside [0, L] and inside wells are 0.
// A point on a shared edge takes the value of the first region listed.
func (lay Layout) PotentialAt(x float64) float64 {
	for _, r := range lay.Regions {
		if x >= r.Lo && x <= r.Hi {
			return r.V
		}
	}
	return 0
}

// Sample evaluates the potential on n uniform points spanning [0, L].
func (lay Layout) Sample(n int) (xs, vs []float64) {
	if n < 2 {
		n = 2
	}
	xs = make([]float64, n)
	vs = make([]float64, n)
	dx := lay.L / float64(n-1)
	for i := range xs {
		xs[i] = float64(i) * dx
		vs[i] = lay.PotentialAt(xs[i])
	}
	return xs, vs
}
