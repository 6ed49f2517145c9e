package wells

import "fmt"

// Placement selects how barrier offsets are accumulated inside the
// structure. The zero value is Shifted.
type Placement int

const (
	// Shifted walks the wells from the second one onward: barrier i starts
	// at h + Σ_{k=1..i+1} Wells[k] + Σ_{k<i} Barriers[k]. The first well
	// never enters a barrier offset. For equal wells it matches Adjacent.
	Shifted Placement = iota
	// Adjacent places barrier i directly after well i:
	// h + Σ_{k=0..i} Wells[k] + Σ_{k<i} Barriers[k].
	Adjacent
)

func (p Placement) String() string {
	switch p {
	case Shifted:
		return "shifted"
	case Adjacent:
		return "adjacent"
	default:
		return fmt.Sprintf("placement(%d)", int(p))
	}
}

// ParsePlacement accepts "shifted", "adjacent" or the empty string, which
// selects Shifted.
func ParsePlacement(s string) (Placement, error) {
	switch s {
	case "", "shifted":
		return Shifted, nil
	case "adjacent":
		return Adjacent, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlacement, s)
	}
}

func (p Placement) MarshalText() ([]byte, error) {
	if p != Shifted && p != Adjacent {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlacement, int(p))
	}
	return []byte(p.String()), nil
}

func (p *Placement) UnmarshalText(text []byte) error {
	v, err := ParsePlacement(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
