package config

import "sort"

// Presets holds the named problems shipped with qwell. Use GetPreset to
// get a copy that is safe to modify.
var Presets = map[string]*Config{
	"single_well": {
		Name: "single_well", Vext: [2]float64{10, 10},
		Wells: []float64{1}, Basis: 20, Samples: DefaultSamples,
	},
	"double_well": {
		Name: "double_well", Vext: [2]float64{10, 10}, Vint: []float64{5},
		Wells: []float64{1, 1}, Barriers: []float64{0.5}, Basis: 40, Samples: DefaultSamples,
	},
	"triple_well": {
		Name: "triple_well", Vext: [2]float64{10, 10}, Vint: []float64{6, 6},
		Wells: []float64{1, 1, 1}, Barriers: []float64{0.3, 0.3}, Basis: 60, Samples: DefaultSamples,
	},
	"asymmetric": {
		Name: "asymmetric", Vext: [2]float64{12, 8}, Vint: []float64{4},
		Wells: []float64{1.2, 0.8}, Barriers: []float64{0.4}, Basis: 40, Samples: DefaultSamples,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	s := p.Structure()
	c.Vint, c.Wells, c.Barriers = s.Vint, s.Wells, s.Barriers
	return &c
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
