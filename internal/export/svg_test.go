package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/qwell/internal/solver"
	"github.com/san-kum/qwell/internal/wells"
)

func TestSeriesToSVG(t *testing.T) {
	xs := []float64{0, 1, 2}
	svg := SeriesToSVG(xs, []Series{{Label: "a", Color: "#fff", Y: []float64{0, 1, 0}}}, 300, 200)

	if !strings.HasPrefix(svg, "<?xml") {
		t.Error("expected xml header")
	}
	if strings.Count(svg, "<path") != 1 {
		t.Errorf("expected one path, got %d", strings.Count(svg, "<path"))
	}
	if !strings.Contains(svg, " L150.0,") {
		t.Error("expected midpoint at x=150")
	}
}

func TestSeriesToSVG_Empty(t *testing.T) {
	if svg := SeriesToSVG([]float64{0}, []Series{{Y: []float64{1}}}, 10, 10); svg != "" {
		t.Error("expected empty output for a single sample")
	}
	if svg := SeriesToSVG([]float64{0, 1}, nil, 10, 10); svg != "" {
		t.Error("expected empty output without series")
	}
}

func TestStatesToSVG(t *testing.T) {
	s := wells.SingleWell(1, 10)
	res, err := solver.Solve(s, 12)
	if err != nil {
		t.Fatal(err)
	}

	svg := StatesToSVG(wells.NewLayout(s), res, 100, 640, 480)
	if got, want := strings.Count(svg, "<path"), res.Len()+1; got != want {
		t.Errorf("expected %d paths, got %d", want, got)
	}
	if !strings.Contains(svg, "E0 = ") {
		t.Error("expected ground state label")
	}

	path := filepath.Join(t.TempDir(), "states.svg")
	if err := WriteSVG(path, svg); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != svg {
		t.Error("file content mismatch")
	}
}
