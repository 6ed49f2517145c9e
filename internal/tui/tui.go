// Package tui is an interactive terminal front end for tuning a structure
// and watching its bound states move.
//
// # Key Bindings
//
//	up/down, k/j    select a wall or barrier
//	left/right, h/l lower or raise the selected height
//	+/-             grow or shrink the basis
//	p               toggle the ground-state plot
//	q               quit
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/qwell/internal/solver"
	"github.com/san-kum/qwell/internal/viz"
	"github.com/san-kum/qwell/internal/wells"
)

const (
	heightStep = 0.5
	basisStep  = 5
	maxBasis   = 200
)

type model struct {
	name      string
	structure wells.Structure
	basis     int
	cursor    int
	showPlot  bool
	result    *solver.Result
	err       error
	width     int
}

// New returns a model for s that has already been solved once.
func New(name string, s wells.Structure, basis int) tea.Model {
	m := model{name: name, structure: s.Clone(), basis: basis, width: 80}
	m.solve()
	return m
}

// Run blocks until the user quits.
func Run(name string, s wells.Structure, basis int) error {
	_, err := tea.NewProgram(New(name, s, basis), tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// params lists the editable heights: both walls, then every barrier.
func (m *model) params() []*float64 {
	ps := []*float64{&m.structure.Vext[0], &m.structure.Vext[1]}
	for i := range m.structure.Vint {
		ps = append(ps, &m.structure.Vint[i])
	}
	return ps
}

func (m model) label(i int) string {
	switch i {
	case 0:
		return "left wall"
	case 1:
		return "right wall"
	default:
		return fmt.Sprintf("barrier %d", i-2)
	}
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := 2 + len(m.structure.Vint)
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < n-1 {
			m.cursor++
		}
	case "left", "h", "right", "l":
		// copy the slice so earlier results never alias the edited heights
		m.structure = m.structure.Clone()
		delta := heightStep
		if s := msg.String(); s == "left" || s == "h" {
			delta = -heightStep
		}
		*m.params()[m.cursor] += delta
		m.solve()
	case "+", "=":
		m.basis = min(m.basis+basisStep, maxBasis)
		m.solve()
	case "-", "_":
		m.basis = max(m.basis-basisStep, 1)
		m.solve()
	case "p":
		m.showPlot = !m.showPlot
	}
	return m, nil
}

func (m *model) solve() {
	m.result, m.err = solver.Solve(m.structure, m.basis)
}

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(viz.Summary(m.name, m.structure, m.basis))
	sb.WriteString("\n")

	for i, p := range m.params() {
		line := fmt.Sprintf("  %-12s %8.3f", m.label(i), *p)
		if i == m.cursor {
			line = viz.Selected.Render("> " + line[2:])
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(viz.ErrorText.Render(m.err.Error()) + "\n")
	} else {
		sb.WriteString(viz.SpectrumTable(m.result))
		if split, ok := m.result.Splitting(); ok {
			sb.WriteString(viz.MetricLabel.Render("splitting ") + viz.MetricValue.Render(fmt.Sprintf("%.6g", split)) + "\n")
		}
		if m.showPlot && m.result.Len() > 0 {
			_, psi := m.result.Sample(0, 200)
			sb.WriteString("\n" + asciigraph.Plot(psi,
				asciigraph.Height(10),
				asciigraph.Width(max(m.width-10, 20)),
				asciigraph.Caption("ground state"),
			) + "\n")
		}
	}

	sb.WriteString("\n" + viz.KeyHint.Render("↑/↓ select · ←/→ adjust · +/- basis · p plot · q quit"))
	return viz.Panel.Render(sb.String())
}
