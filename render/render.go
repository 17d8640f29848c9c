// Package render draws a patrol map as text, one line per grid row:
// '#' obstacle, '^' start, 'X' visited, 'O' loop-causing obstruction,
// '.' open floor. Cells can be coloured with lipgloss styles.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/trace"
)

// Cell symbols.
const (
	SymbolObstacle    = '#'
	SymbolStart       = '^'
	SymbolVisited     = 'X'
	SymbolObstruction = 'O'
	SymbolOpen        = '.'
)

// Styles holds one lipgloss style per cell kind.
type Styles struct {
	Obstacle    lipgloss.Style
	Start       lipgloss.Style
	Visited     lipgloss.Style
	Obstruction lipgloss.Style
	Open        lipgloss.Style
}

// DefaultStyles colours visited tiles, the start and obstructions.
func DefaultStyles() Styles {
	return Styles{
		Obstacle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
		Start:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		Visited:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F5C542")),
		Obstruction: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
		Open:        lipgloss.NewStyle().Foreground(lipgloss.Color("#444444")),
	}
}

// PlainStyles leaves every cell unstyled.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{Obstacle: s, Start: s, Visited: s, Obstruction: s, Open: s}
}

// Option configures Render.
type Option func(*options)

type options struct {
	path         *trace.Path
	obstructions map[grid.Position]bool
	styles       Styles
	styled       bool
}

// WithPath marks the tiles visited by path.
func WithPath(p *trace.Path) Option {
	return func(o *options) { o.path = p }
}

// WithObstructions marks loop-causing placements.
func WithObstructions(ps []grid.Position) Option {
	return func(o *options) {
		for _, p := range ps {
			o.obstructions[p] = true
		}
	}
}

// WithStyles colours cells with s.
func WithStyles(s Styles) Option {
	return func(o *options) {
		o.styles = s
		o.styled = true
	}
}

// Render draws g with start and any path or obstructions supplied.
// Obstructions win over visited tiles; the start tile wins over both.
func Render(g *grid.Grid, start grid.Position, opts ...Option) string {
	o := options{obstructions: map[grid.Position]bool{}, styles: PlainStyles()}
	for _, opt := range opts {
		opt(&o)
	}

	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := grid.Position{X: x, Y: y}
			sym, style := o.cell(g, start, p)
			if o.styled {
				b.WriteString(style.Render(string(sym)))
			} else {
				b.WriteRune(sym)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func (o *options) cell(g *grid.Grid, start, p grid.Position) (rune, lipgloss.Style) {
	switch {
	case p == start:
		return SymbolStart, o.styles.Start
	case g.Obstacle(p):
		return SymbolObstacle, o.styles.Obstacle
	case o.obstructions[p]:
		return SymbolObstruction, o.styles.Obstruction
	case o.path != nil && o.path.Visited(p):
		return SymbolVisited, o.styles.Visited
	default:
		return SymbolOpen, o.styles.Open
	}
}
