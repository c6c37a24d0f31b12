package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-classics/internal/core"
)

// Palette holds one lipgloss style per core.Color. Styles are bound to a
// renderer so SSH sessions get their own client's color profile.
type Palette struct {
	styles []lipgloss.Style
}

// NewPalette builds a palette on r, or on the default renderer when r is nil.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	colors := core.Colors()
	p := Palette{styles: make([]lipgloss.Style, len(colors))}
	for _, c := range colors {
		s := r.NewStyle()
		if code := c.ANSI(); code >= 0 {
			s = s.Foreground(lipgloss.Color(strconv.Itoa(code)))
		}
		p.styles[c] = s
	}
	return p
}

func (p Palette) style(c core.Color) lipgloss.Style {
	if int(c) < len(p.styles) {
		return p.styles[c]
	}
	return p.styles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of the same color share one escape sequence.
func (p Palette) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders s with the default renderer.
func RenderScreen(s *core.Screen) string {
	return NewPalette(nil).RenderScreen(s)
}
