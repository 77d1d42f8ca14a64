package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bullet-dodger/internal/core"
)

// helpStyle dims the key help line.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// styleFor returns the lipgloss style for c. Colors come from the shared
// palette as hex so the terminal matches the window and PNG output;
// lipgloss downsamples them to what the terminal supports.
func styleFor(c core.Color) lipgloss.Style {
	if c == core.ColorDefault {
		return lipgloss.NewStyle()
	}
	rgba := c.RGBA()
	hex := fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// renderer turns screen buffers into styled strings, caching one style per
// color.
type renderer struct {
	styles map[core.Color]lipgloss.Style
}

func newRenderer() *renderer {
	return &renderer{styles: make(map[core.Color]lipgloss.Style)}
}

func (r *renderer) style(c core.Color) lipgloss.Style {
	st, ok := r.styles[c]
	if !ok {
		st = styleFor(c)
		r.styles[c] = st
	}
	return st
}

// Render converts s to a string. Adjacent cells of one color form a single
// styled run; runs of blanks are written unstyled.
func (r *renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			blank := true
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				if cell.Rune != ' ' {
					blank = false
				}
				run.WriteRune(cell.Rune)
			}
			if blank {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(color).Render(run.String()))
		}
	}
	return sb.String()
}
