package tui

import (
	"math"
	"strings"

	"github.com/vovakirdan/bullet-dodger/internal/core"
)

// blockRune fills the cells covered by a rectangle.
const blockRune = '█'

// ScreenSurface draws arena coordinates onto a character screen, scaling the
// 800x600 arena to the screen's cells. Large text is drawn at normal size.
type ScreenSurface struct {
	screen *core.Screen
}

// NewScreenSurface creates a surface over screen.
func NewScreenSurface(screen *core.Screen) *ScreenSurface {
	return &ScreenSurface{screen: screen}
}

func (s *ScreenSurface) col(x float64) float64 {
	return x * float64(s.screen.Width()) / core.ArenaWidth
}

func (s *ScreenSurface) row(y float64) float64 {
	return y * float64(s.screen.Height()) / core.ArenaHeight
}

// cells converts an arena rectangle into the cells it covers. Any visible
// rectangle covers at least one cell.
func (s *ScreenSurface) cells(r core.Rect) core.CellRect {
	x0 := int(math.Floor(s.col(r.X)))
	y0 := int(math.Floor(s.row(r.Y)))
	x1 := int(math.Ceil(s.col(r.Right())))
	y1 := int(math.Ceil(s.row(r.Bottom())))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.CellRect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// FillRect fills the cells covered by r.
func (s *ScreenSurface) FillRect(r core.Rect, c core.Color) error {
	s.screen.FillCells(s.cells(r), blockRune, c)
	return nil
}

// DrawMesh fills every rectangle of m in order.
func (s *ScreenSurface) DrawMesh(m *core.MeshBuilder) error {
	for _, mr := range m.Rects() {
		if err := s.FillRect(mr.Rect, mr.Color); err != nil {
			return err
		}
	}
	return nil
}

// DrawText writes each line of t starting at the row of t.Y.
func (s *ScreenSurface) DrawText(t core.Text) error {
	y := int(s.row(t.Y))
	for i, line := range strings.Split(t.Body, "\n") {
		x := int(s.col(t.X))
		if t.Align == core.AlignCenter {
			x -= len([]rune(line)) / 2
		}
		s.screen.DrawText(x, y+i, line, t.Color)
	}
	return nil
}
