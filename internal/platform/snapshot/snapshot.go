// Package snapshot renders frames into images with gg, for headless runs
// and tests.
package snapshot

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/bullet-dodger/internal/core"
)

// lineSpacing is the distance between text lines in font heights.
const lineSpacing = 1.5

// Surface draws arena coordinates into an RGBA image of any size.
type Surface struct {
	dc     *gg.Context
	width  int
	height int
}

// New creates a surface of width x height pixels. The arena is scaled to
// fill the image.
func New(width, height int) *Surface {
	dc := gg.NewContext(width, height)
	dc.Scale(float64(width)/core.ArenaWidth, float64(height)/core.ArenaHeight)
	s := &Surface{dc: dc, width: width, height: height}
	s.Clear()
	return s
}

// Clear fills the image with the background color.
func (s *Surface) Clear() {
	s.dc.SetColor(core.Background)
	s.dc.Clear()
}

// FillRect draws one filled rectangle.
func (s *Surface) FillRect(r core.Rect, c core.Color) error {
	s.dc.SetColor(c.RGBA())
	s.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	s.dc.Fill()
	return nil
}

// DrawMesh draws every rectangle of m.
func (s *Surface) DrawMesh(m *core.MeshBuilder) error {
	for _, mr := range m.Rects() {
		if err := s.FillRect(mr.Rect, mr.Color); err != nil {
			return err
		}
	}
	return nil
}

// DrawText draws t with gg's built-in face. Large text is doubled.
func (s *Surface) DrawText(t core.Text) error {
	ax := 0.0
	if t.Align == core.AlignCenter {
		ax = 0.5
	}

	s.dc.Push()
	defer s.dc.Pop()
	if t.Large {
		s.dc.ScaleAbout(2, 2, t.X, t.Y)
	}

	s.dc.SetColor(t.Color.RGBA())
	lh := s.dc.FontHeight() * lineSpacing
	for i, line := range strings.Split(t.Body, "\n") {
		s.dc.DrawStringAnchored(line, t.X, t.Y+float64(i)*lh, ax, 1)
	}
	return nil
}

// Image returns the rendered frame.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the frame as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("snapshot: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the frame to a PNG file.
func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: save %s: %w", path, err)
	}
	return nil
}
