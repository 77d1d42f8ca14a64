package window

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/bullet-dodger/internal/core"
)

// Debug font metrics in pixels.
const (
	glyphW     = 6
	glyphH     = 16
	largeScale = 2
)

// ImageSurface draws onto an ebiten image whose pixels are arena units.
type ImageSurface struct {
	dst *ebiten.Image

	// large caches headline text images; headlines are static strings.
	large map[string]*ebiten.Image
}

// NewImageSurface creates a surface drawing onto dst.
func NewImageSurface(dst *ebiten.Image) *ImageSurface {
	return &ImageSurface{dst: dst, large: make(map[string]*ebiten.Image)}
}

// SetTarget changes the destination image.
func (s *ImageSurface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

// FillRect draws one filled rectangle.
func (s *ImageSurface) FillRect(r core.Rect, c core.Color) error {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c.RGBA(), false)
	return nil
}

// DrawMesh draws every rectangle of m.
func (s *ImageSurface) DrawMesh(m *core.MeshBuilder) error {
	for _, mr := range m.Rects() {
		vector.DrawFilledRect(s.dst, float32(mr.Rect.X), float32(mr.Rect.Y), float32(mr.Rect.W), float32(mr.Rect.H), mr.Color.RGBA(), false)
	}
	return nil
}

// DrawText prints t with the debug font. Large text is drawn at twice the
// size and tinted with its color; normal text is white.
func (s *ImageSurface) DrawText(t core.Text) error {
	if t.Large {
		s.drawLarge(t)
		return nil
	}
	for i, line := range strings.Split(t.Body, "\n") {
		x := int(t.X)
		if t.Align == core.AlignCenter {
			x -= len([]rune(line)) * glyphW / 2
		}
		ebitenutil.DebugPrintAt(s.dst, line, x, int(t.Y)+i*glyphH)
	}
	return nil
}

func (s *ImageSurface) drawLarge(t core.Text) {
	img, ok := s.large[t.Body]
	if !ok {
		lines := strings.Split(t.Body, "\n")
		width := 0
		for _, l := range lines {
			width = max(width, len([]rune(l)))
		}
		img = ebiten.NewImage(max(width*glyphW, 1), len(lines)*glyphH)
		ebitenutil.DebugPrint(img, t.Body)
		s.large[t.Body] = img
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(largeScale, largeScale)
	x := t.X
	if t.Align == core.AlignCenter {
		x -= float64(img.Bounds().Dx()*largeScale) / 2
	}
	op.GeoM.Translate(x, t.Y)
	op.ColorScale.ScaleWithColor(t.Color.RGBA())
	s.dst.DrawImage(img, op)
}
