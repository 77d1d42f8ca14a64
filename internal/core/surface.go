package core

// Align controls horizontal placement of a text block relative to its X.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Text is a block of (possibly multi-line) text in arena coordinates.
// Y is the top of the first line.
type Text struct {
	X, Y  float64
	Body  string
	Color Color
	Align Align
	Large bool // Headline size where the surface supports it
}

// Surface is the host drawing boundary. Coordinates are arena units; the
// surface maps them onto its own pixels or cells. Errors come from the host
// and abort the current frame only.
type Surface interface {
	// FillRect draws a single filled rectangle immediately.
	FillRect(r Rect, c Color) error
	// DrawMesh draws every rectangle accumulated in m in one batch.
	DrawMesh(m *MeshBuilder) error
	// DrawText draws a text block.
	DrawText(t Text) error
}

// MeshRect is one filled rectangle of a batched mesh.
type MeshRect struct {
	Rect  Rect
	Color Color
}

// MeshBuilder accumulates filled rectangles for a single batched draw.
type MeshBuilder struct {
	rects []MeshRect
}

// NewMeshBuilder creates an empty mesh builder.
func NewMeshBuilder() *MeshBuilder {
	return &MeshBuilder{rects: make([]MeshRect, 0, 64)}
}

// Rectangle appends a filled rectangle to the mesh.
func (m *MeshBuilder) Rectangle(r Rect, c Color) *MeshBuilder {
	m.rects = append(m.rects, MeshRect{Rect: r, Color: c})
	return m
}

// Rects returns the accumulated rectangles in insertion order.
func (m *MeshBuilder) Rects() []MeshRect {
	return m.rects
}

// Len returns the number of accumulated rectangles.
func (m *MeshBuilder) Len() int {
	return len(m.rects)
}

// Reset empties the mesh for reuse.
func (m *MeshBuilder) Reset() {
	m.rects = m.rects[:0]
}
