package fontkit

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Handle is a font family resolved at a concrete pixel size. It measures
// text extents and draws single lines onto a raster.
//
// A Handle serializes access to its underlying face, so a single Handle may
// be shared across goroutines working on different images.
type Handle struct {
	mu     sync.Mutex
	face   font.Face
	family string
	size   int
}

// NewHandle wraps an arbitrary font.Face in a Handle. Intended for tests
// that need fixed, predictable metrics (for example basicfont.Face7x13) and
// for embedders supplying their own font backend.
func NewHandle(face font.Face) *Handle {
	return &Handle{face: face}
}

// Family returns the family name this handle was resolved from. Handles
// created by NewHandle report an empty family.
func (h *Handle) Family() string { return h.family }

// Size returns the pixel size this handle was resolved at.
func (h *Handle) Size() int { return h.size }

// Measure returns the extent of text, which may contain embedded line
// breaks. Width is the maximum ink width over all lines; height is the sum
// of per-line ink heights. Lines are measured independently, no fixed line
// pitch is applied. Empty text measures (0, 0).
func (h *Handle) Measure(text string) (width, height int) {
	if text == "" {
		return 0, 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, line := range strings.Split(text, "\n") {
		w, lh := h.lineSizeLocked(line)
		if w > width {
			width = w
		}
		height += lh
	}
	return width, height
}

// LineSize returns the ink extent of a single line of text.
func (h *Handle) LineSize(line string) (width, height int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lineSizeLocked(line)
}

func (h *Handle) lineSizeLocked(line string) (int, int) {
	if line == "" {
		return 0, 0
	}
	b, _ := font.BoundString(h.face, line)
	return (b.Max.X - b.Min.X).Ceil(), (b.Max.Y - b.Min.Y).Ceil()
}

// Draw renders a single line of text with its ink box anchored at (x, y),
// the top-left corner in dst coordinates. Pixels outside dst's bounds are
// clipped by the drawer.
func (h *Handle) Draw(dst draw.Image, line string, x, y int, c color.Color) {
	if line == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	b, _ := font.BoundString(h.face, line)
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: h.face,
		Dot: fixed.Point26_6{
			X: fixed.I(x) - b.Min.X,
			Y: fixed.I(y) - b.Min.Y,
		},
	}
	d.DrawString(line)
}
