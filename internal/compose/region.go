package compose

import "image"

// Rect is an axis-aligned rectangle in image pixel space. (X1, Y1) is the
// inclusive top-left corner, (X2, Y2) the exclusive bottom-right corner;
// a valid Rect has X2 > X1 and Y2 > Y1.
type Rect struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Width returns X2 - X1.
func (r Rect) Width() int { return r.X2 - r.X1 }

// Height returns Y2 - Y1.
func (r Rect) Height() int { return r.Y2 - r.Y1 }

// Valid reports whether the rectangle has positive extent.
func (r Rect) Valid() bool { return r.X2 > r.X1 && r.Y2 > r.Y1 }

// Image converts the Rect to the standard library representation.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// Region is one rectangle of replacement text awaiting compositing. The
// engine reads it and never mutates it; callers may edit Text between
// compositing passes to support re-editing.
type Region struct {
	// Rect is the target rectangle, immutable once assigned.
	Rect Rect `json:"rect"`

	// Text is the replacement string. A blank Text makes compositing a
	// no-op for this region.
	Text string `json:"text"`

	// Style, when non-nil, overrides the page default for this region.
	Style *Style `json:"style,omitempty"`
}
