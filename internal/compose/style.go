package compose

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Alignment selects how wrapped text is placed horizontally within a region.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// ParseAlignment converts a string to an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	switch Alignment(s) {
	case AlignLeft, AlignCenter, AlignRight:
		return Alignment(s), nil
	}
	return "", fmt.Errorf("invalid alignment %q (want left, center or right)", s)
}

// RGB is an 8-bit-per-channel color triple.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// ParseHexColor parses "#RRGGBB" (and the short "#RGB" form) into an RGB.
func ParseHexColor(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
	}, nil
}

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// RGBA implements color.Color so an RGB can be handed to the drawer
// directly. The color is always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = 0xffff
	return
}

// Style is the full configuration surface for compositing a region. It is
// passed by value into each compositing call and never mutated by the
// engine.
type Style struct {
	// FontFamily is the requested font family name. A family that cannot
	// be located renders with the embedded fallback font.
	FontFamily string `json:"font_family"`

	// FontSize is the explicit font size in pixels, used when
	// AutoFontSize is false. Valid range is 8 to 48.
	FontSize int `json:"font_size"`

	// FontColor is the text fill color.
	FontColor RGB `json:"font_color"`

	// BGColor is the erase fill color painted over the region before
	// text is drawn.
	BGColor RGB `json:"bg_color"`

	// StrokeWidth is the outline thickness in pixels, 0 to 5. Zero
	// disables the outline.
	StrokeWidth int `json:"stroke_width"`

	// StrokeColor is the outline color.
	StrokeColor RGB `json:"stroke_color"`

	// Padding is the inset in pixels between the region border and the
	// text block, 0 to 20.
	Padding int `json:"padding"`

	// Alignment places the text block horizontally within the region.
	Alignment Alignment `json:"alignment"`

	// Transparency of the erase fill: 1.0 is a fully opaque overwrite,
	// 0.0 leaves existing pixels untouched, values between alpha-blend.
	Transparency float64 `json:"transparency"`

	// AutoFontSize, when true, makes the engine pick the largest size
	// whose wrapped text fits the region; FontSize is then ignored.
	AutoFontSize bool `json:"auto_font_size"`
}

// DefaultStyle returns the stock lettering style: black text on a white
// opaque fill, centered, auto-sized, no outline.
func DefaultStyle() Style {
	return Style{
		FontFamily:   "arial",
		FontSize:     16,
		FontColor:    RGB{0, 0, 0},
		BGColor:      RGB{255, 255, 255},
		StrokeWidth:  0,
		StrokeColor:  RGB{0, 0, 0},
		Padding:      5,
		Alignment:    AlignCenter,
		Transparency: 1.0,
		AutoFontSize: true,
	}
}

// Validate checks that every field is within its documented range.
func (s Style) Validate() error {
	if s.FontSize < minFontSize || s.FontSize > maxFontSize {
		return fmt.Errorf("font size %d out of range [%d, %d]", s.FontSize, minFontSize, maxFontSize)
	}
	if s.StrokeWidth < 0 || s.StrokeWidth > 5 {
		return fmt.Errorf("stroke width %d out of range [0, 5]", s.StrokeWidth)
	}
	if s.Padding < 0 || s.Padding > 20 {
		return fmt.Errorf("padding %d out of range [0, 20]", s.Padding)
	}
	if s.Transparency < 0 || s.Transparency > 1 {
		return fmt.Errorf("transparency %g out of range [0, 1]", s.Transparency)
	}
	if _, err := ParseAlignment(string(s.Alignment)); err != nil {
		return err
	}
	return nil
}
