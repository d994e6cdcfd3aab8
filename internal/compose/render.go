package compose

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/mangakit/bubbletext/internal/fontkit"
)

// minRegionDim is the smallest width or height a region may have and still
// be composited. Undersized regions are silently skipped.
const minRegionDim = 10

// Renderer composites replacement text into regions of a working image. It
// holds the font provider whose cache is shared across pages.
type Renderer struct {
	fonts  *fontkit.Provider
	logger *slog.Logger
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithLogger sets the logger. The default discards all output.
func WithLogger(l *slog.Logger) RendererOption {
	return func(r *Renderer) { r.logger = l }
}

// NewRenderer creates a Renderer backed by the given font provider.
func NewRenderer(fonts *fontkit.Provider, opts ...RendererOption) *Renderer {
	r := &Renderer{
		fonts:  fonts,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CompositeRegion erases the region's rectangle in img and renders the
// region's replacement text into it, mutating img in place.
//
// The fixed step order is: size gate, blank-text gate, erase, font-size
// solve, wrap, placement, draw. A failure in any step is confined to this
// region and reported in the result, never propagated. Pixels outside the
// rectangle are only touched by stroke bleed, which extends at most
// StrokeWidth pixels past the border.
func (r *Renderer) CompositeRegion(img draw.Image, region Region, style Style) (result RegionResult) {
	result = RegionResult{Bounds: region.Rect}

	w, h := region.Rect.Width(), region.Rect.Height()
	if w < minRegionDim || h < minRegionDim {
		result.Status = StatusSkippedSmall
		result.Reason = fmt.Sprintf("region %dx%d under %dpx minimum", w, h, minRegionDim)
		return result
	}
	if strings.TrimSpace(region.Text) == "" {
		result.Status = StatusSkippedEmpty
		result.Reason = "blank replacement text"
		return result
	}

	// A drawing or measurement panic must not take down the rest of the
	// page; the region is reported failed and processing continues.
	defer func() {
		if rec := recover(); rec != nil {
			result.Status = StatusFailed
			result.Reason = fmt.Sprintf("render panic: %v", rec)
			r.logger.Warn("region render failed", "bounds", region.Rect, "panic", rec)
		}
	}()

	eraseRegion(img, region.Rect, style.BGColor, style.Transparency)

	size := SolveFontSize(r.fonts, region.Text, style.FontFamily, region.Rect,
		style.Padding, style.AutoFontSize, style.FontSize)
	handle := r.fonts.Resolve(style.FontFamily, size)

	wrapped := Wrap(region.Text, handle, w-2*style.Padding)
	lines := strings.Split(wrapped, "\n")
	blockW, blockH := handle.Measure(wrapped)

	x, y := textOrigin(region.Rect, blockW, blockH, style.Padding, style.Alignment)

	if style.StrokeWidth > 0 {
		// Outline by repeated offset blits: every integer offset in
		// [-sw, sw]^2 except the center, then the fill on top. Cost is
		// O(sw^2) block draws, acceptable for the small widths the
		// style surface allows.
		for dy := -style.StrokeWidth; dy <= style.StrokeWidth; dy++ {
			for dx := -style.StrokeWidth; dx <= style.StrokeWidth; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				drawBlock(img, handle, lines, x+dx, y+dy, blockW, style.Alignment, style.StrokeColor)
			}
		}
	}
	drawBlock(img, handle, lines, x, y, blockW, style.Alignment, style.FontColor)

	result.Status = StatusComposited
	result.FontSize = size
	return result
}

// textOrigin computes the top-left corner of the text block inside rect.
// The block is vertically centered and horizontally placed per alignment,
// then clamped so it never starts outside the padded rectangle. The
// clamping applies the upper bound first, so when the block is larger than
// the padded rectangle the padded top-left corner wins.
func textOrigin(rect Rect, blockW, blockH, padding int, align Alignment) (int, int) {
	w, h := rect.Width(), rect.Height()

	y := rect.Y1 + (h-blockH)/2
	y = max(rect.Y1+padding, min(y, rect.Y2-blockH-padding))

	var x int
	switch align {
	case AlignRight:
		x = rect.X2 - blockW - padding
	case AlignCenter:
		x = rect.X1 + (w-blockW)/2
	default:
		x = rect.X1 + padding
	}
	x = max(rect.X1+padding, min(x, rect.X2-blockW-padding))

	return x, y
}

// drawBlock renders wrapped lines with the block's top-left ink corner at
// (x, y), stacking each line directly under the previous one's ink and
// aligning lines within the block width.
func drawBlock(img draw.Image, handle *fontkit.Handle, lines []string, x, y, blockW int, align Alignment, c color.Color) {
	cursorY := y
	for _, line := range lines {
		lw, lh := handle.LineSize(line)
		lineX := x
		switch align {
		case AlignCenter:
			lineX = x + (blockW-lw)/2
		case AlignRight:
			lineX = x + blockW - lw
		}
		handle.Draw(img, line, lineX, cursorY, c)
		cursorY += lh
	}
}

// eraseRegion paints rect with the fill color. Transparency 1.0 takes the
// flat opaque overwrite fast path; lower values alpha-blend the fill into
// the existing pixels channel by channel with alpha = round(255 * t).
func eraseRegion(img draw.Image, rect Rect, fill RGB, transparency float64) {
	target := rect.Image().Intersect(img.Bounds())
	if target.Empty() || transparency <= 0 {
		return
	}

	if transparency >= 1 {
		draw.Draw(img, target, image.NewUniform(fill), image.Point{}, draw.Src)
		return
	}

	alpha := int(math.Round(255 * transparency))
	if nrgba, ok := img.(*image.NRGBA); ok {
		blendNRGBA(nrgba, target, fill, alpha)
		return
	}

	for y := target.Min.Y; y < target.Max.Y; y++ {
		for x := target.Min.X; x < target.Max.X; x++ {
			old := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			img.Set(x, y, color.NRGBA{
				R: blendChannel(fill.R, old.R, alpha),
				G: blendChannel(fill.G, old.G, alpha),
				B: blendChannel(fill.B, old.B, alpha),
				A: 255,
			})
		}
	}
}

// blendNRGBA is the fast path for the NRGBA buffers ComposePage works on.
func blendNRGBA(img *image.NRGBA, target image.Rectangle, fill RGB, alpha int) {
	for y := target.Min.Y; y < target.Max.Y; y++ {
		i := img.PixOffset(target.Min.X, y)
		for x := target.Min.X; x < target.Max.X; x++ {
			img.Pix[i+0] = blendChannel(fill.R, img.Pix[i+0], alpha)
			img.Pix[i+1] = blendChannel(fill.G, img.Pix[i+1], alpha)
			img.Pix[i+2] = blendChannel(fill.B, img.Pix[i+2], alpha)
			img.Pix[i+3] = 255
			i += 4
		}
	}
}

// blendChannel composites fg over bg at the given alpha with exact
// rounding: out = round((fg*a + bg*(255-a)) / 255).
func blendChannel(fg, bg uint8, alpha int) uint8 {
	return uint8((int(fg)*alpha + int(bg)*(255-alpha) + 127) / 255)
}
