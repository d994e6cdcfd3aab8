package compose

import "github.com/mangakit/bubbletext/internal/fontkit"

const (
	// minFontSize is the floor of the auto-size scan and the hard lower
	// bound of the style surface.
	minFontSize = 8
	// maxFontSize caps the auto-size scan and the style surface.
	maxFontSize = 48
	// sizeStep is the auto-size scan increment.
	sizeStep = 2
)

// SolveFontSize picks the font size for text inside rect.
//
// With auto false the requested size is returned unmodified: an explicit
// caller choice is authoritative. With auto true, candidate sizes are
// scanned upward from 8 in steps of 2 to min(rectW/2, rectH/2, 48); a
// candidate is accepted when its wrapped block fits within the rect minus
// padding on both axes. The scan stops at the first candidate that fails,
// assuming fit shrinks monotonically with size. That assumption holds for
// monotonic font metrics but is not guaranteed by arbitrary shaping
// backends (complex scripts with ligatures may misbehave); it is an assumed
// property, not a verified one. When nothing fits, including the floor
// itself, the floor is returned and the text may visually overflow.
func SolveFontSize(fonts *fontkit.Provider, text, family string, rect Rect, padding int, auto bool, requested int) int {
	if !auto {
		return requested
	}

	ceiling := min(rect.Width()/2, rect.Height()/2, maxFontSize)
	if ceiling < minFontSize {
		return minFontSize
	}

	maxW := rect.Width() - 2*padding
	maxH := rect.Height() - 2*padding

	best := minFontSize
	for size := minFontSize; size <= ceiling; size += sizeStep {
		h := fonts.Resolve(family, size)
		wrapped := Wrap(text, h, maxW)
		w, ht := h.Measure(wrapped)
		if w > maxW || ht > maxH {
			break
		}
		best = size
	}
	return best
}
