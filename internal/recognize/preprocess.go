package recognize

import (
	"image"

	"github.com/disintegration/imaging"
)

const (
	// upscaleThreshold is the edge length below which a crop is doubled
	// before OCR. Tesseract struggles below roughly 20px glyph height.
	upscaleThreshold = 50

	// contrastBoost is the percentage contrast increase applied to every
	// crop.
	contrastBoost = 25

	// sharpenSigma is the sharpening kernel radius applied after the
	// contrast boost.
	sharpenSigma = 0.8
)

// prepareRegion crops the region out of img and preprocesses it for OCR:
// clamp to the image, upscale small crops, boost contrast, sharpen.
// Returns nil when the clamped region is empty.
func prepareRegion(img image.Image, x1, y1, x2, y2 int) *image.NRGBA {
	b := img.Bounds()
	x1 = max(x1, b.Min.X)
	y1 = max(y1, b.Min.Y)
	x2 = min(x2, b.Max.X)
	y2 = min(y2, b.Max.Y)
	if x2 <= x1 || y2 <= y1 {
		return nil
	}

	crop := imaging.Crop(img, image.Rect(x1, y1, x2, y2))

	if crop.Bounds().Dx() < upscaleThreshold || crop.Bounds().Dy() < upscaleThreshold {
		crop = imaging.Resize(crop, crop.Bounds().Dx()*2, crop.Bounds().Dy()*2, imaging.Lanczos)
	}

	crop = imaging.AdjustContrast(crop, contrastBoost)
	crop = imaging.Sharpen(crop, sharpenSigma)

	return crop
}
