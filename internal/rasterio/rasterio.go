// Package rasterio is the image file boundary: it decodes page images into
// in-memory rasters and encodes finished rasters back out. The compositing
// core never touches files; it consumes and produces decoded rasters only.
package rasterio

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Load decodes the image at path into an NRGBA raster. Format is detected
// from the file contents (PNG, JPEG, GIF, TIFF and BMP are supported). A
// decode failure is a hard failure: no image is returned.
func Load(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return imaging.Clone(img), nil
}

// Save encodes img to path; the format is chosen by file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return nil
}
