package compose

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

// ErrNilImage is returned by ComposePage when no base image is supplied.
// This is the only whole-page failure the engine produces.
var ErrNilImage = errors.New("compose: nil base image")

// ComposePage composites every region onto a fresh copy of base, in strict
// input order, and returns the finished raster with a per-region report.
//
// The base image is never written to: each call clones it first, so
// re-invoking ComposePage with edited region text starts from the original
// pixels and never accumulates artifacts from a prior pass. An empty region
// list returns an unmodified copy of base.
//
// Partial failure never loses the page: regions that individually fail are
// recorded in the report and the remaining regions still composite. The
// returned image is non-nil whenever the error is nil.
func (r *Renderer) ComposePage(base image.Image, regions []Region, style Style) (*image.NRGBA, *PageReport, error) {
	if base == nil {
		return nil, nil, ErrNilImage
	}

	img := imaging.Clone(base)
	report := &PageReport{}

	for i, region := range regions {
		st := style
		if region.Style != nil {
			st = *region.Style
		}

		res := r.CompositeRegion(img, region, st)
		res.Index = i
		report.add(res)

		if res.Status == StatusFailed {
			r.logger.Warn("region left unmodified",
				"index", i, "bounds", region.Rect, "reason", res.Reason)
		} else {
			r.logger.Debug("region processed",
				"index", i, "status", res.Status, "font_size", res.FontSize)
		}
	}

	return img, report, nil
}
