package detect

import (
	"image"
	"math"
	"sort"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
)

// Bounds is a rectangular bounding box in pixel coordinates.
type Bounds struct {
	X1 int `json:"x1"` // Left edge (inclusive)
	Y1 int `json:"y1"` // Top edge (inclusive)
	X2 int `json:"x2"` // Right edge (exclusive)
	Y2 int `json:"y2"` // Bottom edge (exclusive)
}

// Candidate is one detected bubble region with its heuristic confidence.
type Candidate struct {
	Bounds     Bounds  `json:"bounds"`
	Confidence float64 `json:"confidence"`
	Area       int     `json:"area"`
}

// Result contains all detected bubble candidates.
type Result struct {
	Candidates []Candidate `json:"candidates"`
	Count      int         `json:"count"`
}

// edgeThreshold separates stroke pixels from background in the Sobel
// magnitude image.
const edgeThreshold = 96

// windowSizes are the bubble shapes the sliding window probes. Bubbles are
// wider than tall more often than not, but tall panels happen.
var windowSizes = []struct{ w, h int }{
	{120, 60},
	{160, 90},
	{220, 120},
	{90, 110},
}

// Detect finds likely speech-bubble regions in img. Candidates scoring
// below minConfidence are dropped; the rest are merged and returned sorted
// by descending confidence.
func Detect(img image.Image, minConfidence float64) (*Result, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	edges := edgeRaster(img)

	candidates := make([]Candidate, 0)

	for _, ws := range windowSizes {
		if ws.w > width || ws.h > height {
			continue
		}
		stepX := ws.w / 2
		stepY := ws.h / 2

		for y := 0; y <= height-ws.h; y += stepY {
			for x := 0; x <= width-ws.w; x += stepX {
				density := edgeDensity(edges, x, y, ws.w, ws.h)

				// Lettering inside a bubble produces a medium
				// edge density: blank paper is too sparse,
				// artwork too dense.
				if density < 0.04 || density > 0.45 {
					continue
				}

				horizontal := horizontalScore(edges, x, y, ws.w, ws.h)
				confidence := horizontal * (1.0 - math.Abs(density-0.18)/0.3)
				if confidence < minConfidence {
					continue
				}

				candidates = append(candidates, Candidate{
					Bounds: Bounds{
						X1: x + bounds.Min.X,
						Y1: y + bounds.Min.Y,
						X2: x + ws.w + bounds.Min.X,
						Y2: y + ws.h + bounds.Min.Y,
					},
					Confidence: math.Round(confidence*1000) / 1000,
					Area:       ws.w * ws.h,
				})
			}
		}
	}

	merged := mergeOverlapping(candidates)

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Confidence > merged[j].Confidence
	})

	return &Result{Candidates: merged, Count: len(merged)}, nil
}

// edgeRaster converts img to a binary stroke map: grayscale, Sobel gradient
// magnitude, then a fixed threshold.
func edgeRaster(img image.Image) *image.Gray {
	gray := effect.Grayscale(img)
	sobel := effect.Sobel(gray)
	return segment.Threshold(sobel, edgeThreshold)
}

func edgeAt(edges *image.Gray, x, y int) bool {
	return edges.GrayAt(x, y).Y > 0
}

func edgeDensity(edges *image.Gray, x, y, w, h int) float64 {
	count := 0
	for wy := 0; wy < h; wy++ {
		for wx := 0; wx < w; wx++ {
			if edgeAt(edges, x+wx, y+wy) {
				count++
			}
		}
	}
	return float64(count) / float64(w*h)
}

// horizontalScore measures how horizontal the stroke structure inside a
// window is. Rows of lettering produce many short horizontal runs.
func horizontalScore(edges *image.Gray, x, y, w, h int) float64 {
	horizontalRuns := 0
	for row := y; row < y+h; row++ {
		inRun := false
		for col := x; col < x+w; col++ {
			if edgeAt(edges, col, row) {
				if !inRun {
					horizontalRuns++
					inRun = true
				}
			} else {
				inRun = false
			}
		}
	}

	verticalRuns := 0
	for col := x; col < x+w; col++ {
		inRun := false
		for row := y; row < y+h; row++ {
			if edgeAt(edges, col, row) {
				if !inRun {
					verticalRuns++
					inRun = true
				}
			} else {
				inRun = false
			}
		}
	}

	if horizontalRuns+verticalRuns == 0 {
		return 0
	}
	return float64(horizontalRuns) / float64(horizontalRuns+verticalRuns)
}

// mergeOverlapping unions candidates whose bounds intersect, keeping the
// best confidence of each cluster.
func mergeOverlapping(candidates []Candidate) []Candidate {
	if len(candidates) == 0 {
		return candidates
	}

	merged := make([]Candidate, 0)
	for _, c := range candidates {
		found := false
		for i := range merged {
			if overlap(c.Bounds, merged[i].Bounds) {
				merged[i].Bounds = union(c.Bounds, merged[i].Bounds)
				merged[i].Confidence = math.Max(c.Confidence, merged[i].Confidence)
				merged[i].Area = (merged[i].Bounds.X2 - merged[i].Bounds.X1) *
					(merged[i].Bounds.Y2 - merged[i].Bounds.Y1)
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, c)
		}
	}
	return merged
}

func overlap(a, b Bounds) bool {
	return a.X1 < b.X2 && a.X2 > b.X1 && a.Y1 < b.Y2 && a.Y2 > b.Y1
}

func union(a, b Bounds) Bounds {
	return Bounds{
		X1: min(a.X1, b.X1),
		Y1: min(a.Y1, b.Y1),
		X2: max(a.X2, b.X2),
		Y2: max(a.Y2, b.Y2),
	}
}
