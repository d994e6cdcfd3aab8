// Package detect finds candidate speech-bubble regions in a page image.
//
// The detector is a heuristic stand-in for a learned bubble model: speech
// bubbles are large, mostly uniform patches whose interior carries dense
// lettering strokes. The pipeline is:
//
//  1. Grayscale and Sobel edge extraction (bild).
//  2. Threshold to a binary edge raster.
//  3. Sliding windows at bubble-like sizes scored by edge density and
//     horizontal stroke structure.
//  4. Merge of overlapping candidates, sorted by confidence.
//
// Confidence is opaque metadata for downstream consumers: the compositor
// never reads it, and callers are free to filter on it or ignore it.
//
// # Coordinate System
//
// All coordinates use the standard image convention: origin (0, 0) at the
// top-left corner, X rightward, Y downward. Bounds are inclusive at
// (X1, Y1) and exclusive at (X2, Y2).
package detect
