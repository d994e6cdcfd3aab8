// Package compose is the text-region compositing engine: it erases existing
// pixel content inside rectangular regions of a raster and renders wrapped,
// sized, aligned replacement text in its place.
//
// # Coordinate System
//
// All coordinates are 0-based image pixels with the origin at the top-left:
// X increases rightward, Y increases downward. For a Rect, (X1, Y1) is the
// inclusive top-left corner and (X2, Y2) the exclusive bottom-right corner.
//
// # Processing Model
//
// ComposePage starts from a fresh copy of the base image on every call and
// processes regions strictly in input order against that one mutable buffer.
// Re-invoking it with edited region text therefore never compounds paint
// from a prior pass, and two calls with identical inputs produce
// byte-identical rasters.
//
// Region processing is sequential within a page: later regions may
// legitimately paint over pixels near an earlier region's stroke bleed, so
// correctness depends on fixed ordering, not isolation. Pages on different
// base images can be composed concurrently; the only cross-page shared state
// is the fontkit cache, and fontkit handles serialize face access.
//
// # Error Handling
//
// A region that is too small or has blank replacement text is skipped with
// its pixels untouched. A failure while solving, wrapping or drawing one
// region is confined to that region: it is recorded in the PageReport and
// the rest of the page still composes. Only a nil base image fails the whole
// page.
package compose
