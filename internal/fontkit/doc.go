// Package fontkit resolves font families to measurable, renderable font
// handles and caches them for the lifetime of a Provider.
//
// # Resolution
//
// A Provider maps a (family, size) pair to a Handle. Family lookup is
// delegated to a Locator, an injectable strategy that turns a family name
// into a font file path. The default PathLocator probes a platform-specific
// search list (macOS, Windows and Linux system font directories, plus the
// directory named by the BUBBLETEXT_FONT_DIR environment variable).
//
// Resolution never fails: when no file can be located or parsed, the
// Provider falls back to the embedded Go Regular font. Callers cannot
// distinguish a requested font from the fallback; the result is a handle,
// not diagnostics. Text rendering therefore never fails outright due to a
// missing font.
//
// # Caching
//
// Handles are memoized per (family, size) and parsed font data is memoized
// per family. The cache has no eviction; long-running processes can call
// Clear to release it. A Provider owns its cache; there is no package-level
// state, so tests and embedding systems construct their own Providers.
//
// # Measurement
//
// Handle.Measure accepts text with embedded line breaks. The reported width
// is the maximum ink width over all lines and the reported height is the sum
// of per-line ink heights; lines are measured independently, not rounded to
// a fixed line pitch.
//
// # Thread Safety
//
// A Provider is safe for concurrent use. The opentype faces backing a Handle
// are not safe for concurrent access, so every Handle serializes measurement
// and drawing behind its own mutex. Implementers swapping in another font
// backend must preserve this: handles shared across concurrent page
// compositions require measurement primitives that are safe for concurrent
// read-only use, or equivalent locking.
package fontkit
