// Package recognize extracts source text from image regions using the
// Tesseract OCR engine.
//
// # Build Modes
//
// The Tesseract binding (gosseract/v2) requires CGO and native Tesseract
// libraries. When the binary is built without CGO, every recognition call
// returns ErrUnavailable; the surrounding pipeline treats that as "no source
// text" and keeps going, so a pure-Go build still composes pages from
// caller-supplied text.
//
// # Languages
//
// Callers pass the pipeline's short language codes (ja, ko, zh, en, ru);
// the package maps them to Tesseract traineddata names (jpn, kor, chi_sim,
// eng, rus). Unknown codes fall back to English. The corresponding
// traineddata must be installed on the system.
//
// # Preprocessing
//
// Region crops are preprocessed before OCR: small crops are upscaled,
// contrast is boosted and the crop is lightly sharpened. Manga lettering is
// small and low-contrast more often than not, and Tesseract's accuracy is
// very sensitive to both.
package recognize
