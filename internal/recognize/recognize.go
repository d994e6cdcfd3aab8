package recognize

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrUnavailable is returned when the binary was built without the
// Tesseract binding.
var ErrUnavailable = errors.New("recognize: tesseract support not compiled in (requires cgo)")

// Tesseract recognizes text in image regions via the Tesseract engine.
type Tesseract struct {
	logger *slog.Logger
}

// Option configures a Tesseract recognizer.
type Option func(*Tesseract)

// WithLogger sets the logger. The default discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tesseract) { t.logger = l }
}

// NewTesseract creates a recognizer. Construction always succeeds;
// availability is reported per call and by Available.
func NewTesseract(opts ...Option) *Tesseract {
	t := &Tesseract{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// RegionText runs OCR over one rectangular region of img and returns the
// recognized text, trimmed. The region is clamped to the image; an empty
// clamped region yields an empty string. lang is a short pipeline code
// (see TesseractLang).
func (t *Tesseract) RegionText(img image.Image, x1, y1, x2, y2 int, lang string) (string, error) {
	prepared := prepareRegion(img, x1, y1, x2, y2)
	if prepared == nil {
		return "", nil
	}

	tmpPath, err := writeTempPNG(prepared)
	if err != nil {
		return "", fmt.Errorf("failed to stage region for OCR: %w", err)
	}
	defer os.Remove(tmpPath)

	text, err := t.recognizePNG(tmpPath, TesseractLang(lang))
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	t.logger.Debug("region recognized",
		"bounds", fmt.Sprintf("(%d,%d)-(%d,%d)", x1, y1, x2, y2),
		"lang", lang, "chars", len(text))
	return text, nil
}

// writeTempPNG stages an image as a temporary PNG for the Tesseract CLI
// handoff. The caller removes the file.
func writeTempPNG(img image.Image) (string, error) {
	f, err := os.CreateTemp("", "bubbletext-ocr-*.png")
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
