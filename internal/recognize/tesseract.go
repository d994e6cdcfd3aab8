//go:build cgo

package recognize

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Available reports whether the Tesseract binding is compiled in and the
// native engine responds.
func (t *Tesseract) Available() bool {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version() != ""
}

// recognizePNG runs Tesseract over a staged PNG file.
func (t *Tesseract) recognizePNG(path, tessLang string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImage(path); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}
	if err := client.SetLanguage(tessLang); err != nil {
		return "", fmt.Errorf("failed to set language %q: %w", tessLang, err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}
