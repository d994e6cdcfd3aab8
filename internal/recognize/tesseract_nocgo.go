//go:build !cgo

package recognize

// Available reports whether the Tesseract binding is compiled in. Without
// CGO it never is.
func (t *Tesseract) Available() bool { return false }

func (t *Tesseract) recognizePNG(path, tessLang string) (string, error) {
	return "", ErrUnavailable
}
