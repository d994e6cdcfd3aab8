package translate

import (
	"context"
	"strings"
)

// Translator converts text between languages. Implementations must be safe
// for concurrent use.
type Translator interface {
	// Translate converts text from the source to the target language.
	// Blank text and matching language codes return the input unchanged
	// without any remote call.
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// languageCodes normalizes the pipeline's short codes to the codes the
// Google endpoint expects. Chinese in particular must be sent as zh-CN.
var languageCodes = map[string]string{
	"zh": "zh-CN",
	"ja": "ja",
	"ko": "ko",
	"en": "en",
	"ru": "ru",
}

// mapLanguage normalizes a short language code, passing unknown codes
// through untouched.
func mapLanguage(code string) string {
	if mapped, ok := languageCodes[code]; ok {
		return mapped
	}
	return code
}

// Identity is a Translator that returns its input unchanged. Useful when
// source and target languages match and in tests.
type Identity struct{}

// Translate implements Translator.
func (Identity) Translate(_ context.Context, text, _, _ string) (string, error) {
	return text, nil
}

// skip reports whether a translation call can be answered locally.
func skip(text, sourceLang, targetLang string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", true
	}
	if sourceLang == targetLang {
		return text, true
	}
	return "", false
}
