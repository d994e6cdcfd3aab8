package recognize

// tesseractLangs maps the pipeline's short language codes to Tesseract
// traineddata names.
var tesseractLangs = map[string]string{
	"ja": "jpn",
	"ko": "kor",
	"zh": "chi_sim",
	"en": "eng",
	"ru": "rus",
}

// TesseractLang converts a short language code to the Tesseract traineddata
// name, defaulting to English for unknown codes.
func TesseractLang(code string) string {
	if lang, ok := tesseractLangs[code]; ok {
		return lang
	}
	return "eng"
}

// SupportedLanguages lists the short codes the pipeline recognizes.
func SupportedLanguages() []string {
	return []string{"ja", "ko", "zh", "en", "ru"}
}
