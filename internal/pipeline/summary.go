package pipeline

import "strings"

// Summary aggregates how well recognition and translation did across a
// page. Rates are percentages in [0, 100].
type Summary struct {
	TotalRegions      int     `json:"total_regions"`
	RecognizedRegions int     `json:"recognized_regions"`
	TranslatedRegions int     `json:"translated_regions"`
	RecognitionRate   float64 `json:"recognition_rate"`
	TranslationRate   float64 `json:"translation_rate"`
}

// Summarize computes success rates over a run's entries.
func Summarize(entries []Entry) Summary {
	s := Summary{TotalRegions: len(entries)}
	for _, e := range entries {
		if strings.TrimSpace(e.OriginalText) != "" {
			s.RecognizedRegions++
		}
		if strings.TrimSpace(e.TranslatedText) != "" {
			s.TranslatedRegions++
		}
	}
	if s.TotalRegions > 0 {
		s.RecognitionRate = float64(s.RecognizedRegions) / float64(s.TotalRegions) * 100
		s.TranslationRate = float64(s.TranslatedRegions) / float64(s.TotalRegions) * 100
	}
	return s
}
