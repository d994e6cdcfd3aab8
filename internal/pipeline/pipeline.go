package pipeline

import (
	"context"
	"image"
	"io"
	"log/slog"

	"github.com/mangakit/bubbletext/internal/compose"
	"github.com/mangakit/bubbletext/internal/translate"
)

// Detector proposes candidate text regions for a page.
type Detector interface {
	Detect(img image.Image, minConfidence float64) ([]Candidate, error)
}

// Recognizer extracts the source text inside one region.
type Recognizer interface {
	RegionText(img image.Image, x1, y1, x2, y2 int, lang string) (string, error)
}

// Candidate is a proposed region with its detector confidence. Confidence
// is opaque metadata: it is carried through to the entries but never used
// by compositing.
type Candidate struct {
	Rect       compose.Rect `json:"rect"`
	Confidence float64      `json:"confidence"`
}

// Entry is the full record for one region after a pipeline run. Callers
// may edit TranslatedText and recompose without re-running detection, OCR
// or translation.
type Entry struct {
	Rect           compose.Rect `json:"rect"`
	Confidence     float64      `json:"confidence"`
	OriginalText   string       `json:"original_text"`
	TranslatedText string       `json:"translated_text"`
}

// Options configures one pipeline run.
type Options struct {
	// SourceLang and TargetLang are short language codes (ja, ko, zh,
	// en, ru).
	SourceLang string
	TargetLang string

	// MinConfidence filters detector candidates.
	MinConfidence float64

	// Regions, when non-empty, bypasses detection entirely.
	Regions []compose.Rect

	// Style is the page-default compositing style.
	Style compose.Style
}

// Result is the outcome of one pipeline run.
type Result struct {
	// Image is the composited page.
	Image *image.NRGBA

	// Entries lists every region with its recognized and translated
	// text, in compositing order.
	Entries []Entry

	// Report is the per-region compositing outcome.
	Report *compose.PageReport

	// Summary aggregates recognition and translation success rates.
	Summary Summary
}

// Pipeline wires the collaborators around the compositing engine.
type Pipeline struct {
	detector   Detector
	recognizer Recognizer
	translator translate.Translator
	renderer   *compose.Renderer
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. The default discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// New assembles a Pipeline. detector may be nil when every run supplies
// explicit regions; recognizer may be nil to skip OCR (regions then carry
// no original text).
func New(detector Detector, recognizer Recognizer, translator translate.Translator, renderer *compose.Renderer, opts ...Option) *Pipeline {
	p := &Pipeline{
		detector:   detector,
		recognizer: recognizer,
		translator: translator,
		renderer:   renderer,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if p.translator == nil {
		p.translator = translate.Identity{}
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes one full pass over img: detect (unless opts.Regions is
// set), recognize, translate, compose. Collaborator failures degrade the
// affected region and the run continues; the returned error is non-nil
// only when the page itself cannot be processed.
func (p *Pipeline) Run(ctx context.Context, img image.Image, opts Options) (*Result, error) {
	if img == nil {
		return nil, compose.ErrNilImage
	}

	candidates, err := p.candidates(img, opts)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(candidates))
	for i, cand := range candidates {
		entry := Entry{Rect: cand.Rect, Confidence: cand.Confidence}

		if p.recognizer != nil {
			text, err := p.recognizer.RegionText(img,
				cand.Rect.X1, cand.Rect.Y1, cand.Rect.X2, cand.Rect.Y2,
				opts.SourceLang)
			if err != nil {
				p.logger.Warn("recognition failed, leaving region blank",
					"index", i, "rect", cand.Rect, "error", err)
			} else {
				entry.OriginalText = text
			}
		}

		if entry.OriginalText != "" {
			translated, err := p.translator.Translate(ctx,
				entry.OriginalText, opts.SourceLang, opts.TargetLang)
			if err != nil {
				// Best-effort contract: a failed translation
				// falls back to the source text.
				p.logger.Warn("translation failed, keeping original text",
					"index", i, "error", err)
				translated = entry.OriginalText
			}
			entry.TranslatedText = translated
		}

		entries = append(entries, entry)
	}

	out, report, err := p.compose(img, entries, opts.Style)
	if err != nil {
		return nil, err
	}

	return &Result{
		Image:   out,
		Entries: entries,
		Report:  report,
		Summary: Summarize(entries),
	}, nil
}

// Recompose repaints the page from the same base image after the caller
// edited entry text. It is exactly the compositing stage of Run: starting
// from the base every time keeps re-edits from compounding.
func (p *Pipeline) Recompose(base image.Image, entries []Entry, style compose.Style) (*image.NRGBA, *compose.PageReport, error) {
	return p.compose(base, entries, style)
}

func (p *Pipeline) compose(base image.Image, entries []Entry, style compose.Style) (*image.NRGBA, *compose.PageReport, error) {
	regions := make([]compose.Region, len(entries))
	for i, e := range entries {
		regions[i] = compose.Region{Rect: e.Rect, Text: e.TranslatedText}
	}
	return p.renderer.ComposePage(base, regions, style)
}

func (p *Pipeline) candidates(img image.Image, opts Options) ([]Candidate, error) {
	if len(opts.Regions) > 0 {
		cands := make([]Candidate, len(opts.Regions))
		for i, r := range opts.Regions {
			cands[i] = Candidate{Rect: r, Confidence: 1}
		}
		return cands, nil
	}
	if p.detector == nil {
		return nil, nil
	}
	return p.detector.Detect(img, opts.MinConfidence)
}
