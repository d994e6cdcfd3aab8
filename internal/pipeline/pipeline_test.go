package pipeline

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/mangakit/bubbletext/internal/compose"
	"github.com/mangakit/bubbletext/internal/fontkit"
)

type stubDetector struct {
	candidates []Candidate
	err        error
	calls      int
}

func (d *stubDetector) Detect(_ image.Image, _ float64) ([]Candidate, error) {
	d.calls++
	return d.candidates, d.err
}

type stubRecognizer struct {
	// texts maps the region's top-left X coordinate to the recognized
	// text, so one stub can serve several regions.
	texts map[int]string
	err   error
}

func (r *stubRecognizer) RegionText(_ image.Image, x1, _, _, _ int, _ string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return r.texts[x1], nil
}

type stubTranslator struct {
	prefix string
	err    error
}

func (t stubTranslator) Translate(_ context.Context, text, _, _ string) (string, error) {
	if t.err != nil {
		return "", t.err
	}
	return t.prefix + text, nil
}

func testRenderer() *compose.Renderer {
	return compose.NewRenderer(fontkit.NewProvider())
}

func whitePage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

func TestRunNilImage(t *testing.T) {
	p := New(nil, nil, nil, testRenderer())
	if _, err := p.Run(context.Background(), nil, Options{}); !errors.Is(err, compose.ErrNilImage) {
		t.Fatalf("Run(nil image) error = %v, want %v", err, compose.ErrNilImage)
	}
}

func TestRunFullPass(t *testing.T) {
	rect := compose.Rect{X1: 20, Y1: 20, X2: 180, Y2: 90}
	det := &stubDetector{candidates: []Candidate{{Rect: rect, Confidence: 0.8}}}
	rec := &stubRecognizer{texts: map[int]string{20: "konnichiwa"}}
	tr := stubTranslator{prefix: "en:"}

	p := New(det, rec, tr, testRenderer())
	res, err := p.Run(context.Background(), whitePage(200, 100), Options{
		SourceLang: "ja",
		TargetLang: "en",
		Style:      compose.DefaultStyle(),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(res.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(res.Entries))
	}
	e := res.Entries[0]
	if e.OriginalText != "konnichiwa" {
		t.Errorf("OriginalText = %q, want %q", e.OriginalText, "konnichiwa")
	}
	if e.TranslatedText != "en:konnichiwa" {
		t.Errorf("TranslatedText = %q, want %q", e.TranslatedText, "en:konnichiwa")
	}
	if e.Confidence != 0.8 {
		t.Errorf("Confidence = %v, want 0.8", e.Confidence)
	}
	if res.Report.Composited != 1 {
		t.Errorf("Report.Composited = %d, want 1", res.Report.Composited)
	}
	if res.Image == nil {
		t.Fatal("Run returned nil image")
	}
}

func TestRunRegionsOverrideBypassesDetection(t *testing.T) {
	det := &stubDetector{err: errors.New("detector should not run")}
	rect := compose.Rect{X1: 10, Y1: 10, X2: 90, Y2: 50}

	p := New(det, nil, nil, testRenderer())
	res, err := p.Run(context.Background(), whitePage(100, 60), Options{
		Regions: []compose.Rect{rect},
		Style:   compose.DefaultStyle(),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if det.calls != 0 {
		t.Errorf("detector called %d times, want 0", det.calls)
	}
	if len(res.Entries) != 1 || res.Entries[0].Rect != rect {
		t.Fatalf("entries = %+v, want one entry at %+v", res.Entries, rect)
	}
	if res.Entries[0].Confidence != 1 {
		t.Errorf("override confidence = %v, want 1", res.Entries[0].Confidence)
	}
}

func TestRunDetectorError(t *testing.T) {
	det := &stubDetector{err: errors.New("boom")}
	p := New(det, nil, nil, testRenderer())
	if _, err := p.Run(context.Background(), whitePage(50, 50), Options{Style: compose.DefaultStyle()}); err == nil {
		t.Fatal("Run with failing detector: expected error")
	}
}

func TestRunRecognizerFailureLeavesRegionBlank(t *testing.T) {
	rect := compose.Rect{X1: 10, Y1: 10, X2: 90, Y2: 50}
	rec := &stubRecognizer{err: errors.New("ocr offline")}

	p := New(nil, rec, stubTranslator{prefix: "x:"}, testRenderer())
	res, err := p.Run(context.Background(), whitePage(100, 60), Options{
		Regions: []compose.Rect{rect},
		Style:   compose.DefaultStyle(),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	e := res.Entries[0]
	if e.OriginalText != "" || e.TranslatedText != "" {
		t.Errorf("failed OCR entry = %+v, want blank texts", e)
	}
	// A blank region is erased but no text is drawn.
	if res.Report.Skipped != 1 {
		t.Errorf("Report.Skipped = %d, want 1", res.Report.Skipped)
	}
}

func TestRunTranslatorFailureKeepsOriginal(t *testing.T) {
	rect := compose.Rect{X1: 10, Y1: 10, X2: 140, Y2: 70}
	rec := &stubRecognizer{texts: map[int]string{10: "hola"}}
	tr := stubTranslator{err: errors.New("quota")}

	p := New(nil, rec, tr, testRenderer())
	res, err := p.Run(context.Background(), whitePage(150, 80), Options{
		Regions: []compose.Rect{rect},
		Style:   compose.DefaultStyle(),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := res.Entries[0].TranslatedText; got != "hola" {
		t.Errorf("TranslatedText after failed translation = %q, want %q", got, "hola")
	}
}

func TestRunNilTranslatorDefaultsToIdentity(t *testing.T) {
	rect := compose.Rect{X1: 10, Y1: 10, X2: 140, Y2: 70}
	rec := &stubRecognizer{texts: map[int]string{10: "as-is"}}

	p := New(nil, rec, nil, testRenderer())
	res, err := p.Run(context.Background(), whitePage(150, 80), Options{
		Regions: []compose.Rect{rect},
		Style:   compose.DefaultStyle(),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := res.Entries[0].TranslatedText; got != "as-is" {
		t.Errorf("TranslatedText = %q, want %q", got, "as-is")
	}
}

func TestRecomposeMatchesRunCompositing(t *testing.T) {
	rect := compose.Rect{X1: 10, Y1: 10, X2: 140, Y2: 70}
	rec := &stubRecognizer{texts: map[int]string{10: "hello"}}

	p := New(nil, rec, nil, testRenderer())
	base := whitePage(150, 80)
	res, err := p.Run(context.Background(), base, Options{
		Regions: []compose.Rect{rect},
		Style:   compose.DefaultStyle(),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	again, _, err := p.Recompose(base, res.Entries, compose.DefaultStyle())
	if err != nil {
		t.Fatalf("Recompose: %v", err)
	}
	if !bytes.Equal(res.Image.Pix, again.Pix) {
		t.Error("Recompose with unchanged entries differs from the run's output")
	}

	// Editing an entry and recomposing starts from the base, so the
	// edit replaces the old text instead of stacking on top of it.
	edited := make([]Entry, len(res.Entries))
	copy(edited, res.Entries)
	edited[0].TranslatedText = "bye"
	third, _, err := p.Recompose(base, edited, compose.DefaultStyle())
	if err != nil {
		t.Fatalf("Recompose(edited): %v", err)
	}
	if bytes.Equal(res.Image.Pix, third.Pix) {
		t.Error("edited recompose produced identical pixels")
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    Summary
	}{
		{
			name: "empty",
			want: Summary{},
		},
		{
			name: "mixed",
			entries: []Entry{
				{OriginalText: "a", TranslatedText: "b"},
				{OriginalText: "c"},
				{},
				{OriginalText: "  "},
			},
			want: Summary{
				TotalRegions:      4,
				RecognizedRegions: 2,
				TranslatedRegions: 1,
				RecognitionRate:   50,
				TranslationRate:   25,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.entries); got != tt.want {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRunMultipleRegionsSummary(t *testing.T) {
	rects := []compose.Rect{
		{X1: 10, Y1: 10, X2: 140, Y2: 60},
		{X1: 12, Y1: 70, X2: 140, Y2: 120},
		{X1: 14, Y1: 130, X2: 140, Y2: 180},
	}
	// Only the first two regions carry text; the third stays blank.
	rec := &stubRecognizer{texts: map[int]string{10: "one", 12: "two"}}

	p := New(nil, rec, nil, testRenderer())
	res, err := p.Run(context.Background(), whitePage(150, 200), Options{
		Regions: rects,
		Style:   compose.DefaultStyle(),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := Summary{
		TotalRegions:      3,
		RecognizedRegions: 2,
		TranslatedRegions: 2,
		RecognitionRate:   float64(2) / 3 * 100,
		TranslationRate:   float64(2) / 3 * 100,
	}
	if res.Summary != want {
		t.Errorf("Summary = %+v, want %+v", res.Summary, want)
	}
}
