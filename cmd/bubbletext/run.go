package main

import (
	"encoding/json"
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mangakit/bubbletext/internal/compose"
	"github.com/mangakit/bubbletext/internal/detect"
	"github.com/mangakit/bubbletext/internal/fontkit"
	"github.com/mangakit/bubbletext/internal/pipeline"
	"github.com/mangakit/bubbletext/internal/rasterio"
	"github.com/mangakit/bubbletext/internal/recognize"
	"github.com/mangakit/bubbletext/internal/translate"
)

// bubbleDetector adapts the detect package to the pipeline interface.
type bubbleDetector struct{}

func (bubbleDetector) Detect(img image.Image, minConfidence float64) ([]pipeline.Candidate, error) {
	result, err := detect.Detect(img, minConfidence)
	if err != nil {
		return nil, err
	}
	cands := make([]pipeline.Candidate, len(result.Candidates))
	for i, c := range result.Candidates {
		cands[i] = pipeline.Candidate{
			Rect: compose.Rect{
				X1: c.Bounds.X1, Y1: c.Bounds.Y1,
				X2: c.Bounds.X2, Y2: c.Bounds.Y2,
			},
			Confidence: c.Confidence,
		}
	}
	return cands, nil
}

func newRunCommand(logger func() *slog.Logger) *cobra.Command {
	var (
		sourceLang    string
		targetLang    string
		minConfidence float64
		regionsPath   string
		outputPath    string
		entriesPath   string
		noTranslate   bool
		sf            styleFlags
	)

	cmd := &cobra.Command{
		Use:   "run <image>",
		Short: "Detect, recognize, translate and repaint bubbles in one pass",
		Long: `Run executes the full pipeline on a page image: detect speech-bubble
regions (or take them from --regions), OCR the source text, translate it,
then erase and repaint each region with the translated text.

OCR requires a build with Tesseract support; without it regions are erased
but left blank. Translation failures fall back to the recognized text.`,
		Example: `  bubbletext run page.png --source-lang ja --target-lang en -o out.png
  bubbletext run page.png --regions regions.json --no-translate -o out.png
  bubbletext run page.png -o out.png --entries entries.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()

			style, err := buildStyle(sf)
			if err != nil {
				return err
			}

			opts := pipeline.Options{
				SourceLang:    sourceLang,
				TargetLang:    targetLang,
				MinConfidence: minConfidence,
				Style:         style,
			}
			if regionsPath != "" {
				rects, err := loadRects(regionsPath)
				if err != nil {
					return err
				}
				opts.Regions = rects
			}

			base, err := rasterio.Load(args[0])
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}

			var translator translate.Translator
			if !noTranslate {
				translator = translate.NewGoogleWeb()
			}

			renderer := compose.NewRenderer(fontkit.NewProvider(fontkit.WithLogger(log)),
				compose.WithLogger(log))
			p := pipeline.New(
				bubbleDetector{},
				recognize.NewTesseract(recognize.WithLogger(log)),
				translator,
				renderer,
				pipeline.WithLogger(log),
			)

			result, err := p.Run(cmd.Context(), base, opts)
			if err != nil {
				return err
			}

			if err := rasterio.Save(result.Image, outputPath); err != nil {
				return fmt.Errorf("saving %s: %w", outputPath, err)
			}

			if entriesPath != "" {
				if err := writeEntries(entriesPath, result); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"%d regions: %d recognized (%.0f%%), %d translated (%.0f%%); composited %d, skipped %d, failed %d\n",
				result.Summary.TotalRegions,
				result.Summary.RecognizedRegions, result.Summary.RecognitionRate,
				result.Summary.TranslatedRegions, result.Summary.TranslationRate,
				result.Report.Composited, result.Report.Skipped, result.Report.Failed)
			return nil
		},
	}

	cmd.Flags().StringVar(&sourceLang, "source-lang", "ja", "source language code (ja, ko, zh, en, ru)")
	cmd.Flags().StringVar(&targetLang, "target-lang", "en", "target language code")
	cmd.Flags().Float64Var(&minConfidence, "min-confidence", 0.3, "drop detected regions below this confidence")
	cmd.Flags().StringVar(&regionsPath, "regions", "", "JSON file of rectangles, bypasses detection")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output image path (required)")
	cmd.Flags().StringVar(&entriesPath, "entries", "", "write per-region entries (rects, recognized and translated text) as JSON")
	cmd.Flags().BoolVar(&noTranslate, "no-translate", false, "keep the recognized text instead of translating")
	bindStyleFlags(cmd.Flags(), &sf)
	cmd.MarkFlagRequired("output")

	return cmd
}

// loadRects accepts either a plain array of rectangles or the detect
// command's output.
func loadRects(path string) ([]compose.Rect, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading regions file: %w", err)
	}

	var rects []compose.Rect
	if err := json.Unmarshal(data, &rects); err == nil && len(rects) > 0 {
		return rects, nil
	}

	var detected detect.Result
	if err := json.Unmarshal(data, &detected); err != nil {
		return nil, fmt.Errorf("parsing regions file %s: %w", path, err)
	}
	rects = make([]compose.Rect, len(detected.Candidates))
	for i, c := range detected.Candidates {
		rects[i] = compose.Rect{X1: c.Bounds.X1, Y1: c.Bounds.Y1, X2: c.Bounds.X2, Y2: c.Bounds.Y2}
	}
	return rects, nil
}

func writeEntries(path string, result *pipeline.Result) error {
	out := struct {
		Entries []pipeline.Entry    `json:"entries"`
		Summary pipeline.Summary    `json:"summary"`
		Report  *compose.PageReport `json:"report"`
	}{result.Entries, result.Summary, result.Report}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
