package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mangakit/bubbletext/internal/compose"
	"github.com/mangakit/bubbletext/internal/fontkit"
	"github.com/mangakit/bubbletext/internal/rasterio"
)

func newComposeCommand(logger func() *slog.Logger) *cobra.Command {
	var (
		regionsPath string
		outputPath  string
		reportJSON  bool
		sf          styleFlags
	)

	cmd := &cobra.Command{
		Use:   "compose <image>",
		Short: "Erase regions in an image and repaint them with new text",
		Long: `Compose reads a page image and a JSON regions file, erases each listed
rectangle and repaints it with the region's text. The regions file is a
JSON array of objects:

  [{"rect": {"x1": 20, "y1": 20, "x2": 180, "y2": 90}, "text": "Hello!"}]

A region may carry a "style" object overriding the page-level flags.`,
		Example: `  bubbletext compose page.png --regions regions.json -o out.png
  bubbletext compose page.png --regions regions.json -o out.png --align left --stroke-width 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()

			style, err := buildStyle(sf)
			if err != nil {
				return err
			}

			regions, err := loadRegions(regionsPath)
			if err != nil {
				return err
			}

			base, err := rasterio.Load(args[0])
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}

			renderer := compose.NewRenderer(fontkit.NewProvider(fontkit.WithLogger(log)),
				compose.WithLogger(log))
			out, report, err := renderer.ComposePage(base, regions, style)
			if err != nil {
				return err
			}

			if err := rasterio.Save(out, outputPath); err != nil {
				return fmt.Errorf("saving %s: %w", outputPath, err)
			}

			return printReport(cmd, report, reportJSON)
		},
	}

	cmd.Flags().StringVar(&regionsPath, "regions", "", "JSON file listing regions to composite (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output image path (required)")
	cmd.Flags().BoolVar(&reportJSON, "json", false, "print the page report as JSON")
	bindStyleFlags(cmd.Flags(), &sf)
	cmd.MarkFlagRequired("regions")
	cmd.MarkFlagRequired("output")

	return cmd
}

func loadRegions(path string) ([]compose.Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading regions file: %w", err)
	}
	var regions []compose.Region
	if err := json.Unmarshal(data, &regions); err != nil {
		return nil, fmt.Errorf("parsing regions file %s: %w", path, err)
	}
	return regions, nil
}

func printReport(cmd *cobra.Command, report *compose.PageReport, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "composited %d, skipped %d, failed %d\n",
		report.Composited, report.Skipped, report.Failed)
	for _, res := range report.Results {
		if res.Reason != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "  region %d (%d,%d)-(%d,%d): %s (%s)\n",
				res.Index, res.Bounds.X1, res.Bounds.Y1, res.Bounds.X2, res.Bounds.Y2,
				res.Status, res.Reason)
		}
	}
	return nil
}
