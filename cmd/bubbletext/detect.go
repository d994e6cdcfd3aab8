package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mangakit/bubbletext/internal/detect"
	"github.com/mangakit/bubbletext/internal/rasterio"
)

func newDetectCommand(logger func() *slog.Logger) *cobra.Command {
	var minConfidence float64

	cmd := &cobra.Command{
		Use:   "detect <image>",
		Short: "Find likely speech-bubble regions in a page image",
		Long: `Detect scans the image for rectangular regions that look like speech
bubbles and prints them as JSON, sorted by descending confidence. The
output can be edited and fed back to the run command via --regions.`,
		Example: `  bubbletext detect page.png
  bubbletext detect page.png --min-confidence 0.5 > regions.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()

			img, err := rasterio.Load(args[0])
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}

			result, err := detect.Detect(img, minConfidence)
			if err != nil {
				return err
			}
			log.Debug("detection finished", "candidates", result.Count)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().Float64Var(&minConfidence, "min-confidence", 0.3, "drop candidates scoring below this confidence")

	return cmd
}
