package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "bubbletext",
		Short: "Replace speech-bubble text in comic and manga page images",
		Long: `bubbletext erases rectangular text regions in a page image and repaints
them with new, automatically sized and wrapped text.

Regions can come from a JSON file, from the built-in bubble detector, or
from the full pipeline (detect, OCR, translate, compose).`,
		Example: `  bubbletext compose page.png --regions regions.json -o out.png
  bubbletext detect page.png
  bubbletext run page.png --source-lang ja --target-lang en -o out.png`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	logger := func() *slog.Logger {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}

	rootCmd.AddCommand(newComposeCommand(logger))
	rootCmd.AddCommand(newDetectCommand(logger))
	rootCmd.AddCommand(newRunCommand(logger))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("bubbletext %s (commit: %s, built: %s, go: %s)\n",
				Version, GitCommit, BuildTime, runtime.Version())
		},
	}
}
