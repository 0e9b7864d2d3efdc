package cmd

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nicholasreese/youtube-transcript/internal/config"
	"github.com/nicholasreese/youtube-transcript/internal/output"
	"github.com/nicholasreese/youtube-transcript/internal/pipeline"
	"github.com/nicholasreese/youtube-transcript/internal/ytapi"
)

var (
	languages   []string
	translateTo string
	outputPath  string
	asJSON      bool
	timestamps  bool
)

func init() {
	rootCmd.Flags().StringArrayVarP(&languages, "language", "l", nil, "preferred language code, repeatable in priority order (default en)")
	rootCmd.Flags().StringVarP(&translateTo, "translate", "t", "", "translate the transcript to this language code")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write to this path instead of stdout")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "emit the transcript as JSON")
	rootCmd.Flags().BoolVar(&timestamps, "timestamps", false, "prefix each line with its [H:]MM:SS start time (text mode only)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	cfg.VideoRef = args[0]
	if len(languages) > 0 {
		cfg.Languages = languages
	}
	cfg.Translate = translateTo
	cfg.OutputPath = outputPath
	cfg.JSON = asJSON
	cfg.Timestamps = timestamps

	// Cancel cleanly on Ctrl-C.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	content, err := pipeline.Run(ctx, ytapi.New(), cfg)
	if err != nil {
		return err
	}

	if err := output.Write(content, cfg.OutputPath); err != nil {
		return err
	}

	if cfg.OutputPath != "" && !quiet {
		slog.Info("wrote transcript", "path", cfg.OutputPath)
	}
	return nil
}
