package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nicholasreese/youtube-transcript/internal/videoid"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "youtube-transcript <video-url-or-id>",
	Short: "Fetch the transcript of a YouTube video",
	Long: `youtube-transcript downloads the caption track of a YouTube video and
writes it as plain text or JSON to stdout or a file. The video may be given
as a watch URL, a youtu.be share link, an embed link, or a bare video ID.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(1)(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	},
	RunE:          runFetch,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

// usageError marks bad command-line input so main can exit with the
// usage-specific code.
type usageError struct{ error }

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func Execute() error {
	return rootCmd.Execute()
}

// ExitCode maps an error returned by Execute to the process exit code:
// 2 for unusable input, 3 for output write failures, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var usage usageError
	var pathErr *fs.PathError
	switch {
	case errors.As(err, &usage), errors.Is(err, videoid.ErrUnrecognizedReference):
		return 2
	case errors.As(err, &pathErr):
		return 3
	default:
		return 1
	}
}

func init() {
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
}
