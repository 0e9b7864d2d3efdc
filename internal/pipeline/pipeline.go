package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/nicholasreese/youtube-transcript/internal/config"
	"github.com/nicholasreese/youtube-transcript/internal/transcript"
	"github.com/nicholasreese/youtube-transcript/internal/videoid"
)

// Run executes the full flow for one invocation: resolve the video
// reference, fetch the transcript in the preferred language, translate it
// when requested, and render it. The returned string is ready to write.
func Run(ctx context.Context, fetcher transcript.Fetcher, cfg *config.Config) (string, error) {
	id, err := videoid.Extract(cfg.VideoRef)
	if err != nil {
		return "", err
	}
	slog.Debug("resolved video reference", "id", id)

	t, err := fetcher.Fetch(ctx, id, cfg.Languages)
	if errors.Is(err, transcript.ErrLanguageUnavailable) && cfg.Translate != "" {
		// None of the preferred languages exist but a translation target
		// was given: take whatever track is available and translate that.
		slog.Debug("no preferred language track, taking any track for translation")
		t, err = fetcher.Fetch(ctx, id, nil)
	}
	if err != nil {
		return "", err
	}
	slog.Debug("fetched transcript", "language", t.LanguageCode, "entries", len(t.Entries))

	if cfg.Translate != "" && !strings.EqualFold(t.LanguageCode, cfg.Translate) {
		t, err = fetcher.Translate(ctx, t, cfg.Translate)
		if err != nil {
			return "", err
		}
		slog.Debug("translated transcript", "language", t.LanguageCode)
	}

	if cfg.JSON {
		return renderJSON(t)
	}
	return renderText(t, cfg.Timestamps), nil
}
