// Package ytapi adapts the youtube-transcript-api-go library to the
// transcript.Fetcher contract. It is the only package that talks to the
// library, and the only place that knows how its failures look.
package ytapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript"
	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_models"

	"github.com/nicholasreese/youtube-transcript/internal/transcript"
)

// Client fetches transcripts from YouTube through the transcript library.
type Client struct {
	yt *yt_transcript.YtTranscriptClient
}

// New returns a live Client.
func New() *Client {
	return &Client{yt: yt_transcript.NewClient()}
}

// Fetch returns the transcript for videoID in the first language from the
// priority list that has a track. An empty list accepts any track.
func (c *Client) Fetch(ctx context.Context, videoID string, languages []string) (*transcript.Transcript, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results, err := c.yt.GetTranscripts(videoID, languages)
	if err != nil {
		return nil, mapError(err)
	}
	if len(results) == 0 {
		return nil, transcript.ErrLanguageUnavailable
	}
	return convert(videoID, pickPreferred(results, languages)), nil
}

// Translate returns t's transcript in the target language. The library does
// not expose YouTube's on-the-fly caption translation, so this asks for a
// native track in the target language instead and reports the translation
// as unavailable when the video has none.
func (c *Client) Translate(ctx context.Context, t *transcript.Transcript, target string) (*transcript.Transcript, error) {
	translated, err := c.Fetch(ctx, t.VideoID, []string{target})
	if err != nil {
		if errors.Is(err, transcript.ErrLanguageUnavailable) {
			return nil, transcript.ErrTranslationUnavailable
		}
		return nil, err
	}
	return translated, nil
}

// pickPreferred selects the track whose language appears earliest in the
// priority list. The library fetches matched tracks concurrently and
// returns them in completion order, so the slice order carries no meaning.
func pickPreferred(results []yt_transcript_models.Transcript, languages []string) yt_transcript_models.Transcript {
	for _, lang := range languages {
		for _, r := range results {
			if strings.EqualFold(r.LanguageCode, lang) {
				return r
			}
		}
	}
	return results[0]
}

func convert(videoID string, t yt_transcript_models.Transcript) *transcript.Transcript {
	entries := make([]transcript.Entry, 0, len(t.Lines))
	for _, line := range t.Lines {
		entries = append(entries, transcript.Entry{
			Start:    line.Start,
			Duration: line.Duration,
			Text:     line.Text,
		})
	}
	return &transcript.Transcript{
		VideoID:      videoID,
		Language:     t.Language,
		LanguageCode: t.LanguageCode,
		IsGenerated:  t.IsGenerated,
		Entries:      entries,
	}
}

// mapError translates the library's flat error messages into the typed
// taxonomy. The library wraps everything in fmt.Errorf, so substring
// matching on its known markers is the only available signal.
func mapError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "playerCaptionsTracklistRenderer"):
		return transcript.ErrDisabled
	case strings.Contains(msg, "captions not found in response"):
		return transcript.ErrNotFound
	case strings.Contains(msg, "no transcript found for languages"):
		return transcript.ErrLanguageUnavailable
	default:
		return fmt.Errorf("fetch transcript: %w", err)
	}
}
