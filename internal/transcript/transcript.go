package transcript

import "context"

// Entry represents a single caption unit of a transcript.
type Entry struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
}

// Transcript is an ordered sequence of caption entries for one video.
// Entries are kept in presentation order as returned by the source.
type Transcript struct {
	VideoID      string
	Language     string
	LanguageCode string
	IsGenerated  bool
	Entries      []Entry
}

// Fetcher is the narrow contract this tool consumes from the transcript
// provider. The rest of the pipeline only talks to this interface, so it
// can be exercised with a stub instead of live network calls.
type Fetcher interface {
	// Fetch returns the transcript for videoID in the first available
	// language from the priority list. An empty list means any language.
	Fetch(ctx context.Context, videoID string, languages []string) (*Transcript, error)

	// Translate returns t's transcript in the target language.
	Translate(ctx context.Context, t *Transcript, target string) (*Transcript, error)
}
