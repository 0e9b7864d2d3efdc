package transcript

// Error is a transcript failure kind. The values below are the complete
// set of definitive, non-retried failures the fetch path can surface.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrNotFound               = Error("no transcript found for this video")
	ErrDisabled               = Error("transcripts are disabled for this video")
	ErrLanguageUnavailable    = Error("no transcript found in requested languages")
	ErrTranslationUnavailable = Error("no transcript available in the translation target language")
)
