package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nicholasreese/youtube-transcript/internal/transcript"
)

// formatTimestamp renders seconds as [H:]MM:SS, truncating the fractional
// part. The hours segment is omitted when zero.
func formatTimestamp(seconds float64) string {
	total := int(seconds)
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// renderText produces one line per transcript entry, optionally prefixed
// with the entry's start timestamp.
func renderText(t *transcript.Transcript, timestamps bool) string {
	var sb strings.Builder
	for i, entry := range t.Entries {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if timestamps {
			fmt.Fprintf(&sb, "[%s] ", formatTimestamp(entry.Start))
		}
		sb.WriteString(flatten(entry.Text))
	}
	return sb.String()
}

// renderJSON serializes the entries verbatim, preserving order.
func renderJSON(t *transcript.Transcript) (string, error) {
	entries := t.Entries
	if entries == nil {
		entries = []transcript.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode transcript: %w", err)
	}
	return string(data), nil
}

// flatten keeps an entry on a single output line. Caption text can carry
// embedded line breaks; everything else is left untouched.
func flatten(text string) string {
	text = strings.ReplaceAll(text, "\r\n", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.ReplaceAll(text, "\r", " ")
}
