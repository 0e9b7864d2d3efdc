// Package videoid normalizes a YouTube video reference (URL or bare ID)
// into the canonical 11-character video ID. It never touches the network.
package videoid

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

// ErrUnrecognizedReference is returned when no known URL shape matches.
var ErrUnrecognizedReference = errors.New("unrecognized video reference")

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// Path prefixes that carry the video ID as the following segment.
var pathPrefixes = []string{"/embed/", "/shorts/", "/live/", "/v/"}

// Extract returns the canonical video ID for a watch URL, a youtu.be share
// link, an embed/shorts/live link, or a bare 11-character ID. The scheme is
// optional; pasted URLs without "https://" are accepted.
func Extract(ref string) (string, error) {
	candidate := strings.TrimSpace(ref)
	if idPattern.MatchString(candidate) {
		return candidate, nil
	}

	raw := candidate
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return "", ErrUnrecognizedReference
	}

	host := strings.ToLower(u.Hostname())
	switch {
	case host == "youtu.be":
		if id := firstSegment(u.Path); idPattern.MatchString(id) {
			return id, nil
		}

	case host == "youtube.com" || strings.HasSuffix(host, ".youtube.com"):
		if id := u.Query().Get("v"); idPattern.MatchString(id) {
			return id, nil
		}
		for _, prefix := range pathPrefixes {
			if !strings.HasPrefix(u.Path, prefix) {
				continue
			}
			if id := firstSegment(strings.TrimPrefix(u.Path, prefix)); idPattern.MatchString(id) {
				return id, nil
			}
		}
	}

	return "", ErrUnrecognizedReference
}

func firstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	return path
}
