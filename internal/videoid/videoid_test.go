package videoid

import (
	"errors"
	"testing"
)

const wantID = "dQw4w9WgXcQ"

func TestExtract_KnownShapes(t *testing.T) {
	tests := []struct {
		name string
		ref  string
	}{
		{"bare id", "dQw4w9WgXcQ"},
		{"bare id padded", "  dQw4w9WgXcQ  "},
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"watch url no www", "https://youtube.com/watch?v=dQw4w9WgXcQ"},
		{"watch url extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s&list=PL123"},
		{"watch url no scheme", "www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"mobile watch url", "https://m.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"music watch url", "https://music.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"share link", "https://youtu.be/dQw4w9WgXcQ"},
		{"share link with params", "https://youtu.be/dQw4w9WgXcQ?si=AbCdEf123"},
		{"share link no scheme", "youtu.be/dQw4w9WgXcQ"},
		{"embed link", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"shorts link", "https://www.youtube.com/shorts/dQw4w9WgXcQ"},
		{"live link", "https://www.youtube.com/live/dQw4w9WgXcQ"},
		{"legacy v link", "https://www.youtube.com/v/dQw4w9WgXcQ"},
		{"embed link trailing slash", "https://www.youtube.com/embed/dQw4w9WgXcQ/"},
	}

	for _, tt := range tests {
		got, err := Extract(tt.ref)
		if err != nil {
			t.Errorf("%s: Extract(%q) returned error: %v", tt.name, tt.ref, err)
			continue
		}
		if got != wantID {
			t.Errorf("%s: Extract(%q) = %q, want %q", tt.name, tt.ref, got, wantID)
		}
	}
}

func TestExtract_Unrecognized(t *testing.T) {
	tests := []struct {
		name string
		ref  string
	}{
		{"empty", ""},
		{"garbage", "not a video reference"},
		{"wrong host", "https://example.com/watch?v=dQw4w9WgXcQ"},
		{"lookalike host", "https://notyoutube.com/watch?v=dQw4w9WgXcQ"},
		{"id too short", "dQw4w9WgXc"},
		{"id too long", "dQw4w9WgXcQQ"},
		{"id bad chars", "dQw4w9WgXc!"},
		{"watch url short id", "https://www.youtube.com/watch?v=short"},
		{"watch url no v param", "https://www.youtube.com/watch?list=PL123"},
		{"channel url", "https://www.youtube.com/@somechannel"},
		{"share link no id", "https://youtu.be/"},
	}

	for _, tt := range tests {
		got, err := Extract(tt.ref)
		if !errors.Is(err, ErrUnrecognizedReference) {
			t.Errorf("%s: Extract(%q) = (%q, %v), want ErrUnrecognizedReference", tt.name, tt.ref, got, err)
		}
	}
}
