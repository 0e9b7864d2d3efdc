package output

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const filePerm = 0o644

// Write writes content to path, creating or overwriting the file, or to
// stdout when path is empty. A single trailing newline is guaranteed.
func Write(content, path string) error {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	if path == "" {
		_, err := io.WriteString(os.Stdout, content)
		return err
	}

	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}
