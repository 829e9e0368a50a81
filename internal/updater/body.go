package updater

import (
	"fmt"
	"io"
	"strings"
)

// readAndCleanBody reads the body, closes it and trims surrounding
// whitespace from the body data.
func readAndCleanBody(body io.ReadCloser) (cleanedBody string, err error) {
	b, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	err = body.Close()
	if err != nil {
		return "", fmt.Errorf("closing body: %w", err)
	}

	return strings.TrimSpace(string(b)), nil
}

func toSingleLine(s string) (line string) {
	line = strings.ReplaceAll(s, "\n", "")
	line = strings.ReplaceAll(line, "\r", "")
	return line
}
