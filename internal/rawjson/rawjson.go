// Package rawjson implements the inspection utilities for raw backend
// responses: clipboard copy with an OSC52 fallback, and saving to disk.
package rawjson

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// DownloadFilename is the fixed name used when saving a response.
const DownloadFilename = "prediction.json"

// Copy places text on the system clipboard. When the native clipboard is
// unavailable it falls back to emitting an OSC52 escape sequence, which
// most modern terminals translate into a clipboard write.
func Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return copyOSC52(os.Stderr, text)
	}
	return nil
}

func copyOSC52(w io.Writer, text string) error {
	if _, err := osc52.New(text).WriteTo(w); err != nil {
		return fmt.Errorf("clipboard unavailable and OSC52 write failed: %w", err)
	}
	return nil
}

// Save writes text under the fixed filename in dir and returns the full
// path. The saved bytes are exactly the displayed bytes.
func Save(dir, text string) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, DownloadFilename)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("failed to save response: %w", err)
	}
	return path, nil
}
