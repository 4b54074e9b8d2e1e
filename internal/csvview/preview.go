// Package csvview renders a client-side preview of a CSV file before batch
// submission. The preview is cosmetic: the upload always sends the raw file.
package csvview

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/mkarlsen/txcat/internal/theme"
)

// MaxLines caps how much of the file the preview shows.
const MaxLines = 8

// EmptyPlaceholder is shown when the file has no content.
const EmptyPlaceholder = "(empty file)"

// Preview holds the parsed head of a CSV file.
type Preview struct {
	Header []string
	Rows   [][]string
}

// Empty reports whether the file had no content.
func (p Preview) Empty() bool {
	return len(p.Header) == 0
}

// Parse splits the first MaxLines physical lines of text on commas. Blank
// lines count toward the cap but produce no row. The split is deliberately
// naive and does not handle quoted or escaped commas; the backend parses
// the real file.
func Parse(text string) Preview {
	var preview Preview
	lines := strings.Split(text, "\n")
	if len(lines) > MaxLines {
		lines = lines[:MaxLines]
	}
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if preview.Header == nil {
			preview.Header = fields
		} else {
			preview.Rows = append(preview.Rows, fields)
		}
	}
	return preview
}

// Render formats the preview as an aligned table.
func Render(p Preview, th theme.Theme) string {
	if p.Empty() {
		return th.Muted.Render(EmptyPlaceholder)
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	headers := make([]string, len(p.Header))
	for i, h := range p.Header {
		headers[i] = th.Bold.Render(h)
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))

	for _, row := range p.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	_ = w.Flush()
	return strings.TrimRight(sb.String(), "\n")
}
