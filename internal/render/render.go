// Package render formats backend responses for terminal display: the
// taxonomy option list, prediction confidence and neighbor bars, rationale
// selection, and raw JSON pretty-printing.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/mkarlsen/txcat/internal/model"
	"github.com/mkarlsen/txcat/internal/theme"
)

const (
	// SentinelLoadFailed is the single option shown when the taxonomy
	// could not be fetched.
	SentinelLoadFailed = "load failed"

	// Placeholder stands in for absent model/index metadata.
	Placeholder = "—"

	// NoNeighbors is shown when a prediction carries no explanations.
	NoNeighbors = "(no similar transactions)"

	// genericRationale is the last-resort rationale string.
	genericRationale = "Nearest neighbors voted for this category."

	// barFloorPercent keeps a zero-similarity bar visible.
	barFloorPercent = 2
)

// Option is one entry of the label selection list.
type Option struct {
	Value string
	Label string
}

// TaxonomyOptions builds the label selection list. A nil taxonomy or one
// without categories yields exactly one sentinel option.
func TaxonomyOptions(t *model.Taxonomy) []Option {
	if t == nil || len(t.Categories) == 0 {
		return []Option{{Value: "", Label: SentinelLoadFailed}}
	}
	options := make([]Option, 0, len(t.Categories))
	for _, c := range t.Categories {
		options = append(options, Option{Value: c.ID, Label: c.Label()})
	}
	return options
}

// ModelInfo returns the displayed model name and index size, with
// placeholders for absent fields.
func ModelInfo(t *model.Taxonomy) (modelName, indexCount string) {
	modelName, indexCount = Placeholder, Placeholder
	if t == nil {
		return modelName, indexCount
	}
	if t.Model != "" {
		modelName = t.Model
	}
	if t.IndexCount > 0 {
		indexCount = fmt.Sprintf("%d", t.IndexCount)
	}
	return modelName, indexCount
}

// Confidence formats a confidence score as a percentage with one decimal.
func Confidence(confidence float64) string {
	return fmt.Sprintf("Confidence: %.1f%%", confidence*100)
}

// BarPercent converts a similarity in [0,1] to a bar percentage, floored so
// a zero-similarity bar remains visible.
func BarPercent(similarity float64) int {
	percent := int(math.Round(similarity * 100))
	if percent < barFloorPercent {
		return barFloorPercent
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// SimilarityBar renders a proportional bar of the given cell width.
func SimilarityBar(similarity float64, width int, th theme.Theme) string {
	if width <= 0 {
		width = 20
	}
	filled := width * BarPercent(similarity) / 100
	if filled < 1 {
		filled = 1
	}
	if filled > width {
		filled = width
	}
	return th.BarFull.Render(strings.Repeat("█", filled)) +
		th.BarEmpty.Render(strings.Repeat("░", width-filled))
}

// NeighborRows renders one row per explanation, or a single placeholder row
// when the list is absent or empty.
func NeighborRows(neighbors []model.Neighbor, barWidth int, th theme.Theme) []string {
	if len(neighbors) == 0 {
		return []string{th.Muted.Render(NoNeighbors)}
	}
	rows := make([]string, 0, len(neighbors))
	for _, n := range neighbors {
		label := fmt.Sprintf("%3d%%", int(math.Round(n.Similarity*100)))
		rows = append(rows, fmt.Sprintf("%s %s  %s",
			SimilarityBar(n.Similarity, barWidth, th),
			th.Subtitle.Render(label),
			th.Normal.Render(n.Text())))
	}
	return rows
}

// Rationale selects the explanation string: explicit rationale first, then
// a synthesized keyword line, then a generic fallback.
func Rationale(p model.Prediction) string {
	if p.Rationale != "" {
		return p.Rationale
	}
	if len(p.KeywordMatches) > 0 {
		return "Keyword matches: " + strings.Join(p.KeywordMatches, ", ")
	}
	return genericRationale
}

// PrettyJSON indents raw JSON for inspection. Invalid JSON is returned
// unchanged so the verbatim response is never lost.
func PrettyJSON(raw []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return string(raw)
	}
	return out.String()
}
