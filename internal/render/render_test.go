package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlsen/txcat/internal/model"
	"github.com/mkarlsen/txcat/internal/theme"
)

func TestTaxonomyOptions(t *testing.T) {
	tests := []struct {
		taxonomy   *model.Taxonomy
		name       string
		wantLabels []string
		wantValues []string
	}{
		{
			name: "valid taxonomy yields one option per category",
			taxonomy: &model.Taxonomy{
				Categories: []model.Category{
					{ID: "groceries", Name: "Groceries"},
					{ID: "dining", Name: "Dining Out"},
					{ID: "transport", Name: "Transportation"},
				},
			},
			wantValues: []string{"groceries", "dining", "transport"},
			wantLabels: []string{"groceries — Groceries", "dining — Dining Out", "transport — Transportation"},
		},
		{
			name:       "nil taxonomy yields the sentinel option",
			taxonomy:   nil,
			wantValues: []string{""},
			wantLabels: []string{SentinelLoadFailed},
		},
		{
			name:       "empty category list yields the sentinel option",
			taxonomy:   &model.Taxonomy{},
			wantValues: []string{""},
			wantLabels: []string{SentinelLoadFailed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := TaxonomyOptions(tt.taxonomy)
			require.Len(t, options, len(tt.wantValues))
			for i, option := range options {
				assert.Equal(t, tt.wantValues[i], option.Value)
				assert.Equal(t, tt.wantLabels[i], option.Label)
			}
		})
	}
}

func TestModelInfo(t *testing.T) {
	tests := []struct {
		taxonomy  *model.Taxonomy
		name      string
		wantModel string
		wantIndex string
	}{
		{
			name:      "nil taxonomy shows placeholders",
			taxonomy:  nil,
			wantModel: Placeholder,
			wantIndex: Placeholder,
		},
		{
			name:      "absent fields show placeholders",
			taxonomy:  &model.Taxonomy{Categories: []model.Category{{ID: "a", Name: "A"}}},
			wantModel: Placeholder,
			wantIndex: Placeholder,
		},
		{
			name:      "present fields are displayed",
			taxonomy:  &model.Taxonomy{Model: "minilm-v2", IndexCount: 1742},
			wantModel: "minilm-v2",
			wantIndex: "1742",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			modelName, indexCount := ModelInfo(tt.taxonomy)
			assert.Equal(t, tt.wantModel, modelName)
			assert.Equal(t, tt.wantIndex, indexCount)
		})
	}
}

func TestConfidence(t *testing.T) {
	tests := []struct {
		name       string
		want       string
		confidence float64
	}{
		{name: "one decimal place", confidence: 0.873, want: "Confidence: 87.3%"},
		{name: "zero", confidence: 0, want: "Confidence: 0.0%"},
		{name: "full", confidence: 1, want: "Confidence: 100.0%"},
		{name: "keeps one decimal", confidence: 0.8735, want: "Confidence: 87.3%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Confidence(tt.confidence))
		})
	}
}

func TestBarPercent(t *testing.T) {
	tests := []struct {
		name       string
		similarity float64
		want       int
	}{
		{name: "zero similarity is floored", similarity: 0, want: 2},
		{name: "below floor is floored", similarity: 0.01, want: 2},
		{name: "normal value rounds", similarity: 0.873, want: 87},
		{name: "full similarity", similarity: 1, want: 100},
		{name: "above one is capped", similarity: 1.2, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BarPercent(tt.similarity))
		})
	}
}

func TestSimilarityBar_ZeroStaysVisible(t *testing.T) {
	bar := SimilarityBar(0, 50, theme.LightTheme)
	assert.Contains(t, bar, "█", "a zero-similarity bar must keep at least one filled cell")
}

func TestNeighborRows(t *testing.T) {
	th := theme.LightTheme

	t.Run("empty list renders exactly one placeholder row", func(t *testing.T) {
		rows := NeighborRows(nil, 20, th)
		require.Len(t, rows, 1)
		assert.Contains(t, rows[0], NoNeighbors)
	})

	t.Run("one row per neighbor with rounded percent label", func(t *testing.T) {
		neighbors := []model.Neighbor{
			{Transaction: "STARBUCKS #1234", Similarity: 0.912},
			{Meta: "aggregate match", Similarity: 0.448},
		}
		rows := NeighborRows(neighbors, 20, th)
		require.Len(t, rows, 2)
		assert.Contains(t, rows[0], "91%")
		assert.Contains(t, rows[0], "STARBUCKS #1234")
		assert.Contains(t, rows[1], "45%")
		assert.Contains(t, rows[1], "aggregate match")
	})
}

func TestRationale(t *testing.T) {
	tests := []struct {
		name       string
		want       string
		prediction model.Prediction
	}{
		{
			name: "explicit rationale wins",
			prediction: model.Prediction{
				Rationale:      "matched recurring merchant",
				KeywordMatches: []string{"coffee"},
			},
			want: "matched recurring merchant",
		},
		{
			name: "keyword matches are synthesized",
			prediction: model.Prediction{
				KeywordMatches: []string{"coffee", "latte"},
			},
			want: "Keyword matches: coffee, latte",
		},
		{
			name:       "generic fallback",
			prediction: model.Prediction{},
			want:       genericRationale,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rationale(tt.prediction))
		})
	}
}

func TestPrettyJSON(t *testing.T) {
	t.Run("indents valid JSON", func(t *testing.T) {
		out := PrettyJSON([]byte(`{"category":"dining","confidence":0.9}`))
		assert.Contains(t, out, "\n")
		assert.Contains(t, out, `"category": "dining"`)
	})

	t.Run("returns invalid JSON unchanged", func(t *testing.T) {
		raw := "not json at all"
		assert.Equal(t, raw, PrettyJSON([]byte(raw)))
	})
}

func TestSimilarityBar_Width(t *testing.T) {
	bar := SimilarityBar(0.5, 10, theme.DarkTheme)
	filled := strings.Count(bar, "█")
	empty := strings.Count(bar, "░")
	assert.Equal(t, 10, filled+empty)
	assert.Equal(t, 5, filled)
}
