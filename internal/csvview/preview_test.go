package csvview

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlsen/txcat/internal/theme"
)

func TestParse(t *testing.T) {
	t.Run("header and rows", func(t *testing.T) {
		preview := Parse("description,amount\nCAFE 11,4.50\nSHELL 42,30.00\n")
		assert.Equal(t, []string{"description", "amount"}, preview.Header)
		require.Len(t, preview.Rows, 2)
		assert.Equal(t, []string{"CAFE 11", "4.50"}, preview.Rows[0])
		assert.Equal(t, []string{"SHELL 42", "30.00"}, preview.Rows[1])
	})

	t.Run("caps at the first lines", func(t *testing.T) {
		var sb strings.Builder
		sb.WriteString("description\n")
		for i := 0; i < 50; i++ {
			fmt.Fprintf(&sb, "tx %d\n", i)
		}
		preview := Parse(sb.String())
		assert.Len(t, preview.Rows, MaxLines-1, "header plus rows never exceed MaxLines")
	})

	t.Run("blank lines count toward the cap", func(t *testing.T) {
		var sb strings.Builder
		sb.WriteString("description\n\n")
		for i := 0; i < 20; i++ {
			fmt.Fprintf(&sb, "tx %d\n", i)
		}
		preview := Parse(sb.String())
		// Physical lines 1-8 are the header, a blank line, and tx 0..tx 5.
		require.Len(t, preview.Rows, MaxLines-2)
		assert.Equal(t, []string{"tx 5"}, preview.Rows[len(preview.Rows)-1])
	})

	t.Run("split is naive about quoted commas", func(t *testing.T) {
		preview := Parse("description\n\"CAFE, THE\"\n")
		require.Len(t, preview.Rows, 1)
		// Quoted commas are deliberately not handled in the preview.
		assert.Equal(t, []string{"\"CAFE", " THE\""}, preview.Rows[0])
	})

	t.Run("handles CRLF line endings", func(t *testing.T) {
		preview := Parse("description\r\nCAFE 11\r\n")
		assert.Equal(t, []string{"description"}, preview.Header)
		require.Len(t, preview.Rows, 1)
		assert.Equal(t, []string{"CAFE 11"}, preview.Rows[0])
	})

	t.Run("empty text yields an empty preview", func(t *testing.T) {
		assert.True(t, Parse("").Empty())
		assert.True(t, Parse("\n\n").Empty())
	})
}

func TestRender(t *testing.T) {
	th := theme.LightTheme

	t.Run("empty preview shows the placeholder", func(t *testing.T) {
		out := Render(Preview{}, th)
		assert.Contains(t, out, EmptyPlaceholder)
	})

	t.Run("table contains header and cells", func(t *testing.T) {
		out := Render(Parse("description,amount\nCAFE 11,4.50\n"), th)
		assert.Contains(t, out, "description")
		assert.Contains(t, out, "CAFE 11")
		assert.Contains(t, out, "4.50")
	})
}
