package manual_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manualrag/src/core/manual"
	"manualrag/src/fsutil"
)

const sampleManual = `# Pump Manual

![valve](https://example.com/valve.png)

Figure 1: Valve assembly

\begin{table}
\caption{Torque values}
\end{table}

Pressure ratings

| a | b |
|---|---|
| 1 | 2 |

Plain paragraph.
`

func TestParse(t *testing.T) {
	items := manual.Parse(sampleManual)

	want := []manual.ContentItem{
		{
			Type:    manual.ContentImage,
			Raw:     "![valve](https://example.com/valve.png)",
			Caption: "Figure 1: Valve assembly",
		},
		{
			Type:    manual.ContentTable,
			Raw:     "table Torque values table",
			Caption: "Torque values",
		},
		{
			Type:    manual.ContentTable,
			Raw:     "a b --- --- 1 2",
			Caption: "Pressure ratings",
		},
	}
	assert.Equal(t, want, items)
}

func TestParseCaptionFallbacks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want manual.ContentItem
	}{
		{
			name: "image at end of document falls back to cleaned text",
			text: "Intro text\n\nSee ![pump](pump.png) diagram",
			want: manual.ContentItem{Type: manual.ContentImage, Raw: "See ![pump](pump.png) diagram", Caption: "See diagram"},
		},
		{
			name: "table environment without caption uses cleaned text",
			text: `\begin{table} Flow $q$ rates \end{table}`,
			want: manual.ContentItem{Type: manual.ContentTable, Raw: "table Flow rates table", Caption: "table Flow rates table"},
		},
		{
			name: "delimiter row first in document has empty caption",
			text: "x | y - z",
			want: manual.ContentItem{Type: manual.ContentTable, Raw: "x y - z", Caption: ""},
		},
		{
			name: "image wins over table markers",
			text: `![chart](c.png) \begin{table} | - |`,
			want: manual.ContentItem{Type: manual.ContentImage, Raw: `![chart](c.png) \begin{table} | - |`, Caption: "table -"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := manual.Parse(tt.text)
			require.Len(t, items, 1)
			assert.Equal(t, tt.want, items[0])
		})
	}
}

func TestParseProperties(t *testing.T) {
	docs := []string{
		sampleManual,
		"",
		"just prose, nothing else",
		`\begin{table}\end{table}`,
		"| | |\n|-|-|",
		"$$ broken { math",
	}

	for _, doc := range docs {
		first := manual.Parse(doc)
		second := manual.Parse(doc)
		assert.Equal(t, first, second, "parse must be deterministic")
		assert.NotNil(t, first)
		for _, item := range first {
			assert.NotEmpty(t, item.Raw)
		}
	}
}

func TestParseFileMissing(t *testing.T) {
	items := manual.ParseFile(context.Background(), fsutil.NewLocalFileStore(t.TempDir()), "manual.mmd")
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Use $x^2$ here", want: "Use here"},
		{in: `\textbf{Bold} & 50%`, want: "Bold 50"},
		{in: "see ![a](b_c) now", want: "see now"},
		{in: "a\n\n\tb   c", want: "a b c"},
		{in: `$unclosed \cmd{`, want: "$unclosed"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, manual.CleanText(tt.in))
		})
	}
}

func TestExtractCaption(t *testing.T) {
	assert.Equal(t, "Torque values", manual.ExtractCaption(`\begin{table}\caption{Torque values}\end{table}`))
	assert.Equal(t, "first", manual.ExtractCaption(`\caption{first} \caption{second}`))
	assert.Equal(t, "", manual.ExtractCaption(`\caption{}`))
	assert.Equal(t, "", manual.ExtractCaption("no caption"))
}
