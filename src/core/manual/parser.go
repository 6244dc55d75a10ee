package manual

import (
	"context"
	"errors"
	"strings"

	"gitlab.com/golang-commonmark/markdown"

	"manualrag/src/fsutil"
	"manualrag/src/log"
)

const (
	imageMarker = "!["
	tableMarker = `\begin{table}`
)

// Pipe tables, autolinks and raw HTML are left unrendered so that table rows
// and LaTeX directives stay in the inline text the classifier looks at.
var md = markdown.New(
	markdown.Tables(false),
	markdown.Linkify(false),
	markdown.Typographer(false),
	markdown.HTML(false),
)

// Parse tokenizes the manual markup and returns its figures and tables in
// document order.
//
// Each inline text run is classified, in order of precedence, as an image
// (contains "!["), a captioned table (contains \begin{table}) or a
// delimiter-row table (contains both '|' and '-'). Anything else is dropped.
// Image captions come from the following inline run, delimiter-row table
// captions from the preceding one.
func Parse(text string) []ContentItem {
	inlines := inlineContents(md.Parse([]byte(text)))

	items := make([]ContentItem, 0)
	for i, content := range inlines {
		item, ok := classify(inlines, i, content)
		if !ok {
			continue
		}
		if item.Raw == "" {
			log.Debug("dropping content item with empty text", "type", item.Type, "position", i)
			continue
		}
		items = append(items, item)
	}
	return items
}

func classify(inlines []string, i int, content string) (ContentItem, bool) {
	switch {
	case strings.Contains(content, imageMarker):
		caption := ""
		if i+1 < len(inlines) {
			caption = inlines[i+1]
		}
		if caption == "" {
			caption = CleanText(content)
		}
		return ContentItem{Type: ContentImage, Raw: content, Caption: caption}, true

	case strings.Contains(content, tableMarker):
		cleaned := CleanText(content)
		caption := ExtractCaption(content)
		if caption == "" {
			caption = cleaned
		}
		return ContentItem{Type: ContentTable, Raw: cleaned, Caption: caption}, true

	case strings.Contains(content, "|") && strings.Contains(content, "-"):
		caption := ""
		if i > 0 {
			caption = inlines[i-1]
		}
		return ContentItem{Type: ContentTable, Raw: CleanText(content), Caption: caption}, true
	}
	return ContentItem{}, false
}

// inlineContents flattens the block token stream to the source text of each
// inline run.
func inlineContents(tokens []markdown.Token) []string {
	contents := make([]string, 0, len(tokens)/3)
	for _, tok := range tokens {
		if inline, ok := tok.(*markdown.Inline); ok {
			contents = append(contents, inline.Content)
		}
	}
	return contents
}

// ParseFile reads the manual from fs and parses it. A missing or unreadable
// manual is logged and yields no items.
func ParseFile(ctx context.Context, fs fsutil.FileStore, path string) []ContentItem {
	data, err := fs.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fsutil.ErrNotExist) {
			log.Error(err, "manual file not found", "path", path)
		} else {
			log.Error(err, "failed to read manual file", "path", path)
		}
		return []ContentItem{}
	}
	return Parse(string(data))
}
