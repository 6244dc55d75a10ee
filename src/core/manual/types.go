// Package manual turns a technical manual and its positional metadata into
// the in-memory index searched by the retriever.
//
// The index joins parsed content items with metadata pages by position only:
// the i-th item receives the i-th page's number and region. No content-based
// alignment is attempted, so when the parser and the metadata disagree on the
// number of items the joined locations are noise. Items past the end of the
// metadata get no location.
package manual

import (
	"bytes"
	"encoding/json"
)

// ContentType classifies a parsed content item.
type ContentType string

const (
	ContentImage ContentType = "image"
	ContentTable ContentType = "table"
)

// Region is an opaque bounding box passed through unvalidated.
type Region = json.RawMessage

// ContentItem is a figure or table found in the manual.
type ContentItem struct {
	Type    ContentType `json:"type"`
	Raw     string      `json:"raw"`
	Caption string      `json:"caption"`
}

// IndexedItem is a ContentItem joined with its position in the manual.
type IndexedItem struct {
	ContentItem
	ID          int    `json:"id"`
	Page        *int   `json:"page"`
	BoundingBox Region `json:"bounding_box"`
}

// SearchText is the text a query is scored against.
func (i IndexedItem) SearchText() string {
	return i.Caption + " " + i.Raw
}

// Metadata is the per-page, per-line layout data extracted from the manual.
type Metadata struct {
	Pages []PageRecord `json:"pages"`
}

type PageRecord struct {
	Page   *int         `json:"page,omitempty"`
	Region Region       `json:"region,omitempty"`
	Lines  []LineRecord `json:"lines"`
}

type LineRecord struct {
	Text   string `json:"text"`
	Region Region `json:"region"`
}

// Context joins the text of every line on the page with single spaces.
func (p PageRecord) Context() string {
	var buf bytes.Buffer
	for i, line := range p.Lines {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(line.Text)
	}
	return buf.String()
}

// HasRegion reports whether r carries a value other than JSON null.
func HasRegion(r Region) bool {
	trimmed := bytes.TrimSpace(r)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}
