package manual

import (
	"context"
	"encoding/json"
	"fmt"

	"manualrag/src/fsutil"
	"manualrag/src/log"
)

// ReadMetadata loads the page layout file. Any failure to read or decode the
// file is logged and yields empty metadata, so callers always get a usable
// value.
func ReadMetadata(ctx context.Context, fs fsutil.FileStore, path string) Metadata {
	data, err := fs.ReadFile(ctx, path)
	if err != nil {
		log.Error(err, "failed to read metadata file", "path", path)
		return Metadata{Pages: []PageRecord{}}
	}

	md, err := DecodeMetadata(data)
	if err != nil {
		log.Error(err, "failed to decode metadata file", "path", path)
		return Metadata{Pages: []PageRecord{}}
	}

	if len(md.Pages) == 0 {
		log.Info("metadata file has no pages", "path", path)
	}
	return md
}

// DecodeMetadata decodes a metadata document. A top-level document that is not
// an object with a pages array is an error; an individual page that fails to
// decode becomes an empty page so later pages keep their position.
func DecodeMetadata(data []byte) (Metadata, error) {
	var doc struct {
		Pages []json.RawMessage `json:"pages"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return Metadata{}, fmt.Errorf("failed to unmarshal metadata: %w", err)
	}

	md := Metadata{Pages: make([]PageRecord, 0, len(doc.Pages))}
	for i, raw := range doc.Pages {
		var page PageRecord
		if err := json.Unmarshal(raw, &page); err != nil {
			log.V(1).Info("skipping malformed metadata page", "position", i, "error", err.Error())
			page = PageRecord{}
		}
		md.Pages = append(md.Pages, page)
	}
	return md, nil
}
