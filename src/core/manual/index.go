package manual

import (
	"context"

	"manualrag/src/fsutil"
	"manualrag/src/log"
)

// Join attaches the i-th metadata page's number and region to the i-th item.
func Join(items []ContentItem, md Metadata) []IndexedItem {
	indexed := make([]IndexedItem, len(items))
	for i, item := range items {
		entry := IndexedItem{ContentItem: item, ID: i}
		if i < len(md.Pages) {
			page := md.Pages[i]
			entry.Page = page.Page
			if HasRegion(page.Region) {
				entry.BoundingBox = page.Region
			}
		}
		indexed[i] = entry
	}
	return indexed
}

// BuildIndex parses the manual and reads its metadata independently, then
// joins them by position. It never fails: missing inputs give an empty or
// location-less index.
func BuildIndex(ctx context.Context, fs fsutil.FileStore, manualPath, metadataPath string) []IndexedItem {
	items := ParseFile(ctx, fs, manualPath)
	md := ReadMetadata(ctx, fs, metadataPath)

	if len(items) == 0 {
		log.Info("no content items found in manual", "path", manualPath)
	}
	if len(md.Pages) != len(items) {
		log.V(1).Info("content items and metadata pages differ in count",
			"items", len(items), "pages", len(md.Pages))
	}

	return Join(items, md)
}
