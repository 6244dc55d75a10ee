// Package formatter shapes retrieval results into the JSON documents returned
// to clients.
package formatter

import (
	"manualrag/src/core/manual"
	"manualrag/src/core/retriever"
)

// InsufficientInfo is the value of the "result" field when nothing relevant
// was found.
const InsufficientInfo = "insufficient_info"

// Insufficient is returned unchanged for every unanswered query.
type Insufficient struct {
	Result string `json:"result"`
}

type CandidateResponse struct {
	Results []CandidateEntry `json:"results"`
}

type CandidateEntry struct {
	ImageURL    string        `json:"image_url"`
	PageNo      *int          `json:"page_no"`
	BoundingBox manual.Region `json:"bounding_box"`
	Caption     *string       `json:"caption"`
	Context     string        `json:"context"`
	Score       float64       `json:"score"`
}

type IndexResponse struct {
	Results []IndexEntry `json:"results"`
}

type IndexEntry struct {
	Type       manual.ContentType `json:"type"`
	Content    string             `json:"content"`
	Caption    string             `json:"caption"`
	Citation   Citation           `json:"citation"`
	Confidence float64            `json:"confidence"`
}

type Citation struct {
	PageNo      *int          `json:"page_no"`
	BoundingBox manual.Region `json:"bounding_box"`
}

func insufficient() Insufficient {
	return Insufficient{Result: InsufficientInfo}
}

// Candidates formats the page search answer. Pages without a caption report
// a null caption.
func Candidates(res retriever.CandidateResult) any {
	if res.Status != retriever.StatusOK {
		return insufficient()
	}

	out := CandidateResponse{Results: make([]CandidateEntry, 0, len(res.Candidates))}
	for _, c := range res.Candidates {
		entry := CandidateEntry{
			ImageURL:    c.Item.ImageURL,
			PageNo:      c.Item.PageNo,
			BoundingBox: c.Item.BoundingBox,
			Context:     c.Item.Context,
			Score:       c.Score,
		}
		if c.Item.Caption != "" {
			caption := c.Item.Caption
			entry.Caption = &caption
		}
		out.Results = append(out.Results, entry)
	}
	return out
}

// Index formats the index search result with a citation per item.
func Index(res retriever.Result) any {
	if res.Status != retriever.StatusOK {
		return insufficient()
	}

	out := IndexResponse{Results: make([]IndexEntry, 0, len(res.Items))}
	for _, hit := range res.Items {
		out.Results = append(out.Results, IndexEntry{
			Type:    hit.Item.Type,
			Content: hit.Item.Raw,
			Caption: hit.Item.Caption,
			Citation: Citation{
				PageNo:      hit.Item.Page,
				BoundingBox: hit.Item.BoundingBox,
			},
			Confidence: hit.Score,
		})
	}
	return out
}
