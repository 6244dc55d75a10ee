package formatter_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manualrag/src/core/formatter"
	"manualrag/src/core/manual"
	"manualrag/src/core/retriever"
)

func marshal(t *testing.T, v any) string {
	t.Helper()
	out, err := json.Marshal(v)
	require.NoError(t, err)
	return string(out)
}

func intPtr(v int) *int { return &v }

func TestCandidates(t *testing.T) {
	tests := []struct {
		name string
		in   retriever.CandidateResult
		want string
	}{
		{
			name: "insufficient",
			in:   retriever.CandidateResult{Status: retriever.StatusInsufficient, Reason: retriever.ReasonNoMatches},
			want: `{"result":"insufficient_info"}`,
		},
		{
			name: "below threshold",
			in:   retriever.CandidateResult{Status: retriever.StatusInsufficient, Reason: retriever.ReasonBelowThreshold},
			want: `{"result":"insufficient_info"}`,
		},
		{
			name: "candidates",
			in: retriever.CandidateResult{
				Status: retriever.StatusOK,
				Candidates: []retriever.Candidate{
					{
						Item: retriever.PageMatch{
							ImageURL:    "https://example.com/fig1.png",
							PageNo:      intPtr(7),
							BoundingBox: manual.Region(`[1,2,3,4]`),
							Caption:     "Valve Assembly",
							Context:     "valve",
						},
						Score: 0.5,
					},
					{
						Item:  retriever.PageMatch{ImageURL: "https://example.com/fig2.png", Context: "pump"},
						Score: 0.25,
					},
				},
			},
			want: `{"results":[
				{"image_url":"https://example.com/fig1.png","page_no":7,"bounding_box":[1,2,3,4],"caption":"Valve Assembly","context":"valve","score":0.5},
				{"image_url":"https://example.com/fig2.png","page_no":null,"bounding_box":null,"caption":null,"context":"pump","score":0.25}
			]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.want, marshal(t, formatter.Candidates(tt.in)))
		})
	}
}

func TestIndex(t *testing.T) {
	insufficient := retriever.Result{Status: retriever.StatusInsufficient, Reason: retriever.ReasonBelowThreshold}
	assert.JSONEq(t, `{"result":"insufficient_info"}`, marshal(t, formatter.Index(insufficient)))

	res := retriever.Result{
		Status: retriever.StatusOK,
		Items: []retriever.ScoredItem{
			{
				Item: manual.IndexedItem{
					ContentItem: manual.ContentItem{Type: manual.ContentTable, Raw: "a b", Caption: "Ratings"},
					ID:          2,
					Page:        intPtr(3),
					BoundingBox: manual.Region(`{"x":1}`),
				},
				Score: 0.75,
			},
			{
				Item: manual.IndexedItem{
					ContentItem: manual.ContentItem{Type: manual.ContentImage, Raw: "![x](y)", Caption: ""},
					ID:          9,
				},
				Score: 0.125,
			},
		},
	}

	want := `{"results":[
		{"type":"table","content":"a b","caption":"Ratings","citation":{"page_no":3,"bounding_box":{"x":1}},"confidence":0.75},
		{"type":"image","content":"![x](y)","caption":"","citation":{"page_no":null,"bounding_box":null},"confidence":0.125}
	]}`
	assert.JSONEq(t, want, marshal(t, formatter.Index(res)))
}

func TestEmptyResultsStillAnArray(t *testing.T) {
	out := marshal(t, formatter.Index(retriever.Result{Status: retriever.StatusOK}))
	assert.JSONEq(t, `{"results":[]}`, out)
}
