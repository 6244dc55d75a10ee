package retriever

import (
	"regexp"

	"manualrag/src/core/manual"
	"manualrag/src/core/similarity"
)

const (
	stemmedWeight = 0.7
	blendedWeight = 0.3
)

var (
	urlPattern     = regexp.MustCompile(`https?://[^\s}]+`)
	captionPattern = regexp.MustCompile(`\\caption\{([^}]+)\}`)
)

// PageMatch is a metadata page that references an image.
type PageMatch struct {
	ImageURL    string
	PageNo      *int
	BoundingBox manual.Region
	// Caption is empty when the page has no caption directive.
	Caption string
	Context string
}

type Candidate = Scored[PageMatch]

// CandidateResult is the outcome of Answer.
type CandidateResult struct {
	Status     Status
	Reason     Reason
	Candidates []Candidate
}

type pageView struct {
	match PageMatch
	ok    bool
}

func inspectPage(page manual.PageRecord) pageView {
	view := pageView{match: PageMatch{PageNo: page.Page, Context: page.Context()}}
	if len(page.Lines) > 0 && manual.HasRegion(page.Lines[0].Region) {
		view.match.BoundingBox = page.Lines[0].Region
	}

	for _, line := range page.Lines {
		if view.match.ImageURL == "" {
			view.match.ImageURL = urlPattern.FindString(line.Text)
		}
		if view.match.Caption == "" {
			if m := captionPattern.FindStringSubmatch(line.Text); m != nil {
				view.match.Caption = m[1]
			}
		}
	}
	view.ok = view.match.ImageURL != ""
	return view
}

// RetrieveCandidates scores every page of md against the query and each of
// its expansions with 0.7 x stemmed overlap + 0.3 x blended score on the
// page's joined line text. A (variant, page) pair becomes a candidate only
// when the page contains an image URL and the score exceeds CandidateFloor.
// Candidates from all pairs are ranked together and cut to CandidateTopK.
func (r *Retriever) RetrieveCandidates(query string, md manual.Metadata) []Candidate {
	views := make([]pageView, len(md.Pages))
	for i, page := range md.Pages {
		views[i] = inspectPage(page)
	}

	candidates := make([]Candidate, 0)
	for _, variant := range r.expander.Expand(query) {
		for _, view := range views {
			if !view.ok {
				continue
			}
			score := stemmedWeight*similarity.StemmedOverlap(variant, view.match.Context) +
				blendedWeight*similarity.Blended(variant, view.match.Context)
			if score > r.cfg.CandidateFloor {
				candidates = append(candidates, Candidate{Item: view.match, Score: score})
			}
		}
	}

	return rank(candidates, r.cfg.CandidateTopK)
}

// Answer runs RetrieveCandidates and reports insufficient information when no
// page qualifies or the best candidate scores below CandidateThreshold.
func (r *Retriever) Answer(query string, md manual.Metadata) CandidateResult {
	candidates := r.RetrieveCandidates(query, md)
	if len(candidates) == 0 {
		r.logger.V(1).Info("no page candidates", "query", query, "pages", len(md.Pages))
		return CandidateResult{Status: StatusInsufficient, Reason: ReasonNoMatches}
	}
	if candidates[0].Score < r.cfg.CandidateThreshold {
		r.logger.V(1).Info("best page candidate below threshold",
			"query", query, "score", candidates[0].Score, "threshold", r.cfg.CandidateThreshold)
		return CandidateResult{Status: StatusInsufficient, Reason: ReasonBelowThreshold}
	}
	return CandidateResult{Status: StatusOK, Candidates: candidates}
}
