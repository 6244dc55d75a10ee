// Package retriever scores queries against the manual.
//
// Two search paths share one ranking step. Search scores the prebuilt index of
// parsed figures and tables. RetrieveCandidates scores raw metadata pages and
// only surfaces pages that reference an image URL. Each path applies its own
// thresholds.
package retriever

import (
	"github.com/go-logr/logr"

	"manualrag/src/core/manual"
	"manualrag/src/core/similarity"
)

// Status tells whether a search produced an answer.
type Status string

const (
	StatusOK           Status = "ok"
	StatusInsufficient Status = "insufficient_info"
)

// Reason explains an insufficient result.
type Reason string

const (
	ReasonNone           Reason = ""
	ReasonNoMatches      Reason = "no_matches"
	ReasonBelowThreshold Reason = "below_threshold"
)

type Retriever struct {
	index    []manual.IndexedItem
	cfg      Config
	expander *similarity.Expander
	logger   logr.Logger
}

// New creates a retriever over a prebuilt index. The index is only read.
func New(index []manual.IndexedItem, opts ...Option) (*Retriever, error) {
	r := &Retriever{
		index:    index,
		cfg:      DefaultConfig(),
		expander: similarity.NewExpander(similarity.ExpandSubstring, similarity.DefaultSynonyms),
		logger:   defaultLogger(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// IndexSize returns the number of indexed items.
func (r *Retriever) IndexSize() int {
	return len(r.index)
}

// Config returns the thresholds and limits in use.
func (r *Retriever) Config() Config {
	return r.cfg
}
