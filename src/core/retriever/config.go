package retriever

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"manualrag/src/core/similarity"
	"manualrag/src/log"
)

var ErrInvalidLimit = errors.New("result limit must be positive")

// Config holds the thresholds and limits of both search paths.
type Config struct {
	// ConfidenceThreshold is the minimum top score for an index search to be
	// answered.
	ConfidenceThreshold float64
	// CandidateFloor is the score a page candidate must exceed to be kept.
	CandidateFloor float64
	// CandidateThreshold is the minimum top score for Answer to respond with
	// candidates.
	CandidateThreshold float64
	IndexTopK          int
	CandidateTopK      int
}

func DefaultConfig() Config {
	return Config{
		ConfidenceThreshold: 0.03,
		CandidateFloor:      0.01,
		CandidateThreshold:  0.05,
		IndexTopK:           3,
		CandidateTopK:       5,
	}
}

// Option configures a Retriever.
type Option func(*Retriever) error

// WithConfig replaces the default thresholds and limits.
func WithConfig(cfg Config) Option {
	return func(r *Retriever) error {
		if cfg.IndexTopK < 1 || cfg.CandidateTopK < 1 {
			return fmt.Errorf("%w: index=%d candidates=%d", ErrInvalidLimit, cfg.IndexTopK, cfg.CandidateTopK)
		}
		r.cfg = cfg
		return nil
	}
}

// WithExpander sets the query expander used by the page search.
// Default is substring expansion over similarity.DefaultSynonyms.
func WithExpander(e *similarity.Expander) Option {
	return func(r *Retriever) error {
		if e == nil {
			e = similarity.NewExpander(similarity.ExpandSubstring, similarity.DefaultSynonyms)
		}
		r.expander = e
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is the global logger named "retriever".
func WithLogger(logger logr.Logger) Option {
	return func(r *Retriever) error {
		r.logger = logger
		return nil
	}
}

func defaultLogger() logr.Logger {
	return log.WithName("retriever")
}
