package manualqa

import (
	"context"
	"fmt"
	"unicode/utf8"

	"manualrag/src/core/retriever"
	"manualrag/src/log"
)

type queryService struct {
	retriever *retriever.Retriever
	metadata  MetadataSource
}

// NewQueryService wires a retriever built over the startup index with the
// metadata source used for page search.
func NewQueryService(r *retriever.Retriever, metadata MetadataSource) (QueryService, error) {
	if r == nil {
		return nil, ErrRetrieverRequired
	}
	if metadata == nil {
		return nil, ErrMetadataSourceRequired
	}
	return &queryService{retriever: r, metadata: metadata}, nil
}

func validateQuery(query string) error {
	if !utf8.ValidString(query) {
		return fmt.Errorf("%w: query is not valid UTF-8", ErrInvalidQuery)
	}
	return nil
}

func (s *queryService) Answer(ctx context.Context, query string) (retriever.CandidateResult, error) {
	if err := validateQuery(query); err != nil {
		return retriever.CandidateResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return retriever.CandidateResult{}, err
	}

	md := s.metadata.Load(ctx)
	result := s.retriever.Answer(query, md)
	log.Debug("answered query", "query", query, "status", result.Status,
		"reason", result.Reason, "candidates", len(result.Candidates))
	return result, nil
}

func (s *queryService) Search(ctx context.Context, query string) (retriever.Result, error) {
	if err := validateQuery(query); err != nil {
		return retriever.Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return retriever.Result{}, err
	}

	result := s.retriever.Search(query)
	log.Debug("searched index", "query", query, "status", result.Status,
		"reason", result.Reason, "items", len(result.Items))
	return result, nil
}
