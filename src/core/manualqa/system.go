package manualqa

import (
	"context"

	"manualrag/src/core/retriever"
)

type systemService struct {
	retriever *retriever.Retriever
	metadata  MetadataSource
}

func NewSystemService(r *retriever.Retriever, metadata MetadataSource) SystemService {
	return &systemService{
		retriever: r,
		metadata:  metadata,
	}
}

func (s *systemService) CheckHealth(ctx context.Context) (*HealthStatus, error) {
	status := &HealthStatus{Status: "healthy"}
	status.Components.Index = StatusDown
	status.Components.Metadata = StatusDown

	// An empty index or missing metadata still serves queries, but every
	// answer from that path is insufficient.
	if s.retriever != nil {
		status.IndexSize = s.retriever.IndexSize()
		if status.IndexSize > 0 {
			status.Components.Index = StatusUp
		}
	}

	if s.metadata != nil && s.metadata.Check(ctx) == nil {
		status.Components.Metadata = StatusUp
	}

	if status.Components.Index == StatusDown ||
		status.Components.Metadata == StatusDown {
		status.Status = "degraded"
	}

	return status, nil
}
