// Package manualqa exposes manual retrieval to transports: it owns the
// retriever built at startup and the source of page metadata.
package manualqa

import (
	"context"
	"errors"

	"manualrag/src/core/retriever"
)

var (
	ErrInvalidQuery           = errors.New("invalid query")
	ErrRetrieverRequired      = errors.New("retriever is required")
	ErrMetadataSourceRequired = errors.New("metadata source is required")
)

// QueryService answers questions against the manual
type QueryService interface {
	// Answer searches the metadata pages for figures matching query
	Answer(ctx context.Context, query string) (retriever.CandidateResult, error)

	// Search searches the prebuilt index of figures and tables
	Search(ctx context.Context, query string) (retriever.Result, error)
}

// SystemService defines the interface for system operations
type SystemService interface {
	CheckHealth(ctx context.Context) (*HealthStatus, error)
}

// ComponentStatus represents the status of system components
type ComponentStatus string

const (
	StatusUp   ComponentStatus = "up"
	StatusDown ComponentStatus = "down"
)

// HealthStatus represents system health status
type HealthStatus struct {
	Status     string `json:"status"`
	Components struct {
		Index    ComponentStatus `json:"index"`
		Metadata ComponentStatus `json:"metadata"`
	} `json:"components"`
	IndexSize int `json:"index_size"`
}
