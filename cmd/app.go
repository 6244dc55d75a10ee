package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"manualrag/src/core/manual"
	"manualrag/src/core/manualqa"
	"manualrag/src/core/retriever"
	"manualrag/src/core/similarity"
	"manualrag/src/log"
)

type services struct {
	retriever *retriever.Retriever
	query     manualqa.QueryService
	system    manualqa.SystemService
}

// buildServices builds the index once and wires the services that share it.
func buildServices(ctx context.Context) (*services, error) {
	fs, err := newFileStore()
	if err != nil {
		return nil, fmt.Errorf("failed to create file store: %w", err)
	}

	mode, err := similarity.ParseExpansionMode(viper.GetString("retrieval.expansion_mode"))
	if err != nil {
		return nil, err
	}

	manualPath := viper.GetString("manual.path")
	metadataPath := viper.GetString("metadata.path")
	index := manual.BuildIndex(ctx, fs, manualPath, metadataPath)
	log.Info("index built", "items", len(index), "manual", manualPath, "metadata", metadataPath)

	r, err := retriever.New(index,
		retriever.WithConfig(retrieverConfig()),
		retriever.WithExpander(similarity.NewExpander(mode, similarity.DefaultSynonyms)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create retriever: %w", err)
	}

	var source manualqa.MetadataSource = manualqa.NewFileMetadata(fs, metadataPath)
	if !viper.GetBool("metadata.reload_per_request") {
		source = manualqa.NewStaticMetadata(manual.ReadMetadata(ctx, fs, metadataPath))
	}

	query, err := manualqa.NewQueryService(r, source)
	if err != nil {
		return nil, fmt.Errorf("failed to create query service: %w", err)
	}

	return &services{
		retriever: r,
		query:     query,
		system:    manualqa.NewSystemService(r, source),
	}, nil
}
