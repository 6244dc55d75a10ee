package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"manualrag/src/core/retriever"
	"manualrag/src/core/similarity"
	"manualrag/src/fsutil"
)

func settingDefaultConfig() {
	// Enable automatic environment variable binding
	viper.AutomaticEnv()

	// Server
	viper.BindEnv("server.port", "SERVER_PORT", "PORT")
	viper.BindEnv("server.shutdown_timeout", "SERVER_SHUTDOWN_TIMEOUT")
	viper.SetDefault("server.port", "1100")
	viper.SetDefault("server.shutdown_timeout", "5s")

	// Source files
	viper.BindEnv("manual.path", "MANUAL_PATH")
	viper.BindEnv("metadata.path", "METADATA_PATH")
	viper.BindEnv("metadata.reload_per_request", "METADATA_RELOAD_PER_REQUEST")
	viper.SetDefault("manual.path", "./data/manual.mmd")
	viper.SetDefault("metadata.path", "./data/mmd_lines_data.json")
	viper.SetDefault("metadata.reload_per_request", true)

	// Retrieval thresholds and limits
	defaults := retriever.DefaultConfig()
	viper.BindEnv("retrieval.confidence_threshold", "CONFIDENCE_THRESHOLD")
	viper.BindEnv("retrieval.candidate_floor", "CANDIDATE_FLOOR")
	viper.BindEnv("retrieval.candidate_threshold", "CANDIDATE_THRESHOLD")
	viper.BindEnv("retrieval.index_top_k", "INDEX_TOP_K")
	viper.BindEnv("retrieval.candidate_top_k", "CANDIDATE_TOP_K")
	viper.BindEnv("retrieval.expansion_mode", "EXPANSION_MODE")
	viper.SetDefault("retrieval.confidence_threshold", defaults.ConfidenceThreshold)
	viper.SetDefault("retrieval.candidate_floor", defaults.CandidateFloor)
	viper.SetDefault("retrieval.candidate_threshold", defaults.CandidateThreshold)
	viper.SetDefault("retrieval.index_top_k", defaults.IndexTopK)
	viper.SetDefault("retrieval.candidate_top_k", defaults.CandidateTopK)
	viper.SetDefault("retrieval.expansion_mode", string(similarity.ExpandSubstring))

	// Storage backend for the source files: "local" or "minio"
	viper.BindEnv("storage.backend", "STORAGE_BACKEND")
	viper.BindEnv("storage.root", "STORAGE_ROOT")
	viper.SetDefault("storage.backend", "local")
	viper.SetDefault("storage.root", "")

	// MinIO
	viper.BindEnv("minio.endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("minio.access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("minio.secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("minio.use_ssl", "MINIO_USE_SSL")
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)

	// Logging
	viper.BindEnv("log.level", "LOG_LEVEL")
	viper.BindEnv("log.development", "LOG_DEVELOPMENT")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.development", false)
}

func retrieverConfig() retriever.Config {
	return retriever.Config{
		ConfidenceThreshold: viper.GetFloat64("retrieval.confidence_threshold"),
		CandidateFloor:      viper.GetFloat64("retrieval.candidate_floor"),
		CandidateThreshold:  viper.GetFloat64("retrieval.candidate_threshold"),
		IndexTopK:           viper.GetInt("retrieval.index_top_k"),
		CandidateTopK:       viper.GetInt("retrieval.candidate_top_k"),
	}
}

func newFileStore() (fsutil.FileStore, error) {
	switch backend := viper.GetString("storage.backend"); backend {
	case "local", "":
		return fsutil.NewLocalFileStore(viper.GetString("storage.root")), nil
	case "minio":
		store, err := fsutil.NewMinioFileStore(fsutil.MinioConfig{
			Endpoint:  viper.GetString("minio.endpoint"),
			AccessKey: viper.GetString("minio.access_key"),
			SecretKey: viper.GetString("minio.secret_key"),
			UseSSL:    viper.GetBool("minio.use_ssl"),
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
