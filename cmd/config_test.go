package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manualrag/src/core/retriever"
	"manualrag/src/fsutil"
)

func TestRetrieverConfigDefaults(t *testing.T) {
	assert.Equal(t, retriever.DefaultConfig(), retrieverConfig())
	assert.Equal(t, "1100", viper.GetString("server.port"))
	assert.True(t, viper.GetBool("metadata.reload_per_request"))
	assert.Equal(t, "substring", viper.GetString("retrieval.expansion_mode"))
}

func TestNewFileStore(t *testing.T) {
	t.Cleanup(func() { viper.Set("storage.backend", "local") })

	viper.Set("storage.backend", "local")
	fs, err := newFileStore()
	require.NoError(t, err)
	assert.IsType(t, &fsutil.LocalFileStore{}, fs)

	viper.Set("storage.backend", "minio")
	fs, err = newFileStore()
	require.NoError(t, err)
	assert.IsType(t, &fsutil.MinioFileStore{}, fs)

	viper.Set("storage.backend", "ftp")
	_, err = newFileStore()
	assert.Error(t, err)
}
