package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("docs", "partner_profiles"), cfg.Corpus.Path)
		assert.Equal(t, 5, cfg.Retriever.TopK)
		require.Len(t, cfg.Retriever.Boosts, 2)
		assert.Equal(t, "growth", cfg.Retriever.Boosts[0].Keyword)
		assert.Equal(t, 2, cfg.Retriever.Boosts[0].Weight)
		assert.Equal(t, "manufacturing", cfg.Retriever.Boosts[1].Keyword)
		assert.Equal(t, 25, cfg.Seed.Partners)
	})

	t.Run("partial file gets defaults applied", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("corpus:\n  path: /tmp/profiles\n"), 0o644))
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/profiles", cfg.Corpus.Path)
		assert.Equal(t, 5, cfg.Retriever.TopK)
		assert.NotEmpty(t, cfg.Data.RawPath)
	})

	t.Run("explicit values survive", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "retriever:\n  top_k: 3\n  boosts:\n    - keyword: healthcare\n      weight: 4\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Retriever.TopK)
		require.Len(t, cfg.Retriever.Boosts, 1)
		assert.Equal(t, "healthcare", cfg.Retriever.Boosts[0].Keyword)
		assert.Equal(t, 4, cfg.Retriever.Boosts[0].Weight)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("corpus:\n  path: [unclosed\n"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := defaultConfig()
	cfg.Corpus.Path = "custom/docs"
	cfg.Retriever.TopK = 7

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom/docs", loaded.Corpus.Path)
	assert.Equal(t, 7, loaded.Retriever.TopK)
	assert.Equal(t, cfg.Retriever.Boosts, loaded.Retriever.Boosts)
}
