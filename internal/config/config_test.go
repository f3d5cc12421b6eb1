package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")
	t.Setenv("IMPORT_CONCURRENCY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, int64(32<<20), cfg.Imports.MaxUploadBytes)
	assert.Equal(t, int64(4), cfg.Imports.Concurrency)
	assert.Empty(t, cfg.Database.URL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DATABASE_URL", "postgres://localhost/imports")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("IMPORT_CONCURRENCY", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "postgres://localhost/imports", cfg.Database.URL)
	assert.Equal(t, int64(1024), cfg.Imports.MaxUploadBytes)
	assert.Equal(t, int64(2), cfg.Imports.Concurrency)
}

func TestLoadRejectsNonPositiveLimits(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "-5")

	_, err := Load()
	require.Error(t, err)
}
