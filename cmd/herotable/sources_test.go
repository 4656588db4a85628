package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/herotable/internal/infrastructure/config"
)

func TestAddSource(t *testing.T) {
	tmpDir := t.TempDir()

	key, err := addSource(tmpDir, "Local Copy", config.SourceEntry{Path: "heroes.json", Description: "offline"}, false)
	require.NoError(t, err)
	assert.Equal(t, "local_copy", key)

	sources, err := config.LoadSources(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "heroes.json", sources.Sources["local_copy"].Path)
	assert.Equal(t, "offline", sources.Sources["local_copy"].Description)
}

func TestAddSource_Existing(t *testing.T) {
	tmpDir := t.TempDir()
	entry := config.SourceEntry{URL: "https://example.test/all.json"}

	_, err := addSource(tmpDir, "mirror", entry, false)
	require.NoError(t, err)

	_, err = addSource(tmpDir, "mirror", config.SourceEntry{Path: "other.csv"}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = addSource(tmpDir, "mirror", config.SourceEntry{Path: "other.csv"}, true)
	require.NoError(t, err)

	sources, err := config.LoadSources(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "other.csv", sources.Sources["mirror"].Path)
}

func TestAddSource_Invalid(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := addSource(tmpDir, "!!!", config.SourceEntry{Path: "heroes.json"}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid source name")

	_, err = addSource(tmpDir, "empty", config.SourceEntry{}, false)
	require.Error(t, err)
}

func TestAddSource_Format(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := addSource(tmpDir, "export", config.SourceEntry{Path: "heroes.export", Format: "CSV"}, false)
	require.NoError(t, err)

	sources, err := config.LoadSources(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "csv", sources.Sources["export"].Format)

	var buf bytes.Buffer
	require.NoError(t, writeSources(&buf, sources))
	assert.Contains(t, buf.String(), "heroes.export (csv)")

	_, err = addSource(tmpDir, "bad", config.SourceEntry{Path: "heroes.export", Format: "xml"}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")

	_, err = addSource(tmpDir, "remote", config.SourceEntry{URL: "https://example.test/all.json", Format: "json"}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only to a path")
}

func TestRemoveSource(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := addSource(tmpDir, "mirror", config.SourceEntry{URL: "https://example.test/all.json"}, false)
	require.NoError(t, err)

	require.NoError(t, removeSource(tmpDir, "mirror"))

	sources, err := config.LoadSources(tmpDir)
	require.NoError(t, err)
	assert.Empty(t, sources.Sources)

	err = removeSource(tmpDir, "mirror")
	require.ErrorIs(t, err, config.ErrSourceNotFound)
}

func TestWriteSources(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSources(&buf, &config.SourcesConfig{}))
	assert.Contains(t, buf.String(), "No sources configured.")

	buf.Reset()
	sources := &config.SourcesConfig{Sources: map[string]config.SourceEntry{
		"zeta":  {Path: "z.csv"},
		"alpha": {URL: "https://example.test/a.json", Description: "first"},
	}}
	require.NoError(t, writeSources(&buf, sources))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "https://example.test/a.json")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("alpha")), bytes.Index(buf.Bytes(), []byte("zeta")))
}
