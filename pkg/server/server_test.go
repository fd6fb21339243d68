package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/storagebrowser/storage/pkg/config"
	"github.com/storagebrowser/storage/pkg/pathref"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEcho_BrowsesConfiguredRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "music"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "song.mp3"), []byte("mp3"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden"), []byte("x"), 0644))

	cfg := config.NewForTest()
	cfg.RootDirectory = root
	cfg.ExcludePatterns = []string{".*"}

	e, err := NewEcho(cfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/browse/getFiles?directory="+pathref.Encode("/"), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := rec.Body.String()
	assert.Contains(t, body, `"name":"BACK"`)
	assert.Contains(t, body, `"name":"music"`)
	assert.Contains(t, body, `"name":"song.mp3","fileType":"audio"`)
	assert.NotContains(t, body, ".hidden")
	assert.Contains(t, body, `"dir":"/"`)
}

func TestNewEcho_NotFound(t *testing.T) {
	cfg := config.NewForTest()

	e, err := NewEcho(cfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"not_found"`)
}

func TestNew_InvalidPreviewTypes(t *testing.T) {
	cfg := config.NewForTest()
	cfg.PreviewTypes = []string{"hologram"}

	_, err := New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hologram")
}
