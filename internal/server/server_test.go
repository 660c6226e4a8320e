package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/backend/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSetupStaticFileServing(t *testing.T) {
	storagePath := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(storagePath, "resources"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(storagePath, "resources", "notes.pdf"), []byte("%PDF-1.4 content"), 0o644))

	cfg := &config.Config{}
	cfg.Server.StoragePath = storagePath

	router := gin.New()
	setupStaticFileServing(router, cfg, zerolog.Nop())

	t.Run("serves stored file", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/uploads/resources/notes.pdf", nil))
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "%PDF-1.4 content", recorder.Body.String())
	})

	t.Run("missing file is 404", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/uploads/resources/absent.pdf", nil))
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestSetupStaticFileServingCreatesDirectory(t *testing.T) {
	storagePath := filepath.Join(t.TempDir(), "uploads")

	cfg := &config.Config{}
	cfg.Server.StoragePath = storagePath

	setupStaticFileServing(gin.New(), cfg, zerolog.Nop())

	info, err := os.Stat(storagePath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
