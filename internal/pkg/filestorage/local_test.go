package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeFileHeader builds a real multipart.FileHeader from an in-memory body.
func makeFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestSaveFile(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	header := makeFileHeader(t, "notes.pdf", "%PDF-1.4 fake content")

	relPath, err := storage.SaveFile(header, "resources")
	require.NoError(t, err)
	assert.Equal(t, "resources", filepath.Dir(relPath))
	assert.Equal(t, ".pdf", filepath.Ext(relPath))

	data, err := os.ReadFile(storage.FullPath(relPath))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake content", string(data))
}

func TestSaveFileNilHeader(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	relPath, err := storage.SaveFile(nil, "resources")
	require.NoError(t, err)
	assert.Empty(t, relPath)
}

func TestDeleteFile(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	header := makeFileHeader(t, "notes.pdf", "content")
	relPath, err := storage.SaveFile(header, "resources")
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(relPath))
	_, statErr := os.Stat(storage.FullPath(relPath))
	assert.True(t, os.IsNotExist(statErr))

	// deleting again is not an error
	assert.NoError(t, storage.DeleteFile(relPath))
	assert.NoError(t, storage.DeleteFile(""))
}

func TestFullPathTraversal(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalStorage(base)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "resources", "a.pdf"), storage.FullPath("resources/a.pdf"))
	assert.Empty(t, storage.FullPath(""))
	assert.Empty(t, storage.FullPath("../escape.pdf"))
	assert.Empty(t, storage.FullPath("/etc/passwd"))
	assert.Empty(t, storage.FullPath("resources/../../escape.pdf"))
}
