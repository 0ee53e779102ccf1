package service_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"scouting-planner-backend/internal/config"
	"scouting-planner-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeFileHeader builds a real multipart.FileHeader the way gin would hand
// it to a handler.
func makeFileHeader(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("PUT", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	_, header, err := req.FormFile(field)
	require.NoError(t, err)
	return header
}

func newTestMediaStore(t *testing.T) (*service.MediaStore, string) {
	t.Helper()
	dir := t.TempDir()
	store := service.NewMediaStore(&config.Config{
		BackendURL: "http://localhost:8000/",
		UploadDir:  dir,
	})
	return store, dir
}

func TestMediaStoreSaveProfilePhoto(t *testing.T) {
	store, dir := newTestMediaStore(t)
	userID := uuid.New()
	header := makeFileHeader(t, "foto", "perfil.jpg", "jpeg-bytes")

	url, err := store.SaveProfilePhoto(userID, header)

	require.NoError(t, err)
	expectedName := fmt.Sprintf("%s_perfil.jpg", userID)
	assert.Equal(t, "http://localhost:8000/static/photos/"+expectedName, url)

	data, err := os.ReadFile(filepath.Join(dir, expectedName))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
}

func TestMediaStoreSaveProfilePhotoStripsPath(t *testing.T) {
	store, dir := newTestMediaStore(t)
	userID := uuid.New()
	header := makeFileHeader(t, "foto", "../../escape.jpg", "jpeg-bytes")

	url, err := store.SaveProfilePhoto(userID, header)

	require.NoError(t, err)
	expectedName := fmt.Sprintf("%s_escape.jpg", userID)
	assert.Contains(t, url, expectedName)

	_, err = os.Stat(filepath.Join(dir, expectedName))
	assert.NoError(t, err)
}

func TestMediaStoreSaveCoverFixedName(t *testing.T) {
	store, dir := newTestMediaStore(t)

	first := makeFileHeader(t, "portada", "playa.jpg", "first-cover")
	url1, err := store.SaveCover(first)
	require.NoError(t, err)

	second := makeFileHeader(t, "portada", "montana.png", "second-cover")
	url2, err := store.SaveCover(second)
	require.NoError(t, err)

	// A new upload replaces the file but keeps the URL stable.
	assert.Equal(t, url1, url2)
	assert.Equal(t, "http://localhost:8000/static/photos/Portada-600-x-400px.jpg", url2)

	data, err := os.ReadFile(filepath.Join(dir, "Portada-600-x-400px.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "second-cover", string(data))
}

func TestMediaStoreCreatesUploadDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "photos")
	store := service.NewMediaStore(&config.Config{
		BackendURL: "http://localhost:8000",
		UploadDir:  dir,
	})

	header := makeFileHeader(t, "foto", "perfil.jpg", "jpeg-bytes")
	_, err := store.SaveProfilePhoto(uuid.New(), header)

	require.NoError(t, err)
	_, err = os.Stat(dir)
	assert.NoError(t, err)
}
