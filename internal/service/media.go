package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"scouting-planner-backend/internal/config"
	"scouting-planner-backend/internal/logger"

	"github.com/google/uuid"
)

// coverFilename is fixed: every cover upload overwrites the previous one
// and the public URL never changes.
const coverFilename = "Portada-600-x-400px.jpg"

// MediaStore writes uploaded files into the statically served photos
// directory and builds the public URLs embedded in API responses.
type MediaStore struct {
	baseURL   string
	uploadDir string
}

// NewMediaStore creates a media store from the application configuration
func NewMediaStore(cfg *config.Config) *MediaStore {
	return &MediaStore{
		baseURL:   strings.TrimRight(cfg.BackendURL, "/"),
		uploadDir: cfg.UploadDir,
	}
}

// SaveProfilePhoto stores a profile photo namespaced by the owning user's
// id and returns its public URL.
func (m *MediaStore) SaveProfilePhoto(userID uuid.UUID, file *multipart.FileHeader) (string, error) {
	filename := fmt.Sprintf("%s_%s", userID, filepath.Base(file.Filename))
	if err := m.save(file, filename); err != nil {
		return "", err
	}
	return m.publicURL(filename), nil
}

// SaveCover stores the site cover image under its fixed filename and
// returns its public URL.
func (m *MediaStore) SaveCover(file *multipart.FileHeader) (string, error) {
	if err := m.save(file, coverFilename); err != nil {
		return "", err
	}
	return m.publicURL(coverFilename), nil
}

func (m *MediaStore) save(file *multipart.FileHeader, filename string) error {
	logger.New().WithFields(map[string]interface{}{
		"filename": filename,
		"size":     file.Size,
	}).Info("Storing uploaded file")

	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(m.uploadDir, 0o755); err != nil {
		return fmt.Errorf("create upload dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(m.uploadDir, filename))
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func (m *MediaStore) publicURL(filename string) string {
	return m.baseURL + "/static/photos/" + filename
}
