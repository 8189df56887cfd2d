package storage

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dimasfirmansyah/product-catalog/internal/config"
)

// Storage errors
var (
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileTooLarge    = errors.New("file too large")
	ErrEmptyFile       = errors.New("no file uploaded")
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// PictureStore writes uploaded profile pictures to local disk under random
// filenames and returns their public relative paths.
type PictureStore struct {
	baseDir  string
	maxBytes int64
	logger   *slog.Logger
}

// NewPictureStore creates a new picture store rooted at the configured upload dir
func NewPictureStore(cfg *config.Config, logger *slog.Logger) *PictureStore {
	return &PictureStore{
		baseDir:  cfg.UploadDir,
		maxBytes: cfg.MaxUploadSize,
		logger:   logger,
	}
}

// Save validates and persists an uploaded picture, returning its public path.
func (s *PictureStore) Save(file *multipart.FileHeader) (string, error) {
	if file == nil || file.Size == 0 {
		return "", ErrEmptyFile
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", ErrInvalidFileType
	}

	if file.Size > s.maxBytes {
		return "", ErrFileTooLarge
	}

	dir := filepath.Join(s.baseDir, "profile-pictures")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	// Random filename so uploads never collide or leak the original name
	filename := fmt.Sprintf("%s%s", uuid.NewString(), ext)
	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	path := "/uploads/profile-pictures/" + filename
	s.logger.Info("🖼️ [Storage] Profile picture saved", "path", path, "size", file.Size)
	return path, nil
}
