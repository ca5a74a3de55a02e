package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// UploadService writes uploaded image files into the content directory that
// is served under /images.
type UploadService struct {
	dir string
}

// NewUploadService creates a new UploadService, creating the content
// directory if it does not exist yet.
func NewUploadService(dir string) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &UploadService{dir: dir}, nil
}

// Store writes the uploaded stream to the content directory under a
// collision-resistant generated name and returns the public URL path for the
// stored file. Files are write-once; concurrent uploads get distinct names
// from the timestamp plus UUID suffix.
func (s *UploadService) Store(originalName string, src io.Reader) (string, error) {
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.New().String(), filepath.Ext(originalName))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create image file %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write image file %s: %w", name, err)
	}

	return "/images/" + name, nil
}
