package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"eshop/internal/apperrors"
)

// fileTypes maps the allowed upload content types to the stored extension.
// Anything outside this list is rejected before any bytes are written.
var fileTypes = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpeg",
	"image/jpg":  "jpg",
}

// DiskStore persists uploaded images under a fixed content root.
type DiskStore struct {
	root string
}

// NewDiskStore creates the content root if needed and returns a store over it.
func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", root, err)
	}
	return &DiskStore{root: root}, nil
}

// Root returns the content root the store writes under.
func (s *DiskStore) Root() string {
	return s.root
}

// Save validates the file's declared content type against the allow-list,
// computes a destination name from the original filename (spaces collapsed
// to hyphens) plus a millisecond-resolution timestamp, and writes the bytes
// under the content root. It returns the generated filename.
//
// The embedded timestamp keeps concurrent uploads with identical original
// names from overwriting each other.
func (s *DiskStore) Save(file *multipart.FileHeader) (string, error) {
	ext, ok := fileTypes[file.Header.Get("Content-Type")]
	if !ok {
		return "", apperrors.NewValidation("invalid image type")
	}

	base := strings.ReplaceAll(file.Filename, " ", "-")
	name := fmt.Sprintf("%s-%d.%s", base, time.Now().UnixMilli(), ext)

	src, err := file.Open()
	if err != nil {
		return "", apperrors.NewInternal("failed to open uploaded file", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", apperrors.NewInternal("failed to create upload destination", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", apperrors.NewInternal("failed to write uploaded file", err)
	}
	return name, nil
}
