// Package storage persists uploaded media on local disk. Stored names are
// generated, never user-supplied, so records can safely reference them.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

type Kind string

const (
	KindVideo Kind = "video"
	KindImage Kind = "image"
)

var (
	ErrEmptyFile   = errors.New("empty file")
	ErrInvalidType = errors.New("unsupported content type")
	ErrTooLarge    = errors.New("file too large")
	ErrNotFound    = errors.New("file not found")
	ErrNotReadable = errors.New("file not readable")
)

// allowedImageTypes is the fixed image allow-list. Video accepts any
// video/* declared type.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type Manager struct {
	root     string
	maxImage int64
	maxVideo int64
}

func NewManager(root string, maxImageBytes, maxVideoBytes int64) *Manager {
	return &Manager{
		root:     root,
		maxImage: maxImageBytes,
		maxVideo: maxVideoBytes,
	}
}

// Store validates the upload against the kind's content class and size
// ceiling, copies its bytes under the storage root and returns the generated
// filename. Callers persist the returned name only after Store succeeds.
func (m *Manager) Store(kind Kind, fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Size == 0 {
		return "", ErrEmptyFile
	}

	ct := fh.Header.Get("Content-Type")
	switch kind {
	case KindVideo:
		if !strings.HasPrefix(ct, "video/") {
			return "", ErrInvalidType
		}
		if fh.Size > m.maxVideo {
			return "", ErrTooLarge
		}
	case KindImage:
		if !allowedImageTypes[ct] {
			return "", ErrInvalidType
		}
		if fh.Size > m.maxImage {
			return "", ErrTooLarge
		}
	default:
		return "", fmt.Errorf("unknown media kind %q", kind)
	}

	if err := os.MkdirAll(m.root, 0755); err != nil {
		return "", fmt.Errorf("failed to create storage directory: %w", err)
	}

	// Stored name decouples from the user-supplied one; only the extension
	// survives as a content hint.
	filename := uuid.NewString() + filepath.Ext(fh.Filename)
	absPath := filepath.Join(m.root, filename)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return filename, nil
}

// Resolve maps a stored filename to its on-disk path, confined to the
// storage root. Names escaping the root resolve to ErrNotFound.
func (m *Manager) Resolve(filename string) (string, error) {
	absPath, err := m.safePath(filename)
	if err != nil {
		return "", err
	}

	f, err := os.Open(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}
		if errors.Is(err, os.ErrPermission) {
			return "", ErrNotReadable
		}
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	f.Close()

	return absPath, nil
}

// Delete removes a stored file. A missing file is not an error.
func (m *Manager) Delete(filename string) error {
	if filename == "" {
		return nil
	}

	absPath, err := m.safePath(filename)
	if err != nil {
		return nil
	}

	if err := os.Remove(absPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// safePath confines filename to the storage root. Stored names are flat, so
// anything that would resolve outside the root is treated as absent.
func (m *Manager) safePath(filename string) (string, error) {
	if filename == "" || filename == "." || filename != filepath.Base(filename) || strings.Contains(filename, "..") {
		return "", ErrNotFound
	}

	return filepath.Join(m.root, filename), nil
}

// DetectContentType sniffs the stored file's content type for download
// responses, falling back to a generic binary type.
func DetectContentType(path string) string {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "application/octet-stream"
	}
	return mt.String()
}
