package storage

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeFileHeader builds a real multipart.FileHeader by round-tripping a
// multipart body through the stdlib parser.
func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(map[string][]string)
	h["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
	h["Content-Type"] = []string{contentType}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["file"][0]
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(t.TempDir(), 2<<20, 10<<20)
}

func TestStore_RoundTrip(t *testing.T) {
	m := newTestManager(t)
	content := []byte("fake video bytes")

	name, err := m.Store(KindVideo, makeFileHeader(t, "clip.mp4", "video/mp4", content))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(name, ".mp4"))
	assert.NotContains(t, name, "clip")

	path, err := m.Resolve(name)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestStore_NoExtension(t *testing.T) {
	m := newTestManager(t)

	name, err := m.Store(KindVideo, makeFileHeader(t, "noext", "video/mp4", []byte("data")))
	require.NoError(t, err)
	assert.NotContains(t, name, ".")
}

func TestStore_EmptyFile(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Store(KindVideo, makeFileHeader(t, "clip.mp4", "video/mp4", nil))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestStore_RejectsWrongType(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Store(KindVideo, makeFileHeader(t, "pic.png", "image/png", []byte("data")))
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = m.Store(KindImage, makeFileHeader(t, "clip.mp4", "video/mp4", []byte("data")))
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = m.Store(KindImage, makeFileHeader(t, "doc.pdf", "application/pdf", []byte("data")))
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestStore_RejectsOversize(t *testing.T) {
	m := NewManager(t.TempDir(), 16, 32)

	_, err := m.Store(KindImage, makeFileHeader(t, "pic.png", "image/png", bytes.Repeat([]byte("x"), 17)))
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = m.Store(KindVideo, makeFileHeader(t, "clip.mp4", "video/mp4", bytes.Repeat([]byte("x"), 33)))
	assert.ErrorIs(t, err, ErrTooLarge)

	// At the ceiling exactly is still fine.
	_, err = m.Store(KindVideo, makeFileHeader(t, "clip.mp4", "video/mp4", bytes.Repeat([]byte("x"), 32)))
	assert.NoError(t, err)
}

func TestStore_CreatesRootDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "uploads")
	m := NewManager(root, 2<<20, 10<<20)

	_, err := m.Store(KindImage, makeFileHeader(t, "pic.png", "image/png", []byte("data")))
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestResolve_MissingFile(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Resolve("does-not-exist.mp4")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_RejectsEscapes(t *testing.T) {
	root := t.TempDir()
	m := NewManager(root, 2<<20, 10<<20)

	// A real file outside the root must stay unreachable.
	outside := filepath.Join(filepath.Dir(root), "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0644))

	for _, name := range []string{
		"../secret.txt",
		"..",
		".",
		"",
		"sub/../../secret.txt",
		"/etc/passwd",
	} {
		_, err := m.Resolve(name)
		assert.ErrorIs(t, err, ErrNotFound, "name %q", name)
	}
}

func TestDelete_Idempotent(t *testing.T) {
	m := newTestManager(t)

	name, err := m.Store(KindImage, makeFileHeader(t, "pic.png", "image/png", []byte("data")))
	require.NoError(t, err)

	require.NoError(t, m.Delete(name))

	_, err = m.Resolve(name)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again, or deleting something never stored, succeeds.
	assert.NoError(t, m.Delete(name))
	assert.NoError(t, m.Delete("never-existed.png"))
	assert.NoError(t, m.Delete(""))
}

func TestDetectContentType(t *testing.T) {
	dir := t.TempDir()

	pngPath := filepath.Join(dir, "pic.png")
	pngHeader := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	require.NoError(t, os.WriteFile(pngPath, pngHeader, 0644))
	assert.Equal(t, "image/png", DetectContentType(pngPath))

	assert.Equal(t, "application/octet-stream", DetectContentType(filepath.Join(dir, "missing")))
}

func TestStore_LargeCopy(t *testing.T) {
	m := newTestManager(t)
	content := bytes.Repeat([]byte("abcd"), 64<<10)

	name, err := m.Store(KindVideo, makeFileHeader(t, "big.mp4", "video/mp4", content))
	require.NoError(t, err)

	path, err := m.Resolve(name)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}
