package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"studentportal-backend-go/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCourseFiles(t *testing.T) CourseFiles {
	t.Helper()
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	return CourseFiles{
		Store:     s,
		Materials: store.NewMaterialsStore(s),
	}
}

func TestSaveUploadWritesBytesAndMetadata(t *testing.T) {
	files := newCourseFiles(t)
	body := strings.NewReader("lecture notes content")

	meta, err := files.SaveUpload("u1", "physics-1", "lectures", "notes.pdf", "application/pdf", body)
	require.NoError(t, err)
	assert.Equal(t, "notes.pdf", meta.Name)
	assert.Equal(t, "application/pdf", meta.Type)
	assert.Contains(t, meta.Path, "courseId=physics-1")
	assert.True(t, strings.HasPrefix(meta.ID, "file-"))

	categories, err := files.Materials.Load("u1", "physics-1")
	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Len(t, categories[0].Files, 1)
	assert.Equal(t, meta.ID, categories[0].Files[0].ID)

	dir := filepath.Join(files.Store.Dir(), "files", "u1", "physics-1", "lectures")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), "-notes.pdf"))
}

func TestSaveUploadRequiresAllKeys(t *testing.T) {
	files := newCourseFiles(t)
	_, err := files.SaveUpload("u1", "", "lectures", "notes.pdf", "", strings.NewReader("x"))
	require.Error(t, err)
	_, err = files.SaveUpload("u1", "physics-1", "", "notes.pdf", "", strings.NewReader("x"))
	require.Error(t, err)
	_, err = files.SaveUpload("u1", "physics-1", "lectures", "", "", strings.NewReader("x"))
	require.Error(t, err)
}

func TestSaveUploadRejectsTraversalKeys(t *testing.T) {
	files := newCourseFiles(t)
	_, err := files.SaveUpload("u1", "../other", "lectures", "notes.pdf", "", strings.NewReader("x"))
	require.Error(t, err)
	_, err = files.SaveUpload("u1", "physics-1", "..", "notes.pdf", "", strings.NewReader("x"))
	require.Error(t, err)
}

func TestResolveDownload(t *testing.T) {
	files := newCourseFiles(t)
	_, err := files.SaveUpload("u1", "physics-1", "lectures", "notes.pdf", "application/pdf", strings.NewReader("content"))
	require.NoError(t, err)

	dir := filepath.Join(files.Store.Dir(), "files", "u1", "physics-1", "lectures")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	storedName := entries[0].Name()

	path, name, err := files.ResolveDownload("u1", "physics-1", "lectures", storedName)
	require.NoError(t, err)
	assert.Equal(t, storedName, name)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestResolveDownloadRejectsTraversal(t *testing.T) {
	files := newCourseFiles(t)

	// plant a file outside the user's namespace
	secret := filepath.Join(files.Store.Dir(), "users.json")
	require.NoError(t, os.WriteFile(secret, []byte("[]"), 0o644))

	for _, attempt := range [][3]string{
		{"..", "..", "users.json"},
		{"physics-1", "..", "users.json"},
		{"physics-1", "lectures", "../../../users.json"},
		{"physics-1", "lectures", "..\\users.json"},
	} {
		_, _, err := files.ResolveDownload("u1", attempt[0], attempt[1], attempt[2])
		require.Error(t, err, "attempt %v", attempt)
		serr, ok := err.(ServiceError)
		require.True(t, ok)
		assert.Equal(t, 400, serr.Status)
	}
}

func TestResolveDownloadMissingFile(t *testing.T) {
	files := newCourseFiles(t)
	_, _, err := files.ResolveDownload("u1", "physics-1", "lectures", "ghost.pdf")
	require.Error(t, err)
	serr, ok := err.(ServiceError)
	require.True(t, ok)
	assert.Equal(t, 404, serr.Status)
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "application/pdf", ContentTypeFor("notes.pdf"))
	assert.Equal(t, "image/jpeg", ContentTypeFor("photo.JPG"))
	assert.Equal(t, "application/octet-stream", ContentTypeFor("archive.zip"))
	assert.Equal(t, "application/octet-stream", ContentTypeFor("noext"))
}

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "0 Bytes", FormatFileSize(0))
	assert.Equal(t, "512 Bytes", FormatFileSize(512))
	assert.Equal(t, "1 KB", FormatFileSize(1024))
	assert.Equal(t, "1.5 KB", FormatFileSize(1536))
	assert.Equal(t, "1 MB", FormatFileSize(1048576))
}
