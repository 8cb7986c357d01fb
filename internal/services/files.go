package services

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"studentportal-backend-go/internal/models"
	"studentportal-backend-go/internal/store"

	"github.com/google/uuid"
)

// contentTypes maps file extensions for downloads; anything else is
// served as a generic binary stream.
var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".txt":  "text/plain",
	".html": "text/html",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
}

var filePartPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ._()-]*$`)

// CourseFiles stores uploaded material bytes under
// {dataDir}/files/{userId}/{courseId}/{categoryId}/ with metadata kept
// in the sibling materials document.
type CourseFiles struct {
	Store     *store.Store
	Materials *store.MaterialsStore
}

// SaveUpload writes the file bytes and appends its metadata record.
// The stored name carries a millisecond prefix so repeated uploads of
// the same file never collide. When the metadata append fails the
// bytes are removed again rather than left orphaned.
func (f CourseFiles) SaveUpload(userID, courseID, categoryID, fileName, contentType string, body io.Reader) (*models.FileMeta, error) {
	if courseID == "" || categoryID == "" || fileName == "" {
		return nil, ErrBadRequest("Missing required fields")
	}
	dir, err := f.filesDir(userID, courseID, categoryID)
	if err != nil {
		return nil, err
	}
	baseName := filepath.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if !filePartPattern.MatchString(baseName) {
		return nil, ErrBadRequest("Invalid file name")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, WrapError(err, "create files dir")
	}
	storedName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), baseName)
	target := filepath.Join(dir, storedName)
	out, err := os.Create(target)
	if err != nil {
		return nil, WrapError(err, "create file")
	}
	size, err := io.Copy(out, body)
	_ = out.Close()
	if err != nil {
		_ = os.Remove(target)
		return nil, WrapError(err, "write file")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	meta := models.FileMeta{
		ID:   "file-" + uuid.NewString(),
		Name: baseName,
		Size: FormatFileSize(size),
		Type: contentType,
		Path: "/api/user/courses/files/download?courseId=" + courseID +
			"&categoryId=" + categoryID + "&fileName=" + storedName,
		UploadedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := f.Materials.AppendFile(userID, courseID, categoryID, meta); err != nil {
		_ = os.Remove(target)
		return nil, WrapError(err, "save file metadata")
	}
	return &meta, nil
}

// ResolveDownload validates the three-part key plus stored file name
// and returns the on-disk path, original-ish file name, and content
// type. The resolved path must stay inside the user's own files tree.
func (f CourseFiles) ResolveDownload(userID, courseID, categoryID, fileName string) (string, string, error) {
	if courseID == "" || categoryID == "" || fileName == "" {
		return "", "", ErrBadRequest("Missing required parameters")
	}
	dir, err := f.filesDir(userID, courseID, categoryID)
	if err != nil {
		return "", "", err
	}
	if !filePartPattern.MatchString(fileName) {
		return "", "", ErrBadRequest("Invalid file name")
	}
	path := filepath.Join(dir, fileName)
	base, err := filepath.Abs(filepath.Join(f.Store.Dir(), "files", userID))
	if err != nil {
		return "", "", WrapError(err, "resolve files dir")
	}
	abs, err := filepath.Abs(path)
	if err != nil || !strings.HasPrefix(abs, base+string(filepath.Separator)) {
		return "", "", ErrBadRequest("Invalid file path")
	}
	if _, err := os.Stat(abs); err != nil {
		return "", "", ErrNotFound("File not found")
	}
	return abs, fileName, nil
}

// ContentTypeFor returns the download content type for a file name.
func ContentTypeFor(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if contentType, ok := contentTypes[ext]; ok {
		return contentType
	}
	return "application/octet-stream"
}

func (f CourseFiles) filesDir(userID, courseID, categoryID string) (string, error) {
	for _, part := range []string{userID, courseID, categoryID} {
		if part == "" || !filePartPattern.MatchString(part) || strings.ContainsAny(part, "/\\") {
			return "", ErrBadRequest("Invalid file path")
		}
	}
	return filepath.Join(f.Store.Dir(), "files", userID, courseID, categoryID), nil
}

// FormatFileSize renders a byte count the way the dashboard shows it.
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	exp := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if exp >= len(units) {
		exp = len(units) - 1
	}
	value := float64(bytes) / math.Pow(1024, float64(exp))
	return fmt.Sprintf("%s %s", trimZeros(value), units[exp])
}

func trimZeros(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimSuffix(formatted, ".")
	return formatted
}
