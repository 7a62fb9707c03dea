package filestorage

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/malek/tadreeb/internal/pkg/logger"
)

// Subdirectories under the upload root. Public pointers follow the
// pattern /uploads/<subdir>/<generated-name>.
const (
	SubdirImages    = "images"
	SubdirDocuments = "documents"
)

// Filename prefixes per attachment kind
const (
	PrefixImage    = "image"
	PrefixDocument = "doc"
)

// LocalStorage saves uploaded files under a single root directory on the
// local filesystem and maps public /uploads pointers back to disk paths.
type LocalStorage struct {
	root string // absolute path of the upload root
}

// NewLocalStorage creates the upload root and its fixed subdirectories.
func NewLocalStorage(root string) (*LocalStorage, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload root %s: %w", root, err)
	}

	for _, dir := range []string{abs, filepath.Join(abs, SubdirImages), filepath.Join(abs, SubdirDocuments)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
		}
	}
	logger.Info().Str("path", abs).Msg("Upload root ensured")

	return &LocalStorage{root: abs}, nil
}

// Root returns the absolute upload root path.
func (ls *LocalStorage) Root() string {
	return ls.root
}

// GenerateFilename builds a unique on-disk name of the form
// <prefix>-<unix-ms>-<random>.<original-extension>.
func GenerateFilename(prefix, originalName string) string {
	ext := filepath.Ext(originalName)
	return fmt.Sprintf("%s-%d-%d%s", prefix, time.Now().UnixMilli(), rand.Int63n(1_000_000_000), ext)
}

// Save writes an uploaded file into the given subdirectory under a
// generated name and returns the public pointer for it.
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader, subdir, prefix string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	name := GenerateFilename(prefix, fileHeader.Filename)
	dstPath := filepath.Join(ls.root, subdir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	pointer := "/uploads/" + subdir + "/" + name
	logger.Info().Str("filename", fileHeader.Filename).Str("pointer", pointer).Msg("File saved")
	return pointer, nil
}

// Resolve converts a stored pointer into an absolute disk path. The second
// return value is false when the resolved path escapes the upload root;
// such pointers must never be acted on.
func (ls *LocalStorage) Resolve(pointer string) (string, bool) {
	if pointer == "" {
		return "", false
	}

	rel := strings.TrimPrefix(pointer, "/uploads/")
	rel = strings.TrimPrefix(rel, "uploads/")

	resolved, err := filepath.Abs(filepath.Join(ls.root, filepath.FromSlash(rel)))
	if err != nil {
		return "", false
	}

	if !strings.HasPrefix(resolved, ls.root+string(filepath.Separator)) {
		return resolved, false
	}
	return resolved, true
}

// Delete removes the file a pointer refers to. A missing file is not an
// error. A pointer that resolves outside the upload root is logged and
// skipped, never deleted.
func (ls *LocalStorage) Delete(pointer string) error {
	if pointer == "" {
		return nil
	}

	path, ok := ls.Resolve(pointer)
	if !ok {
		logger.Warn().Str("pointer", pointer).Str("resolved", path).Msg("Skipping deletion outside upload root")
		return nil
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", path).Msg("File to delete does not exist")
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", path).Msg("File deleted")
	return nil
}

// DeleteAll attempts to delete every pointer independently. Individual
// failures are logged and swallowed; the overall operation never fails.
func (ls *LocalStorage) DeleteAll(pointers []string) {
	for _, pointer := range pointers {
		if err := ls.Delete(pointer); err != nil {
			logger.Error().Err(err).Str("pointer", pointer).Msg("Failed to delete file")
		}
	}
}
