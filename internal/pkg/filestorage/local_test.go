package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	ls, err := NewLocalStorage(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	return ls
}

// makeFileHeader builds a real multipart file header carrying content.
func makeFileHeader(t *testing.T, fieldName, fileName, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	files := req.MultipartForm.File[fieldName]
	require.Len(t, files, 1)
	return files[0]
}

func TestNewLocalStorageCreatesSubdirectories(t *testing.T) {
	ls := newTestStorage(t)

	for _, subdir := range []string{SubdirImages, SubdirDocuments} {
		info, err := os.Stat(filepath.Join(ls.Root(), subdir))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename(PrefixImage, "photo.PNG")

	assert.Regexp(t, regexp.MustCompile(`^image-\d+-\d+\.PNG$`), name)

	// Names must differ across calls for the same input
	assert.NotEqual(t, name, GenerateFilename(PrefixImage, "photo.PNG"))
}

func TestGenerateFilenameWithoutExtension(t *testing.T) {
	name := GenerateFilename(PrefixDocument, "report")
	assert.Regexp(t, regexp.MustCompile(`^doc-\d+-\d+$`), name)
}

func TestSaveWritesFileAndReturnsPointer(t *testing.T) {
	ls := newTestStorage(t)
	fh := makeFileHeader(t, "images", "photo.png", "png-bytes")

	pointer, err := ls.Save(fh, SubdirImages, PrefixImage)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(pointer, "/uploads/images/image-"), "unexpected pointer %q", pointer)

	path, ok := ls.Resolve(pointer)
	require.True(t, ok)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))
}

func TestResolveRejectsEscapingPointers(t *testing.T) {
	ls := newTestStorage(t)

	for _, pointer := range []string{
		"/uploads/../../etc/passwd",
		"/uploads/images/../../secret.txt",
		"../outside.txt",
	} {
		_, ok := ls.Resolve(pointer)
		assert.False(t, ok, "pointer %q must not resolve inside the root", pointer)
	}
}

func TestResolveAcceptsPointersInsideRoot(t *testing.T) {
	ls := newTestStorage(t)

	path, ok := ls.Resolve("/uploads/images/image-1-2.png")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(ls.Root(), "images", "image-1-2.png"), path)
}

func TestDeleteRemovesSavedFile(t *testing.T) {
	ls := newTestStorage(t)
	fh := makeFileHeader(t, "document", "report.pdf", "pdf-bytes")

	pointer, err := ls.Save(fh, SubdirDocuments, PrefixDocument)
	require.NoError(t, err)

	require.NoError(t, ls.Delete(pointer))

	path, _ := ls.Resolve(pointer)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteToleratesMissingFile(t *testing.T) {
	ls := newTestStorage(t)
	assert.NoError(t, ls.Delete("/uploads/images/image-404-404.png"))
}

func TestDeleteSkipsPointersOutsideRoot(t *testing.T) {
	ls := newTestStorage(t)

	victim := filepath.Join(filepath.Dir(ls.Root()), "victim.txt")
	require.NoError(t, os.WriteFile(victim, []byte("keep me"), 0o644))

	assert.NoError(t, ls.Delete("/uploads/../victim.txt"))

	_, err := os.Stat(victim)
	assert.NoError(t, err, "file outside the root must survive")
}

func TestDeleteAllSwallowsFailures(t *testing.T) {
	ls := newTestStorage(t)
	fh := makeFileHeader(t, "images", "a.png", "x")

	pointer, err := ls.Save(fh, SubdirImages, PrefixImage)
	require.NoError(t, err)

	ls.DeleteAll([]string{"/uploads/images/missing.png", pointer, ""})

	path, _ := ls.Resolve(pointer)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
