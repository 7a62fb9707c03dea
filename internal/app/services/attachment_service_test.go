package services

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/malek/tadreeb/internal/pkg/apperrors"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
	}
}

func TestValidateUploadAcceptsAllowedType(t *testing.T) {
	fh := fileHeader("photo.png", "image/png", 1024)
	assert.NoError(t, validateUpload(fh, []string{"image/jpeg", "image/png"}, 10<<20))
}

func TestValidateUploadRejectsDisallowedType(t *testing.T) {
	fh := fileHeader("script.exe", "application/octet-stream", 1024)

	err := validateUpload(fh, []string{"image/jpeg", "image/png"}, 10<<20)
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
	assert.Contains(t, err.Error(), "script.exe")
}

func TestValidateUploadRejectsOversizedFile(t *testing.T) {
	fh := fileHeader("big.png", "image/png", 11<<20)

	err := validateUpload(fh, []string{"image/png"}, 10<<20)
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
}

func TestValidateUploadSizeBoundary(t *testing.T) {
	fh := fileHeader("exact.png", "image/png", 10<<20)
	assert.NoError(t, validateUpload(fh, []string{"image/png"}, 10<<20))
}
