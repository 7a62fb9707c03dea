package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"slices"

	"github.com/malek/tadreeb/internal/app/models"
	"github.com/malek/tadreeb/internal/app/repositories"
	"github.com/malek/tadreeb/internal/config"
	"github.com/malek/tadreeb/internal/pkg/apperrors"
	"github.com/malek/tadreeb/internal/pkg/filestorage"
	"github.com/malek/tadreeb/internal/pkg/logger"
)

// MaxImagesPerUpload caps one gallery upload batch.
const MaxImagesPerUpload = 10

// AttachmentService handles course image and document uploads. Every batch
// is validated in full before the first byte hits the disk, so a rejected
// batch leaves neither files nor records behind.
type AttachmentService struct {
	courseRepo   *repositories.CourseRepository
	imageRepo    *repositories.ImageRepository
	documentRepo *repositories.DocumentRepository
	storage      *filestorage.LocalStorage
	uploadCfg    config.UploadConfig
}

// NewAttachmentService creates a new attachment service
func NewAttachmentService(
	courseRepo *repositories.CourseRepository,
	imageRepo *repositories.ImageRepository,
	documentRepo *repositories.DocumentRepository,
	storage *filestorage.LocalStorage,
	uploadCfg config.UploadConfig,
) *AttachmentService {
	return &AttachmentService{
		courseRepo:   courseRepo,
		imageRepo:    imageRepo,
		documentRepo: documentRepo,
		storage:      storage,
		uploadCfg:    uploadCfg,
	}
}

// validateUpload checks one file header against the allowed MIME types and
// the size ceiling.
func validateUpload(fh *multipart.FileHeader, allowedTypes []string, maxSize int64) error {
	contentType := fh.Header.Get("Content-Type")
	if !slices.Contains(allowedTypes, contentType) {
		return apperrors.NewCustomError(apperrors.ErrInvalidFileType,
			fmt.Sprintf("File %q has unsupported type %q", fh.Filename, contentType))
	}
	if fh.Size > maxSize {
		return apperrors.NewCustomError(apperrors.ErrFileTooLarge,
			fmt.Sprintf("File %q exceeds the %d byte limit", fh.Filename, maxSize))
	}
	return nil
}

// UploadImages stores a batch of gallery images for a course. The whole
// batch is validated first; one bad file rejects the batch with no writes.
func (s *AttachmentService) UploadImages(ctx context.Context, courseID int64, files []*multipart.FileHeader, altText string) ([]models.CourseImage, error) {
	if len(files) == 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrNoFilesUploaded, "No image files uploaded")
	}
	if len(files) > MaxImagesPerUpload {
		return nil, apperrors.NewCustomError(apperrors.ErrTooManyFiles,
			fmt.Sprintf("At most %d images per upload", MaxImagesPerUpload))
	}
	for _, fh := range files {
		if err := validateUpload(fh, s.uploadCfg.AllowedImageTypes, s.uploadCfg.MaxFileSize); err != nil {
			return nil, err
		}
	}

	exists, err := s.courseRepo.Exists(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	images := make([]models.CourseImage, 0, len(files))
	written := make([]string, 0, len(files))
	for _, fh := range files {
		pointer, err := s.storage.Save(fh, filestorage.SubdirImages, filestorage.PrefixImage)
		if err != nil {
			s.storage.DeleteAll(written)
			return nil, err
		}
		written = append(written, pointer)

		alt := altText
		if alt == "" {
			alt = fh.Filename
		}
		img := &models.CourseImage{
			CourseID: courseID,
			URL:      pointer,
			AltText:  &alt,
		}
		if err := s.imageRepo.Create(ctx, img); err != nil {
			s.storage.DeleteAll(written)
			return nil, err
		}
		images = append(images, *img)
	}

	logger.Info().Int64("courseId", courseID).Int("count", len(images)).Msg("Course images uploaded")
	return images, nil
}

// UploadDocument stores one typed document for a course.
func (s *AttachmentService) UploadDocument(ctx context.Context, courseID int64, docType string, fh *multipart.FileHeader) (*models.CourseDocument, error) {
	if fh == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrNoFilesUploaded, "No document file uploaded")
	}

	parsedType := models.DocumentType(docType)
	if !parsedType.IsValid() {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidDocumentType,
			fmt.Sprintf("Unknown document type %q", docType))
	}
	if err := validateUpload(fh, s.uploadCfg.AllowedDocumentTypes, s.uploadCfg.MaxFileSize); err != nil {
		return nil, err
	}

	exists, err := s.courseRepo.Exists(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	pointer, err := s.storage.Save(fh, filestorage.SubdirDocuments, filestorage.PrefixDocument)
	if err != nil {
		return nil, err
	}

	doc := &models.CourseDocument{
		CourseID: courseID,
		Type:     parsedType,
		Path:     pointer,
		FileName: fh.Filename,
	}
	if err := s.documentRepo.Create(ctx, doc); err != nil {
		if delErr := s.storage.Delete(pointer); delErr != nil {
			logger.Error().Err(delErr).Str("pointer", pointer).Msg("Failed to clean up orphaned document file")
		}
		return nil, err
	}

	logger.Info().Int64("courseId", courseID).Str("type", docType).Msg("Course document uploaded")
	return doc, nil
}

// DeleteImage removes one gallery image. The disk unlink is best effort;
// the record delete is authoritative.
func (s *AttachmentService) DeleteImage(ctx context.Context, courseID, imageID int64) error {
	img, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return err
	}
	if img.CourseID != courseID {
		return apperrors.ErrImageNotFound
	}

	if err := s.storage.Delete(img.URL); err != nil {
		logger.Warn().Err(err).Str("pointer", img.URL).Msg("Failed to delete image file")
	}
	return s.imageRepo.Delete(ctx, imageID)
}

// DeleteDocument removes one typed document and its backing file.
func (s *AttachmentService) DeleteDocument(ctx context.Context, courseID, documentID int64) error {
	doc, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return err
	}
	if doc.CourseID != courseID {
		return apperrors.ErrDocumentNotFound
	}

	if err := s.storage.Delete(doc.Path); err != nil {
		logger.Warn().Err(err).Str("pointer", doc.Path).Msg("Failed to delete document file")
	}
	return s.documentRepo.Delete(ctx, documentID)
}
