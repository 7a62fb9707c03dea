package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malek/tadreeb/internal/app/models/dto"
	"github.com/malek/tadreeb/internal/app/services"
	"github.com/malek/tadreeb/internal/middleware"
)

// AttachmentController handles the nested image and document endpoints.
type AttachmentController struct {
	attachmentService *services.AttachmentService
}

// NewAttachmentController creates a new attachment controller
func NewAttachmentController(attachmentService *services.AttachmentService) *AttachmentController {
	return &AttachmentController{attachmentService: attachmentService}
}

// UploadImages handles POST /api/courses/:id/images. The multipart form
// carries the files under "images" and an optional shared "altText".
func (c *AttachmentController) UploadImages(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewError("Invalid multipart form"))
		return
	}
	files := form.File["images"]
	altText := ctx.PostForm("altText")

	images, err := c.attachmentService.UploadImages(ctx.Request.Context(), courseID, files, altText)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccess(images, "Images uploaded successfully"))
}

// DeleteImage handles DELETE /api/courses/:id/images/:imageId
func (c *AttachmentController) DeleteImage(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	imageID, ok := parseIDParam(ctx, "imageId")
	if !ok {
		return
	}

	if err := c.attachmentService.DeleteImage(ctx.Request.Context(), courseID, imageID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(nil, "Image deleted successfully"))
}

// UploadDocument handles POST /api/courses/:id/documents. The multipart
// form carries one file under "document" and its kind under "type".
func (c *AttachmentController) UploadDocument(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("document")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewError("No document file uploaded"))
		return
	}
	docType := ctx.PostForm("type")

	doc, err := c.attachmentService.UploadDocument(ctx.Request.Context(), courseID, docType, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccess(doc, "Document uploaded successfully"))
}

// DeleteDocument handles DELETE /api/courses/:id/documents/:documentId
func (c *AttachmentController) DeleteDocument(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	documentID, ok := parseIDParam(ctx, "documentId")
	if !ok {
		return
	}

	if err := c.attachmentService.DeleteDocument(ctx.Request.Context(), courseID, documentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(nil, "Document deleted successfully"))
}
