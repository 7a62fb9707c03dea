package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/malek/tadreeb/internal/app/models/dto"
	"github.com/malek/tadreeb/internal/app/services"
	"github.com/malek/tadreeb/internal/middleware"
	"github.com/malek/tadreeb/internal/pkg/helpers"
)

// FieldController handles the course field endpoints.
type FieldController struct {
	fieldService *services.FieldService
}

// NewFieldController creates a new field controller
func NewFieldController(fieldService *services.FieldService) *FieldController {
	return &FieldController{fieldService: fieldService}
}

// parseIDParam reads one numeric path parameter.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		ctx.JSON(http.StatusBadRequest, dto.NewError("Invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}

// List handles GET /api/fields
func (c *FieldController) List(ctx *gin.Context) {
	search := ctx.Query("search")
	includeCount, _ := strconv.ParseBool(ctx.DefaultQuery("includeCount", "false"))

	fields, err := c.fieldService.List(ctx.Request.Context(), search, includeCount)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(fields, ""))
}

// Get handles GET /api/fields/:id
func (c *FieldController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	field, err := c.fieldService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(field, ""))
}

// ListCourses handles GET /api/fields/:id/courses
func (c *FieldController) ListCourses(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	page, limit := helpers.ParsePaginationParams(ctx)

	field, courses, total, err := c.fieldService.ListCourses(ctx.Request.Context(), id, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccess(dto.FieldCoursesResponse{
		Field:      field,
		Courses:    courses,
		Pagination: helpers.NewPagination(total, page, limit),
	}, ""))
}

// Create handles POST /api/fields
func (c *FieldController) Create(ctx *gin.Context) {
	var req dto.CreateFieldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(dto.FieldErrorsFromBinding(err)))
		return
	}

	field, err := c.fieldService.Create(ctx.Request.Context(), req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccess(field, "Field created successfully"))
}

// Update handles PUT /api/fields/:id
func (c *FieldController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateFieldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(dto.FieldErrorsFromBinding(err)))
		return
	}

	field, err := c.fieldService.Update(ctx.Request.Context(), id, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(field, "Field updated successfully"))
}

// Delete handles DELETE /api/fields/:id
func (c *FieldController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.fieldService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(nil, "Field deleted successfully"))
}

// BulkCreate handles POST /api/fields/bulk
func (c *FieldController) BulkCreate(ctx *gin.Context) {
	var req dto.BulkCreateFieldsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(dto.FieldErrorsFromBinding(err)))
		return
	}

	names := make([]string, 0, len(req.Fields))
	for _, f := range req.Fields {
		names = append(names, f.Name)
	}

	result, err := c.fieldService.BulkCreate(ctx.Request.Context(), names)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccess(result, "Bulk field creation finished"))
}
