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

// CourseController handles the course CRUD endpoints.
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new course controller
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// List handles GET /api/courses
func (c *CourseController) List(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)
	filter := dto.CourseListFilter{
		Page:   page,
		Limit:  limit,
		Search: ctx.Query("search"),
	}

	if raw := ctx.Query("field"); raw != "" {
		fieldID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || fieldID < 1 {
			ctx.JSON(http.StatusBadRequest, dto.NewError("Invalid field parameter"))
			return
		}
		filter.FieldID = &fieldID
	}
	if raw := ctx.Query("startDate"); raw != "" {
		filter.StartDate = &raw
	}
	if raw := ctx.Query("endDate"); raw != "" {
		filter.EndDate = &raw
	}

	courses, total, err := c.courseService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewPaginated(courses, helpers.NewPagination(total, page, limit)))
}

// Get handles GET /api/courses/:id
func (c *CourseController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(course, ""))
}

// Create handles POST /api/courses
func (c *CourseController) Create(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(dto.FieldErrorsFromBinding(err)))
		return
	}

	course, err := c.courseService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccess(course, "Course created successfully"))
}

// Update handles PUT /api/courses/:id
func (c *CourseController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(dto.FieldErrorsFromBinding(err)))
		return
	}

	course, err := c.courseService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(course, "Course updated successfully"))
}

// Delete handles DELETE /api/courses/:id
func (c *CourseController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(nil, "Course deleted successfully"))
}
