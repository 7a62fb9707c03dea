package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/malek/tadreeb/internal/app/models/dto"
	"github.com/malek/tadreeb/internal/app/services"
	"github.com/malek/tadreeb/internal/middleware"
)

// StatsController handles the reporting endpoints.
type StatsController struct {
	statsService *services.StatsService
}

// NewStatsController creates a new stats controller
func NewStatsController(statsService *services.StatsService) *StatsController {
	return &StatsController{statsService: statsService}
}

// Dashboard handles GET /api/stats/dashboard
func (c *StatsController) Dashboard(ctx *gin.Context) {
	stats, err := c.statsService.Dashboard(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(stats, ""))
}

// Fields handles GET /api/stats/fields
func (c *StatsController) Fields(ctx *gin.Context) {
	stats, err := c.statsService.FieldStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(stats, ""))
}

// Trainers handles GET /api/stats/trainers
func (c *StatsController) Trainers(ctx *gin.Context) {
	stats, err := c.statsService.TrainerStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(stats, ""))
}

// Yearly handles GET /api/stats/yearly and GET /api/stats/yearly/:year.
// Without an explicit year the current calendar year is reported.
func (c *StatsController) Yearly(ctx *gin.Context) {
	year := time.Now().UTC().Year()
	if raw := ctx.Param("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1970 || parsed > 9999 {
			ctx.JSON(http.StatusBadRequest, dto.NewError("Invalid year parameter"))
			return
		}
		year = parsed
	}

	stats, err := c.statsService.Yearly(ctx.Request.Context(), year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccess(stats, ""))
}
