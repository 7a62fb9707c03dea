package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malek/tadreeb/internal/app/models/dto"
	"github.com/malek/tadreeb/internal/app/services"
	"github.com/malek/tadreeb/internal/middleware"
)

// AuthController handles authentication endpoints. Request bodies are
// never logged here: the login payload is the admin password.
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login handles POST /api/auth/login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(dto.FieldErrorsFromBinding(err)))
		return
	}

	result, err := c.authService.Login(ctx.Request.Context(), req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccess(result, "Login successful"))
}

// ChangePassword handles POST /api/auth/change-password
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(dto.FieldErrorsFromBinding(err)))
		return
	}

	if err := c.authService.ChangePassword(ctx.Request.Context(), req.AuthKey(), req.NewPassword); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccess(nil, "Password changed successfully"))
}

// Verify handles GET /api/auth/verify. Reaching the handler means the
// token already passed the auth middleware.
func (c *AuthController) Verify(ctx *gin.Context) {
	userID := ctx.GetInt64("userID")
	ctx.JSON(http.StatusOK, dto.NewSuccess(dto.LoginUser{ID: userID}, "Token is valid"))
}
