package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malek/tadreeb/internal/app/controllers"
	"github.com/malek/tadreeb/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	fieldController *controllers.FieldController,
	courseController *controllers.CourseController,
	attachmentController *controllers.AttachmentController,
	statsController *controllers.StatsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		// Gated by the change-password key instead of a token
		auth.POST("/change-password", authController.ChangePassword)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/verify", authController.Verify)

		fields := authenticated.Group("/fields")
		{
			fields.GET("", fieldController.List)
			fields.GET("/:id", fieldController.Get)
			fields.GET("/:id/courses", fieldController.ListCourses)
			fields.POST("", fieldController.Create)
			fields.POST("/bulk", fieldController.BulkCreate)
			fields.PUT("/:id", fieldController.Update)
			fields.DELETE("/:id", fieldController.Delete)
		}

		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.List)
			courses.GET("/:id", courseController.Get)
			courses.POST("", courseController.Create)
			courses.PUT("/:id", courseController.Update)
			courses.DELETE("/:id", courseController.Delete)

			courses.POST("/:id/images", attachmentController.UploadImages)
			courses.DELETE("/:id/images/:imageId", attachmentController.DeleteImage)
			courses.POST("/:id/documents", attachmentController.UploadDocument)
			courses.DELETE("/:id/documents/:documentId", attachmentController.DeleteDocument)
		}

		stats := authenticated.Group("/stats")
		{
			stats.GET("/dashboard", statsController.Dashboard)
			stats.GET("/fields", statsController.Fields)
			stats.GET("/trainers", statsController.Trainers)
			stats.GET("/yearly", statsController.Yearly)
			stats.GET("/yearly/:year", statsController.Yearly)
		}
	}
}
