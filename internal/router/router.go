package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/interview-hub/interview-hub/internal/handlers"
	"github.com/interview-hub/interview-hub/internal/middleware"
	"github.com/interview-hub/interview-hub/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/login", handlers.Login)
			auth.POST("/logout", middleware.AuthMiddleware(), handlers.Logout)
			auth.GET("/profile", middleware.AuthMiddleware(), handlers.Profile)
		}

		interviews := api.Group("/interviews", middleware.AuthMiddleware())
		{
			interviews.GET("", handlers.ListInterviews)
			interviews.GET("/:id", handlers.GetInterviewDetail)
			interviews.PATCH("/:id", handlers.UpdateInterviewDetail)
			interviews.PUT("/:id/archive", handlers.ArchiveInterview)

			interviews.GET("/:id/logs", handlers.ListInterviewLogs)
			interviews.GET("/:id/comments", handlers.ListInterviewComments)
			interviews.POST("/:id/comments", handlers.CreateInterviewComment)
		}

		comments := api.Group("/comments", middleware.AuthMiddleware())
		{
			comments.PUT("/:comment_id", handlers.UpdateInterviewComment)
			comments.DELETE("/:comment_id", handlers.DeleteInterviewComment)
		}
	}

	return r
}
