package main

import (
	"os"
	"strings"
	"time"

	"github.com/R-Nikhil-Ganesh/gittogether-backend/controllers"
	"github.com/R-Nikhil-Ganesh/gittogether-backend/database"
	"github.com/R-Nikhil-Ganesh/gittogether-backend/docs"
	"github.com/R-Nikhil-Ganesh/gittogether-backend/middleware"
	"github.com/R-Nikhil-Ganesh/gittogether-backend/websocket"
	"github.com/R-Nikhil-Ganesh/gittogether-backend/worker"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           GitTogether API
// @version         1.0
// @description     API Server for the GitTogether team matching platform
// @host            localhost:8080
// @BasePath        /api/v1
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize database
	database.Connect()
	database.Migrate()

	// Set up Swagger info
	docs.SwaggerInfo.Title = "GitTogether API"
	docs.SwaggerInfo.Description = "API Server for the GitTogether team matching platform"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:" + os.Getenv("PORT")
	if docs.SwaggerInfo.Host == "localhost:" {
		docs.SwaggerInfo.Host = "localhost:8080"
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Start the expired-message sweeper
	worker.StartMessageSweeper(10 * time.Minute)

	// Set up router
	router := gin.Default()

	// CORS middleware
	allowedOrigins := []string{"http://localhost:3000", "http://localhost:5173"}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Authentication routes
	auth := router.Group("/api/v1/auth")
	auth.Use(middleware.RateLimitWrites())
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.GET("/google", controllers.GetGoogleAuthURL)
		auth.POST("/google/callback", controllers.GoogleCallback)
	}

	// Protected routes
	api := router.Group("/api/v1")
	api.Use(middleware.JWTAuth())
	{
		// Current user routes
		api.GET("/auth/me", controllers.Me)
		api.PUT("/auth/me", middleware.RateLimitWrites(), controllers.UpdateMe)

		// User routes
		api.GET("/users/me/skills", controllers.GetMySkills)
		api.POST("/users/me/skills/:skillId", middleware.RateLimitWrites(), controllers.AddMySkill)
		api.DELETE("/users/me/skills/:skillId", middleware.RateLimitWrites(), controllers.RemoveMySkill)
		api.GET("/users/:id", controllers.GetUserProfile)

		// Friend routes
		api.GET("/friends", controllers.GetFriends)
		api.GET("/friends/search", controllers.SearchUsers)
		api.GET("/friends/requests", controllers.GetFriendRequests)
		api.POST("/friends/requests", middleware.RateLimitWrites(), controllers.SendFriendRequest)
		api.PUT("/friends/requests/:id/accept", middleware.RateLimitWrites(), controllers.AcceptFriendRequest)
		api.PUT("/friends/requests/:id/reject", middleware.RateLimitWrites(), controllers.RejectFriendRequest)
		api.DELETE("/friends/requests/:id", middleware.RateLimitWrites(), controllers.CancelFriendRequest)
		api.GET("/friends/:id/messages", controllers.GetFriendMessages)
		api.POST("/friends/:id/messages", middleware.RateLimitWrites(), controllers.SendFriendMessage)

		// Post routes
		api.GET("/posts", controllers.GetPosts)
		api.POST("/posts", middleware.RateLimitWrites(), controllers.CreatePost)
		api.GET("/posts/my", controllers.GetMyPosts)
		api.GET("/posts/skills", controllers.GetSkills)
		api.GET("/posts/skills/categories", controllers.GetSkillCategories)
		api.GET("/posts/:id", controllers.GetPost)
		api.PUT("/posts/:id", middleware.RateLimitWrites(), controllers.UpdatePost)
		api.DELETE("/posts/:id", middleware.RateLimitWrites(), controllers.DeletePost)
		// Request routes
		api.POST("/requests", middleware.RateLimitWrites(), controllers.CreateTeamRequest)
		api.GET("/requests/sent", controllers.GetSentRequests)
		api.GET("/requests/received", controllers.GetReceivedRequests)
		api.PUT("/requests/:id", middleware.RateLimitWrites(), controllers.UpdateTeamRequestStatus)
		api.DELETE("/requests/:id", middleware.RateLimitWrites(), controllers.WithdrawTeamRequest)

		// Team routes
		api.GET("/teams/my", controllers.GetMyTeams)
		api.GET("/teams/:id/messages", controllers.GetTeamMessages)
		api.POST("/teams/:id/messages", middleware.RateLimitWrites(), controllers.SendTeamMessage)
		api.DELETE("/teams/:id/members/:memberId", middleware.RateLimitWrites(), controllers.RemoveTeamMember)

		// Event routes
		api.GET("/events", controllers.GetEvents)
		api.POST("/events", middleware.RateLimitWrites(), controllers.CreateEvent)
		api.DELETE("/events/:id", middleware.RateLimitWrites(), controllers.DeleteEvent)

		// Dashboard routes
		api.GET("/dashboard/summary", controllers.GetDashboardSummary)
		api.GET("/dashboard/activity", controllers.GetDashboardActivity)
		api.GET("/dashboard/notifications", controllers.GetDashboardNotifications)

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/summary", controllers.GetAdminSummary)
			admin.GET("/users", controllers.GetAdminUsers)
			admin.PUT("/users/:id/status", controllers.UpdateAdminUserStatus)
		}
	}

	// WebSocket route
	router.GET("/ws", websocket.HandleConnection)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.Infof("Server running on port %s", port)
	logrus.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
