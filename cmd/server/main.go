package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/qa-board-api/internal/config"
	"github.com/yukikurage/qa-board-api/internal/constants"
	"github.com/yukikurage/qa-board-api/internal/database"
	"github.com/yukikurage/qa-board-api/internal/handlers"
	"github.com/yukikurage/qa-board-api/internal/middleware"
	"github.com/yukikurage/qa-board-api/internal/repository"
	"github.com/yukikurage/qa-board-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	tagRepo := repository.NewTagRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	tagService := services.NewTagService(tagRepo)
	questionService := services.NewQuestionService(questionRepo, answerRepo)
	voteService := services.NewVoteService(questionRepo, answerRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	tagHandler := handlers.NewTagHandler(tagService)
	questionHandler := handlers.NewQuestionHandler(questionService, tagService, voteService)
	answerHandler := handlers.NewAnswerHandler(questionService, voteService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Q&A Board API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Tag routes (public, read-only)
		api.GET("/tags", tagHandler.ListTags)

		// Question routes (reads public, writes protected)
		questions := api.Group("/questions")
		{
			questions.GET("", questionHandler.ListQuestions)
			questions.GET("/:id", questionHandler.GetThread)
			questions.POST("", middleware.RequireAuth(), questionHandler.Ask)
			questions.POST("/:id/answers", middleware.RequireAuth(), answerHandler.Answer)
			questions.POST("/:id/vote", middleware.RequireAuth(), questionHandler.VoteQuestion)
		}

		// Answer routes (protected)
		answers := api.Group("/answers")
		answers.Use(middleware.RequireAuth())
		{
			answers.POST("/:id/vote", answerHandler.VoteAnswer)
			answers.POST("/:id/accept", answerHandler.AcceptAnswer)
		}
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
