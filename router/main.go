package router

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/testprep-api/database"
	"github.com/sahilchouksey/testprep-api/handlers"
	auth_handlers "github.com/sahilchouksey/testprep-api/handlers/auth"
	question_handlers "github.com/sahilchouksey/testprep-api/handlers/question"
	result_handlers "github.com/sahilchouksey/testprep-api/handlers/result"
	seed_handlers "github.com/sahilchouksey/testprep-api/handlers/seed"
	university_handlers "github.com/sahilchouksey/testprep-api/handlers/university"
	"github.com/sahilchouksey/testprep-api/services"
	"github.com/sahilchouksey/testprep-api/utils"
	"github.com/sahilchouksey/testprep-api/utils/auth"
	"github.com/sahilchouksey/testprep-api/utils/cache"
	"github.com/sahilchouksey/testprep-api/utils/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, store database.Storage) {
	// Get JWT secret from environment; never hardcoded
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "testprep-api"
	}

	// Initialize JWT manager with config
	jwtConfig := auth.JWTConfig{
		Secret: jwtSecret,
		Expiry: auth.DefaultExpiry, // Session tokens expire in 24 hours
		Issuer: jwtIssuer,
	}
	jwtManager := auth.NewJWTManager(jwtConfig)

	// Get DB instance (type assert from interface)
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		log.Fatal("Failed to get GORM DB instance")
	}

	// Initialize Redis cache for brute force protection and question caching
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	redisCache, err := cache.NewRedisCache(redisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Brute force protection and question caching will be disabled.", err)
	}

	// Initialize brute force protection
	var bruteForceProtection *middleware.BruteForceProtection
	if redisCache != nil {
		bruteForceProtection = middleware.NewBruteForceProtection(redisCache)
	}

	// Initialize auth middleware with DB for blacklist checking
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)

	// Initialize handlers
	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, bruteForceProtection)
	universityHandler := university_handlers.NewUniversityHandler(db)

	statsService := services.NewStatsService(db)
	resultHandler := result_handlers.NewResultHandler(db, statsService)

	questionService := services.NewQuestionService(db, redisCache)
	questionHandler := question_handlers.NewQuestionHandler(db, questionService)

	// Fixture seeding stays off in production; re-invocation duplicates rows
	seedEnabled := os.Getenv("GO_ENV") != "production"
	seedHandler := seed_handlers.NewSeedHandler(db, seedEnabled)

	// Apply security middleware
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:3001"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	// Health check endpoint (public)
	app.Get("/ping", utils.MakeHTTPHandleFunc(handlers.HandleCheckHealth, store))

	// API v1 group
	api := app.Group("/api/v1")

	// Auth routes (public)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)

	// Login with brute force protection
	if bruteForceProtection != nil {
		authGroup.Post("/login", bruteForceProtection.CheckAndRecordAttempt(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}

	// Protected auth routes
	authGroup.Post("/logout", authMiddleware.Required(), authHandler.Logout)

	// Profile route (protected)
	api.Get("/profile", authMiddleware.Required(), authHandler.GetProfile)

	// Test result routes (protected)
	api.Post("/test-results", authMiddleware.Required(), resultHandler.SubmitResult)
	api.Get("/test-results", authMiddleware.Required(), resultHandler.ListResults)
	api.Get("/dashboard-stats", authMiddleware.Required(), resultHandler.DashboardStats)

	// University directory routes
	universities := api.Group("/universities")
	universities.Get("/", universityHandler.ListUniversities)                                 // Public: List with filters
	universities.Get("/:id", universityHandler.GetUniversity)                                 // Public: Get university by ID
	universities.Post("/", authMiddleware.RequireAdmin(), universityHandler.CreateUniversity) // Admin only: Create university

	// Question routes
	api.Get("/questions/:testType/:section", questionHandler.ListQuestions)               // Public: List without answers
	api.Post("/questions", authMiddleware.RequireAdmin(), questionHandler.CreateQuestion) // Admin only: Add question
	api.Post("/check-answer", questionHandler.CheckAnswer)                                // Public: Grade an attempt

	// Fixture seeding (public, environment-gated)
	api.Post("/seed-data", seedHandler.SeedData)
}
