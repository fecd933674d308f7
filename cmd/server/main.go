// @title           Ad Studio Backend API
// @version         1.0.0
// @description     Backend API for the AI ad studio: campaign management, a step-based video creation workflow, AI text/image/video generation, and social publishing to Bluesky and Twitter.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"adstudio-backend/docs"
	"adstudio-backend/internal/bluesky"
	"adstudio-backend/internal/config"
	"adstudio-backend/internal/database"
	"adstudio-backend/internal/fal"
	"adstudio-backend/internal/gemini"
	"adstudio-backend/internal/handlers"
	"adstudio-backend/internal/luma"
	"adstudio-backend/internal/middleware"
	"adstudio-backend/internal/services"
	"adstudio-backend/internal/stability"
	"adstudio-backend/internal/supabase"
	"adstudio-backend/internal/twitter"
)

func main() {
	// .env is optional; real deployments use environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	// Run migrations before anything touches the schema.
	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	migrator.Close()
	log.Println("Migrations completed successfully")

	// Generation clients
	geminiClient, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize gemini client: %v", err)
	}

	falClient := fal.NewClient(cfg.FALBaseURL, cfg.FALAPIKey)
	stabilityClient := stability.NewClient(cfg.StabilityBaseURL, cfg.StabilityAPIKey)
	lumaClient := luma.NewClient(cfg.LumaBaseURL, cfg.LumaSessionToken,
		cfg.LumaPollAttempts, time.Duration(cfg.LumaPollDelaySec)*time.Second)

	// Social clients
	blueskyClient := bluesky.NewClient(cfg.BlueskyService, cfg.BlueskyHandle, cfg.BlueskyAppPassword)
	twitterClient := twitter.NewClient(cfg.TwitterConsumerKey, cfg.TwitterConsumerSecret,
		cfg.TwitterAccessToken, cfg.TwitterAccessSecret)

	// Supabase clients
	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize storage client: %v", err)
	}

	realtimeClient := supabase.NewRealtimeClient(supabaseClient.Supabase)

	dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database client: %v", err)
	}
	defer dbClient.Close()

	mediaService := services.NewMediaService(falClient, lumaClient, stabilityClient)

	// Handlers
	campaignsHandler := handlers.NewCampaignsHandler(dbClient, storageClient)
	workflowHandler := handlers.NewWorkflowHandler(dbClient, realtimeClient)
	studioHandler := handlers.NewStudioHandler(geminiClient)
	mediaHandler := handlers.NewMediaHandler(falClient, lumaClient, stabilityClient, mediaService)
	socialHandler := handlers.NewSocialHandler(blueskyClient, twitterClient, dbClient)
	postsHandler := handlers.NewPostsHandler(dbClient, realtimeClient)
	statisticsHandler := handlers.NewStatisticsHandler(dbClient)
	chatsHandler := handlers.NewChatsHandler(dbClient)

	router := gin.Default()

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))

	// Campaigns
	api.POST("/campaigns", campaignsHandler.CreateCampaign)
	api.GET("/campaigns", campaignsHandler.ListCampaigns)
	api.GET("/campaigns/:campaign_id", campaignsHandler.GetCampaign)
	api.PATCH("/campaigns/:campaign_id", campaignsHandler.UpdateCampaign)
	api.DELETE("/campaigns/:campaign_id", campaignsHandler.DeleteCampaign)

	// Workflow
	api.POST("/campaigns/:campaign_id/advance", workflowHandler.Advance)
	api.POST("/campaigns/:campaign_id/progress", workflowHandler.AddProgress)
	api.POST("/campaigns/:campaign_id/messages", workflowHandler.AppendMessage)

	// Studio text generation
	api.POST("/studio/analyze", studioHandler.Analyze)
	api.POST("/studio/script", studioHandler.GenerateScript)
	api.POST("/studio/characters", studioHandler.GenerateCharacters)
	api.POST("/studio/chat", studioHandler.Chat)

	// Media generation
	api.POST("/studio/image", mediaHandler.GenerateImage)
	api.POST("/studio/image/fallback", mediaHandler.GenerateFallbackImage)
	api.POST("/studio/video", mediaHandler.GenerateVideo)
	api.POST("/studio/video/luma", mediaHandler.GenerateLumaVideo)
	api.POST("/studio/media", mediaHandler.GenerateMedia)

	// Social publishing
	api.POST("/social/bluesky/post", socialHandler.PostToBluesky)
	api.GET("/social/bluesky/profile", socialHandler.GetBlueskyProfile)
	api.POST("/social/bluesky/account", socialHandler.SaveBlueskyAccount)
	api.GET("/social/bluesky/account", socialHandler.GetBlueskyAccount)
	api.DELETE("/social/bluesky/account", socialHandler.DeleteBlueskyAccount)
	api.POST("/social/twitter/tweet", socialHandler.PostTweet)
	api.GET("/social/twitter/profile", socialHandler.GetTwitterProfile)

	// Scheduled posts
	api.POST("/posts", postsHandler.CreatePost)
	api.GET("/posts", postsHandler.ListPosts)
	api.GET("/posts/stats", postsHandler.GetStats)
	api.GET("/posts/:post_id", postsHandler.GetPost)
	api.PATCH("/posts/:post_id", postsHandler.UpdatePost)
	api.PUT("/posts/:post_id/status", postsHandler.UpdateStatus)
	api.DELETE("/posts/:post_id", postsHandler.DeletePost)

	// Dashboard statistics
	api.GET("/statistics/dashboard", statisticsHandler.GetDashboard)
	api.GET("/statistics/styles", statisticsHandler.GetStyleDistribution)
	api.GET("/statistics/daily", statisticsHandler.GetDailyActivity)
	api.GET("/statistics/recent", statisticsHandler.GetRecentCampaigns)
	api.GET("/statistics/portfolio", statisticsHandler.GetPortfolio)

	// Legacy chat sessions
	api.POST("/chats/sessions", chatsHandler.CreateSession)
	api.GET("/campaigns/:campaign_id/sessions", chatsHandler.ListSessions)
	api.POST("/chats/sessions/:session_id/messages", chatsHandler.AddMessage)
	api.GET("/chats/sessions/:session_id/messages", chatsHandler.ListMessages)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
