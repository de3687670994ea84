package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/kkkk66/GROWit/internal/credentials"
	"github.com/kkkk66/GROWit/internal/history"
	"github.com/kkkk66/GROWit/internal/llm"
	"github.com/kkkk66/GROWit/internal/llm/gemini"
	"github.com/kkkk66/GROWit/internal/optimize"
	"github.com/kkkk66/GROWit/internal/quota"
	"github.com/kkkk66/GROWit/internal/shared/config"
	"github.com/kkkk66/GROWit/internal/shared/metrics"
	"github.com/kkkk66/GROWit/internal/shared/server/middleware"
	"github.com/kkkk66/GROWit/internal/shared/server/respond"
	"github.com/kkkk66/GROWit/internal/shared/storage/db"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var historyRepo history.Repo
	var quotaSvc *quota.Service
	var credentialsSvc *credentials.Service
	if sqlDB != nil {
		historyRepo = &history.PGRepo{DB: sqlDB}
		quotaSvc = quota.NewPostgresService(quota.NewPGStore(sqlDB), cfg.FreeDailyLimit)
		credentialsSvc = credentials.NewPostgresService(credentials.NewPGStore(sqlDB))
	} else {
		historyRepo = history.NewMemoryRepo()
		quotaSvc = quota.NewService(cfg.FreeDailyLimit)
		credentialsSvc = credentials.NewService()
	}

	var llmClient llm.Client
	geminiClient, err := gemini.NewClient(cfg.LLMModel)
	if err != nil {
		log.Printf("gemini client unavailable: %v", err)
		llmClient = llm.PlaceholderClient{}
	} else {
		llmClient = geminiClient
	}

	optimizeSvc := &optimize.Service{
		Client:       &optimize.Client{LLM: llmClient},
		Quota:        quotaSvc,
		Credentials:  credentialsSvc,
		History:      historyRepo,
		SharedAPIKey: cfg.SharedAPIKey,
	}

	optimizeHandler := optimize.NewHandler(optimizeSvc)
	quotaHandler := quota.NewHandler(quotaSvc)
	historyHandler := history.NewHandler(historyRepo)
	credentialsHandler := credentials.NewHandler(credentialsSvc)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	authed := api.Group("")
	authed.Use(
		middleware.Identity(),
		middleware.RateLimit(middleware.NewRateLimiter(middleware.RateLimitRule{Rate: rate.Limit(1), Burst: 5})),
	)
	optimizeHandler.RegisterRoutes(authed)
	quotaHandler.RegisterRoutes(authed)
	historyHandler.RegisterRoutes(authed)
	credentialsHandler.RegisterRoutes(authed)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
