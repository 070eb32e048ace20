package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"studybuddy-backend/internal/documents"
	"studybuddy-backend/internal/llm"
	"studybuddy-backend/internal/llm/gemini"
	"studybuddy-backend/internal/shared/config"
	"studybuddy-backend/internal/shared/server"
	"studybuddy-backend/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	DocumentsRepo    documents.Repo
	DocumentsService *documents.Service
	DocumentsHandler *documents.Handler
	LLM              llm.CompletionClient
}

// Build prepares shared dependencies and wires the router. Tests may pass a
// stub completion client; a nil client builds the Gemini client from config.
func Build(cfg config.Config, completion llm.CompletionClient) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if completion == nil {
		client, err := gemini.NewClient(gemini.Config{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
			Timeout: cfg.GeminiTimeout,
		})
		if err != nil {
			return nil, err
		}
		completion = client
	}

	var docRepo documents.Repo
	if sqlDB != nil {
		docRepo = &documents.PGRepo{DB: sqlDB}
	} else {
		docRepo = documents.NewMemoryRepo()
	}

	docSvc := &documents.Service{Repo: docRepo, LLM: completion}
	docHandler := documents.NewHandler(docSvc)

	app := &App{
		Config:           cfg,
		DB:               sqlDB,
		DocumentsRepo:    docRepo,
		DocumentsService: docSvc,
		DocumentsHandler: docHandler,
		LLM:              completion,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:    cfg,
		Documents: docHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repository")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repository: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
