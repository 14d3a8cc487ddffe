package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/soranjiro/AxI-itinerary/internal/auth"
	"github.com/soranjiro/AxI-itinerary/internal/config"
	"github.com/soranjiro/AxI-itinerary/internal/database"
	"github.com/soranjiro/AxI-itinerary/internal/handler"
	"github.com/soranjiro/AxI-itinerary/internal/llm"
	"github.com/soranjiro/AxI-itinerary/internal/repository"
	"github.com/soranjiro/AxI-itinerary/internal/service"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "api",
		Short: "Itinerary planning API server",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config file")

	root.AddCommand(serveCmd(), migrateCmd(), seedCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, db, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer db.Close()

			if err := database.Migrate(db, "migrations", logger); err != nil {
				return err
			}

			// Repositories
			itineraryRepo := repository.NewItineraryRepository(db)
			timelineRepo := repository.NewTimelineRepository(db)
			packingRepo := repository.NewPackingRepository(db)
			budgetRepo := repository.NewBudgetRepository(db)
			userRepo := repository.NewUserRepository(db)
			sessionRepo := repository.NewSessionRepository(db)

			// Resolve only checks expiry per lookup; sweep stale rows here.
			if err := sessionRepo.DeleteExpired(time.Now().UTC()); err != nil {
				logger.Warn("failed to sweep expired sessions", zap.Error(err))
			}

			// Auth primitives
			hasher := auth.NewBcryptHasher(0)
			sessions := auth.NewSessionManager(sessionRepo, cfg.Session.Secret,
				time.Duration(cfg.Session.TTLHours)*time.Hour)

			// The chat assistant is optional; the rest of the API works without it.
			var chatClient llm.Client
			if client, err := llm.New(cfg.LLM); err != nil {
				logger.Warn("chat assistant disabled", zap.Error(err))
			} else {
				chatClient = client
			}

			// Services
			itineraryService := service.NewItineraryService(itineraryRepo, timelineRepo, packingRepo, budgetRepo, hasher)
			timelineService := service.NewTimelineService(timelineRepo)
			packingService := service.NewPackingService(packingRepo)
			budgetService := service.NewBudgetService(budgetRepo)
			authService := service.NewAuthService(userRepo, hasher, sessions)
			chatService := service.NewChatService(chatClient)

			h := handler.NewHandler(itineraryService, timelineService, packingService, budgetService, authService, chatService, logger)

			gin.SetMode(gin.ReleaseMode)
			router := gin.New()
			router.Use(gin.Recovery())
			h.RegisterRoutes(router)

			logger.Info("starting server", zap.String("port", cfg.Port), zap.String("db_driver", cfg.DB.Driver))
			return router.Run(":" + cfg.Port)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending SQL migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, db, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer db.Close()
			return database.Migrate(db, "migrations", logger)
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert a sample itinerary with starter items",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, db, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()
			defer db.Close()

			if err := database.Migrate(db, "migrations", logger); err != nil {
				return err
			}

			hasher := auth.NewBcryptHasher(0)
			itineraryService := service.NewItineraryService(
				repository.NewItineraryRepository(db),
				repository.NewTimelineRepository(db),
				repository.NewPackingRepository(db),
				repository.NewBudgetRepository(db),
				hasher,
			)
			it, err := itineraryService.SeedDefaults()
			if err != nil {
				return err
			}
			logger.Info("sample itinerary created", zap.String("id", it.ID))
			return nil
		},
	}
}

// setup loads the config, builds the logger and opens the database.
func setup() (*config.Config, *zap.Logger, *sqlx.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.LogLevel == "debug" {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zapCfg.Build()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	db, err := database.Connect(cfg.DB)
	if err != nil {
		logger.Sync()
		return nil, nil, nil, err
	}
	return cfg, logger, db, nil
}
