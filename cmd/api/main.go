package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"budgetbook/internal/config"
	"budgetbook/internal/database"
	"budgetbook/internal/logger"
	"budgetbook/internal/seed"
	"budgetbook/internal/server"
	"budgetbook/internal/services"
	"budgetbook/internal/validator"
)

// @title           budgetbook API
// @version         1.0
// @description     budgetbook is a household zero-based budgeting ledger: transactions, monthly plans, reconciliation and net worth.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey APIKeyAuth
// @in header
// @name X-API-Key
// @description Shared household API key.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()
	svc := server.NewServices(dbManager.DB())

	if appConfig.SeedDefaults {
		household, err := seed.Default()
		if err != nil {
			return fmt.Errorf("failed to load default household: %w", err)
		}
		seeder := seed.NewSeeder(svc.Taxonomy, svc.Assets, svc.Goals)
		result, err := seeder.Apply(household, "")
		if err != nil {
			return fmt.Errorf("failed to seed default household: %w", err)
		}
		if result.Changed() {
			svc.Audit.Log(services.DefaultActor, "SEED_HOUSEHOLD", "household", "default", "startup", result.AuditChanges())
		}
	}

	if appConfig.APIKey == "" {
		log.Warn("API_KEY is not set; /api/v1 accepts unauthenticated requests")
	}

	router := server.NewRouter(svc, appConfig.APIKey)

	log.Infof("Starting budgetbook server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
