package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lunnorapp/lunnor_caixa/internal/amqp"
	"github.com/lunnorapp/lunnor_caixa/internal/core/services"
	"github.com/lunnorapp/lunnor_caixa/internal/export"
	"github.com/lunnorapp/lunnor_caixa/internal/handlers"
	"github.com/lunnorapp/lunnor_caixa/internal/middleware"
	"github.com/lunnorapp/lunnor_caixa/internal/notify"
	"github.com/lunnorapp/lunnor_caixa/internal/platform/config"
	"github.com/lunnorapp/lunnor_caixa/internal/repositories/database/pgsql"
	"github.com/lunnorapp/lunnor_caixa/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Lunnor Caixa API
// @version 1.0
// @description Personal finance backend: transactions, savings goals, Peace Fund, alerts and exports.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Optional outbound integrations. The API stays fully functional
	// without a broker or spreadsheet; those paths degrade gracefully.
	var publisher notify.Publisher = notify.NopPublisher{}
	if cfg.AMQPConfigured() {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPNotifyQueue)
		if err != nil {
			logger.Error("Failed to connect to AMQP broker", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer amqpClient.Close()
		publisher = amqpClient
		logger.Info("AMQP publisher initialized", slog.String("exchange", cfg.AMQPExchange))
	} else {
		logger.Info("AMQP not configured, fund movement notifications will be dropped")
	}

	var sheets export.SheetAppender
	if cfg.SheetsConfigured() {
		sheets = export.NewGoogleSheetAppender(cfg.GoogleSpreadsheetID, cfg.GoogleSheetRange, []byte(cfg.GoogleCredentialsJSON))
		logger.Info("Google Sheets export enabled", slog.String("spreadsheet_id", cfg.GoogleSpreadsheetID))
	} else {
		logger.Info("Google Sheets not configured, spreadsheet export disabled")
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	svcContainer := services.NewServiceContainer(repos, publisher, sheets)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, metrics, CORS, recovery)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		middleware.Metrics(),
		cors.Default(),
		gin.Recovery(),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, svcContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations from the migrations
// directory over a temporary database/sql connection.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
