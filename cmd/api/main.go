package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	accountUseCase "github.com/amirhossein-jamali/finance-ledger/internal/domain/usecase/account"
	budgetUseCase "github.com/amirhossein-jamali/finance-ledger/internal/domain/usecase/budget"
	ledgerUseCase "github.com/amirhossein-jamali/finance-ledger/internal/domain/usecase/ledger"
	userUseCase "github.com/amirhossein-jamali/finance-ledger/internal/domain/usecase/user"

	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/bootstrap"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Production: cfg.Environment == config.Production,
		Level:      cfg.Logger.Level,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	defer appLogger.Flush()

	tp := timeProvider.NewRealTimeProvider()

	dbManager, err := bootstrap.OpenDatabase(context.Background(), cfg, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to prepare database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Unit of work (transaction manager)
	uow := dbManager.CreateUnitOfWork()

	location, err := cfg.Alert.Location()
	if err != nil {
		appLogger.Error("Invalid alert timezone", map[string]any{
			"timezone": cfg.Alert.Timezone,
			"error":    err.Error(),
		})
		os.Exit(1)
	}

	// Initialize use cases
	users := userUseCase.NewUserUseCase(repository.NewUserRepository(dbManager.DB(), appLogger), tp, appLogger)
	accounts := accountUseCase.NewAccountUseCase(uow, tp, appLogger)
	ledger := ledgerUseCase.NewLedgerUseCase(uow, tp, appLogger)
	budgets := budgetUseCase.NewBudgetUseCase(uow, tp, appLogger, location)

	if cfg.Database.SeedDemoData {
		if err := migration.CreateDefaultUsers(context.Background(), users, accounts); err != nil {
			appLogger.Error("Failed to create default users", map[string]any{
				"error": err.Error(),
			})
		}
	}

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, cfg.Server.AllowedOrigins, cfg.Server.RequestTimeout)
	routes.SetupRoutes(router, routes.Handlers{
		Health:      handler.NewHealthHandler(dbManager, appLogger),
		User:        handler.NewUserHandler(users, appLogger),
		Account:     handler.NewAccountHandler(accounts, appLogger),
		Transaction: handler.NewTransactionHandler(ledger, appLogger),
		Budget:      handler.NewBudgetHandler(budgets, appLogger),
	}, users, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	if cfg.Alert.Enabled {
		scheduler, closeNotifier, err := bootstrap.NewAlertScheduler(cfg, uow, dbManager.DB(), location, appLogger, tp)
		if err != nil {
			appLogger.Error("Failed to prepare budget alerts", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		defer closeNotifier()

		group.Go(func() error {
			scheduler.Run(groupCtx)
			return nil
		})
	} else {
		appLogger.Info("Budget alert scheduler disabled", nil)
	}

	// Wait for a signal or a failing component, then drain the server
	group.Go(func() error {
		<-groupCtx.Done()
		appLogger.Info("Shutting down server...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("Server forced to shutdown", map[string]any{
				"error": err.Error(),
			})
			return err
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		appLogger.Error("Server stopped with error", map[string]any{
			"error": err.Error(),
		})
		return
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if err := bootstrap.ValidateDatabaseConfig(cfg); err != nil {
		return err
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		if cfg.Database.Driver == database.DriverPostgres {
			sslMode := strings.ToLower(cfg.Database.SSLMode)
			if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
				warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
			}
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Notification.AMQPURL == "" {
			warnings = append(warnings, "notification.amqpUrl is empty, budget alerts will only be logged")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
