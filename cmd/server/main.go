package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v2"
	"github.com/joho/godotenv"

	"tasklists/application"
	"tasklists/database"
	"tasklists/domain/contracts"
	"tasklists/infrastructure/config"
	"tasklists/infrastructure/repositories"
	"tasklists/interfaces/web/handlers"
	"tasklists/interfaces/web/presenters"
	"tasklists/logging"
)

func main() {
	loadEnvironment()
	cfg := config.LoadAppConfigFromEnv()

	logger := initializeLogging(cfg)

	db := initializeDatabase(cfg, logger)
	defer db.Close()

	deps := buildDependencies(db, logger)

	router := setupRoutes(deps, cfg)
	startServer(router, cfg.HTTPAddr, logger)
}

// Dependencies holds all application dependencies organized by layer
type Dependencies struct {
	DB     *database.Database
	Logger *logging.Logger

	TaskListRepo contracts.TaskListRepository

	TaskListService *application.TaskListService

	TaskListPresenter *presenters.TaskListPresenter
	TaskListHandlers  *handlers.TaskListHandlers
}

func loadEnvironment() {
	if err := godotenv.Load(); err != nil {
		println("No .env file found, using environment variables")
	} else {
		println("Loaded configuration from .env file")
	}
}

func initializeLogging(cfg *config.AppConfig) *logging.Logger {
	logger := logging.NewLogger(cfg.Logging)
	logging.SetDefault(logger)

	logger.Info("Application starting",
		"http_addr", cfg.HTTPAddr,
		"log_level", cfg.Logging.Level,
		"log_format", cfg.Logging.Format,
		"db_path", cfg.Database.Path,
	)

	return logger
}

func initializeDatabase(cfg *config.AppConfig, logger *logging.Logger) *database.Database {
	db, err := database.New(*cfg.Database, logger)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	return db
}

// buildDependencies wires repositories, services and handlers
func buildDependencies(db *database.Database, logger *logging.Logger) *Dependencies {
	taskListRepo := repositories.NewSqliteTaskListRepository(db)
	taskListService := application.NewTaskListService(taskListRepo)
	taskListPresenter := presenters.NewTaskListPresenter()
	taskListHandlers := handlers.NewTaskListHandlers(taskListService, taskListPresenter)

	return &Dependencies{
		DB:                db,
		Logger:            logger,
		TaskListRepo:      taskListRepo,
		TaskListService:   taskListService,
		TaskListPresenter: taskListPresenter,
		TaskListHandlers:  taskListHandlers,
	}
}

func setupRoutes(deps *Dependencies, cfg *config.AppConfig) *chi.Mux {
	r := chi.NewRouter()

	setupHTTPLogging(r, deps, cfg)
	r.Use(middleware.Recoverer)

	setupSystemRoutes(r, deps)

	r.Mount("/api/tasklist", deps.TaskListHandlers.Routes())

	return r
}

func setupHTTPLogging(r *chi.Mux, deps *Dependencies, cfg *config.AppConfig) {
	if cfg.HTTPLogPath == "" {
		// No HTTP logging configured, skip
		return
	}

	logFile, err := os.OpenFile(cfg.HTTPLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		deps.Logger.Error("Failed to open HTTP log file", "error", err, "path", cfg.HTTPLogPath)
		return
	}
	// Note: logFile is not closed here as it needs to stay open for the server lifetime

	httpLogger := httplog.NewLogger("tasklists", httplog.Options{
		Writer: logFile,
		JSON:   true,
	})
	r.Use(httplog.RequestLogger(httpLogger))

	deps.Logger.Info("HTTP request logging enabled", "path", cfg.HTTPLogPath)
}

func setupSystemRoutes(r *chi.Mux, deps *Dependencies) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		stats, err := deps.DB.Health()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		response := map[string]interface{}{
			"status":   "ok",
			"database": stats,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	})
}

func startServer(router *chi.Mux, addr string, logger *logging.Logger) {
	server := &http.Server{Addr: addr, Handler: router}

	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sig
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(serverCtx, 30*time.Second)
		defer cancel()

		go func() {
			<-shutdownCtx.Done()
			if shutdownCtx.Err() == context.DeadlineExceeded {
				logger.Error("Graceful shutdown timed out, forcing exit")
				os.Exit(1)
			}
		}()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
			os.Exit(1)
		}
		serverStopCtx()
	}()

	logger.Info("Server starting", "address", addr)
	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}

	<-serverCtx.Done()
	logger.Info("Server stopped")
}
