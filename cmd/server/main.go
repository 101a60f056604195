/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the discipline engine server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Initialize zap logger
  3. Initialize SQLite store
  4. Optionally seed a category taxonomy from a YAML file
  5. Create API handler with dependencies
  6. Configure HTTP router
  7. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 8080)
  -db      SQLite database path (default: discipline.db)
           Use ":memory:" for in-memory database
  -seed    Optional YAML category seed file loaded at startup

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close database connection
  4. Exit

EXAMPLES:
  # Run with file database
  ./server -db="./data/discipline.db"

  # Run with in-memory database and a custom taxonomy
  ./server -db=":memory:" -seed=./categories.yaml

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/weevi/discipline-engine/api"
	"github.com/weevi/discipline-engine/factory"
	"github.com/weevi/discipline-engine/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	dbPath := flag.String("db", "discipline.db", "SQLite database path")
	seedPath := flag.String("seed", "", "YAML category seed file (optional)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Initialize store
	store, err := sqlite.New(*dbPath)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer store.Close()

	// Seed taxonomy from file if requested
	if *seedPath != "" {
		raw, err := os.ReadFile(*seedPath)
		if err != nil {
			logger.Fatal("Failed to read seed file", zap.Error(err))
		}
		orgID, categories, err := factory.ParseCategorySeed(raw)
		if err != nil {
			logger.Fatal("Invalid seed file", zap.Error(err))
		}
		ctx := context.Background()
		for _, cat := range categories {
			if err := store.PutCategory(ctx, cat); err != nil {
				logger.Fatal("Failed to seed category",
					zap.String("category", string(cat.ID)), zap.Error(err))
			}
		}
		logger.Info("seeded categories",
			zap.String("org_id", string(orgID)),
			zap.Int("count", len(categories)))
	}

	// Initialize handler and router
	handler := api.NewHandler(store, logger)
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server starting", zap.Int("port", *port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
