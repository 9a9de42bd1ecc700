package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Sherlock2019/ontology-engine/pkg/config"
	"github.com/Sherlock2019/ontology-engine/pkg/handlers"
	"github.com/Sherlock2019/ontology-engine/pkg/middleware"
	"github.com/Sherlock2019/ontology-engine/pkg/ontology"
	"github.com/Sherlock2019/ontology-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("base_url", cfg.BaseURL),
		zap.Bool("seed_demo", cfg.Ontology.SeedDemo))

	// One registry per process: it owns the whole graph and is shared by
	// every request.
	registry, err := buildRegistry(cfg)
	if err != nil {
		logger.Fatal("Failed to build ontology registry", zap.Error(err))
	}
	logger.Info("Ontology registry ready", zap.Int("entities", registry.Len()))

	ontologyService := services.NewOntologyService(registry, logger)

	mux := http.NewServeMux()

	// Register handlers
	healthHandler := handlers.NewHealthHandler(cfg, logger)
	healthHandler.RegisterRoutes(mux)

	ontologyHandler := handlers.NewOntologyHandler(ontologyService, logger)
	ontologyHandler.RegisterRoutes(mux)

	server := middleware.RequestLogger(logger)(mux)

	logger.Info("Starting ontology-engine",
		zap.String("addr", cfg.Addr()),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(cfg.Addr(), server); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

// buildLogger constructs the process logger from config: human-readable in
// local development, JSON elsewhere.
func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	logConfig := zap.NewProductionConfig()
	if cfg.Env == "local" {
		logConfig = zap.NewDevelopmentConfig()
	}
	logConfig.Level = zap.NewAtomicLevelAt(level)
	return logConfig.Build()
}

// buildRegistry returns the process's graph: the fixed demo graph when
// configured, an empty registry otherwise.
func buildRegistry(cfg *config.Config) (*ontology.Registry, error) {
	if cfg.Ontology.SeedDemo {
		return ontology.BuildDemoGraph()
	}
	return ontology.NewRegistry(), nil
}
