// package main provides the entry point for the fourmile-backend microservice, which
// reshapes GitHub repository search and commit data for the frontend.
package main

import (
	"github.com/fourmile/fourmile-backend/internal/api"
	"github.com/fourmile/fourmile-backend/internal/config"
	"github.com/fourmile/fourmile-backend/internal/githubclient"
	"github.com/fourmile/fourmile-backend/internal/metrics"
	"github.com/fourmile/fourmile-backend/internal/services"
	"github.com/fourmile/fourmile-backend/util"
	"go.uber.org/zap"
)

func main() {
	logger := util.InitLogger()
	defer func() { _ = logger.Sync() }()

	cfg := config.Load(logger)

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var prom *metrics.PrometheusRecorder
	if cfg.MetricsEnabled {
		prom = metrics.NewPrometheusRecorder(nil)
		recorder = prom
	}

	client := githubclient.NewClient(cfg.GitHubAPIURL, cfg.GitHubToken,
		githubclient.WithLogger(logger),
		githubclient.WithRecorder(recorder))
	svc := services.NewRepositoryService(client, logger, recorder, cfg.CommitFetchConcurrency)

	app, err := api.NewFiberApp(cfg, svc, prom, logger)
	if err != nil {
		logger.Fatal("Failed to create app", zap.Error(err))
	}

	// Start server
	logger.Info("Starting server", zap.String("port", cfg.Port), zap.String("github_api", cfg.GitHubAPIURL))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
