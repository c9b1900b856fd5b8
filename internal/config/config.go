// Package config loads process configuration from the environment and an optional .env file.
package config

import (
	"strconv"
	"strings"

	"github.com/fourmile/fourmile-backend/util"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Defaults
const (
	DefaultPort         = "8080"
	DefaultGitHubAPIURL = "https://api.github.com"
	DefaultAllowOrigins = "*"
)

// Config holds everything read from the environment at startup
type Config struct {
	GitHubToken  string
	GitHubAPIURL string
	Port         string
	AllowOrigins string

	// CommitFetchConcurrency caps in-flight commit fetches per aggregation. 0 means unbounded.
	CommitFetchConcurrency int
	MetricsEnabled         bool
}

// Load reads .env (if present) and then the process environment.
// Malformed numeric or boolean values fall back to their defaults with a warning.
func Load(logger *zap.Logger) *Config {
	_ = godotenv.Load()

	cfg := &Config{
		GitHubToken:  util.GetEnvDefault("GITHUB_TOKEN", ""),
		GitHubAPIURL: util.GetEnvDefault("GITHUB_API_URL", DefaultGitHubAPIURL),
		Port:         util.GetEnvDefault("MS_PORT", DefaultPort),
		AllowOrigins: util.GetEnvDefault("CORS_ALLOW_ORIGINS", DefaultAllowOrigins),
	}

	cfg.GitHubAPIURL = strings.TrimSuffix(cfg.GitHubAPIURL, "/")
	if cfg.GitHubAPIURL == "" {
		cfg.GitHubAPIURL = DefaultGitHubAPIURL
	}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}

	if raw := util.GetEnvDefault("COMMIT_FETCH_CONCURRENCY", "0"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			logger.Warn("ignoring invalid COMMIT_FETCH_CONCURRENCY", zap.String("value", raw))
			n = 0
		}
		cfg.CommitFetchConcurrency = n
	}

	cfg.MetricsEnabled = true
	if raw := util.GetEnvDefault("METRICS_ENABLED", ""); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			logger.Warn("ignoring invalid METRICS_ENABLED", zap.String("value", raw))
		} else {
			cfg.MetricsEnabled = enabled
		}
	}

	if cfg.GitHubToken == "" {
		logger.Warn("GITHUB_TOKEN is not set, upstream requests will use a low rate limit")
	}

	return cfg
}
