package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("MS_PORT", "")
	t.Setenv("GITHUB_API_URL", DefaultGitHubAPIURL)
	t.Setenv("CORS_ALLOW_ORIGINS", DefaultAllowOrigins)
	t.Setenv("COMMIT_FETCH_CONCURRENCY", "")
	t.Setenv("METRICS_ENABLED", "")

	cfg := Load(zap.NewNop())
	assert.Equal(t, "", cfg.GitHubToken)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultGitHubAPIURL, cfg.GitHubAPIURL)
	assert.Equal(t, "*", cfg.AllowOrigins)
	assert.Equal(t, 0, cfg.CommitFetchConcurrency)
	assert.True(t, cfg.MetricsEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "abc")
	t.Setenv("MS_PORT", "9090")
	t.Setenv("GITHUB_API_URL", "http://localhost:1234/")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000")
	t.Setenv("COMMIT_FETCH_CONCURRENCY", "4")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := Load(zap.NewNop())
	assert.Equal(t, "abc", cfg.GitHubToken)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://localhost:1234", cfg.GitHubAPIURL)
	assert.Equal(t, "http://localhost:3000", cfg.AllowOrigins)
	assert.Equal(t, 4, cfg.CommitFetchConcurrency)
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("COMMIT_FETCH_CONCURRENCY", "-1")
	t.Setenv("METRICS_ENABLED", "maybe")

	cfg := Load(zap.NewNop())
	assert.Equal(t, 0, cfg.CommitFetchConcurrency)
	assert.True(t, cfg.MetricsEnabled)
}
