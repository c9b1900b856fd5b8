// Package github provides GitHub integration types for the REST API.
package github

import (
	"context"

	"github.com/fourmile/fourmile-backend/model"
)

// RepositoryService is the service surface the handlers depend on.
// *services.RepositoryService implements it.
type RepositoryService interface {
	GetCustomizedRepositories(ctx context.Context, language string, repoCount, commitCount int) ([]model.RepositorySummary, error)
	GetRepositories(ctx context.Context, language string) (*model.SearchResult, error)
	GetCommits(ctx context.Context, repoFullName string) (*model.CommitList, error)
}
