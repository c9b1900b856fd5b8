package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/fourmile/fourmile-backend/internal/services"
	"github.com/fourmile/fourmile-backend/model"
)

// Service is the service surface the resolvers depend on
type Service interface {
	GetCustomizedRepositories(ctx context.Context, language string, repoCount, commitCount int) ([]model.RepositorySummary, error)
	GetRepositories(ctx context.Context, language string) (*model.SearchResult, error)
	GetCommits(ctx context.Context, repoFullName string) (*model.CommitList, error)
}

// resultError exposes an ErrorResult's status and stage as GraphQL error extensions
type resultError struct {
	*model.ErrorResult
}

func (e resultError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"status": e.Status,
		"stage":  e.Stage,
	}
}

func toGraphQLError(err error) error {
	var er *model.ErrorResult
	if errors.As(err, &er) {
		return resultError{er}
	}
	return err
}

// ResolveRepositories runs the aggregation for the repositories query
func ResolveRepositories(ctx context.Context, svc Service, language string, repoCount, commitCount int) ([]model.RepositorySummary, error) {
	if err := services.ValidateCounts(repoCount, commitCount); err != nil {
		return nil, toGraphQLError(err)
	}
	language = strings.TrimSpace(language)
	if language == "" {
		language = services.DefaultLanguage
	}

	results, err := svc.GetCustomizedRepositories(ctx, language, repoCount, commitCount)
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return results, nil
}

// ResolveSearchRepositories returns the typed search result for a language
func ResolveSearchRepositories(ctx context.Context, svc Service, language string) (*model.SearchResult, error) {
	language, err := services.RequireParam("language", language)
	if err != nil {
		return nil, toGraphQLError(err)
	}

	result, err := svc.GetRepositories(ctx, language)
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return result, nil
}

// ResolveCommits returns every commit of a repository projected to CommitSummary
func ResolveCommits(ctx context.Context, svc Service, repo string) ([]model.CommitSummary, error) {
	repo, err := services.RequireParam("repo", repo)
	if err != nil {
		return nil, toGraphQLError(err)
	}

	list, err := svc.GetCommits(ctx, repo)
	if err != nil {
		return nil, toGraphQLError(err)
	}

	summaries := make([]model.CommitSummary, 0, len(list.Commits))
	for _, c := range list.Commits {
		summaries = append(summaries, c.Summary())
	}
	return summaries, nil
}
