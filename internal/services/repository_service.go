// Package services provides the aggregation logic behind the /api/data endpoint.
package services

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/fourmile/fourmile-backend/internal/metrics"
	"github.com/fourmile/fourmile-backend/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// GitHubAPI is the upstream surface the service depends on.
// *githubclient.Client implements it.
type GitHubAPI interface {
	GetRepositories(ctx context.Context, language string) (*model.SearchResult, error)
	GetCommits(ctx context.Context, repoFullName string) (*model.CommitList, error)
}

// RepositoryService combines repository search and commit listing into ranked summaries
type RepositoryService struct {
	api      GitHubAPI
	logger   *zap.Logger
	recorder metrics.Recorder

	// concurrency caps in-flight commit lookups per aggregation; 0 means unbounded
	concurrency int
}

// NewRepositoryService wires the service. A nil logger or recorder falls back to no-ops.
func NewRepositoryService(api GitHubAPI, logger *zap.Logger, recorder metrics.Recorder, concurrency int) *RepositoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &RepositoryService{api: api, logger: logger, recorder: recorder, concurrency: concurrency}
}

// GetRepositories passes through the raw search result for language
func (s *RepositoryService) GetRepositories(ctx context.Context, language string) (*model.SearchResult, error) {
	return s.api.GetRepositories(ctx, language)
}

// GetCommits passes through the raw commit list for repoFullName
func (s *RepositoryService) GetCommits(ctx context.Context, repoFullName string) (*model.CommitList, error) {
	return s.api.GetCommits(ctx, repoFullName)
}

// GetCustomizedRepositories returns the repoCount most starred repositories for language,
// each carrying at most commitCount of its latest commits.
//
// A search failure is returned as-is. A commit lookup failure for one repository does not
// fail the call: it is stored in that repository's Authors instead.
func (s *RepositoryService) GetCustomizedRepositories(ctx context.Context, language string, repoCount, commitCount int) ([]model.RepositorySummary, error) {
	start := time.Now()

	search, err := s.api.GetRepositories(ctx, language)
	if err != nil {
		s.recorder.ObserveAggregation(metrics.OutcomeFailed, 0, time.Since(start))
		return nil, err
	}

	repositories := topRepositories(search.Items, repoCount)

	g, gCtx := errgroup.WithContext(ctx)
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}
	for i := range repositories {
		i := i
		g.Go(func() error {
			repositories[i].Authors = s.customizedCommits(gCtx, repositories[i].RepositoryName, commitCount)
			return nil
		})
	}
	// goroutines never return an error; Wait is the join barrier
	_ = g.Wait()

	failed := 0
	for _, r := range repositories {
		if r.Authors.Failed() {
			failed++
		}
	}
	s.logger.Info("aggregated repositories",
		zap.String("language", language),
		zap.Int("repositories", len(repositories)),
		zap.Int("commit_failures", failed),
		zap.Duration("elapsed", time.Since(start)))
	s.recorder.ObserveAggregation(metrics.OutcomeSuccess, len(repositories), time.Since(start))

	return repositories, nil
}

// customizedCommits fetches the commits of one repository and trims them to commitCount.
func (s *RepositoryService) customizedCommits(ctx context.Context, repoFullName string, commitCount int) model.Authors {
	list, err := s.api.GetCommits(ctx, repoFullName)
	if err != nil {
		var er *model.ErrorResult
		if !errors.As(err, &er) {
			er = model.NewInternalError(err)
		}
		s.logger.Warn("commit lookup failed",
			zap.String("repository", repoFullName),
			zap.Int("status", er.Status),
			zap.String("error", er.Message))
		return model.FailedWith(er)
	}

	commits := list.Commits
	if commitCount < 0 {
		commitCount = 0
	}
	if len(commits) > commitCount {
		commits = commits[:commitCount]
	}
	summaries := make([]model.CommitSummary, 0, len(commits))
	for _, c := range commits {
		summaries = append(summaries, c.Summary())
	}
	return model.CommitsOf(summaries)
}

// topRepositories ranks items by star count, highest first, and maps the first n to summaries.
// Items with equal star counts keep their upstream order.
func topRepositories(items []model.RepositoryRecord, n int) []model.RepositorySummary {
	ranked := slices.Clone(items)
	slices.SortStableFunc(ranked, func(a, b model.RepositoryRecord) int {
		return b.StargazersCount - a.StargazersCount
	})
	if n < 0 {
		n = 0
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	summaries := make([]model.RepositorySummary, 0, len(ranked))
	for _, r := range ranked {
		summaries = append(summaries, model.RepositorySummary{
			RepositoryName: r.FullName,
			StarCount:      r.StargazersCount,
			RepoURL:        r.HTMLURL,
		})
	}
	return summaries
}
