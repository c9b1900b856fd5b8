// Package github provides GitHub integration handlers for the REST API.
package github

import (
	"errors"

	"github.com/fourmile/fourmile-backend/internal/services"
	"github.com/fourmile/fourmile-backend/model"
	"github.com/gofiber/fiber/v2"
)

// GetData returns the most starred repositories for a language with their latest commits
func GetData(svc RepositoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params, err := services.ParseDataParams(c.Query("language"), c.Query("repo_count"), c.Query("commit_count"))
		if err != nil {
			return RenderError(c, err)
		}

		results, err := svc.GetCustomizedRepositories(c.UserContext(), params.Language, params.RepoCount, params.CommitCount)
		if err != nil {
			return RenderError(c, err)
		}

		return c.JSON(model.DataResponse{
			Language:    params.Language,
			CommitCount: params.CommitCount,
			RepoCount:   params.RepoCount,
			Results:     results,
		})
	}
}

// GetRepositories returns the raw GitHub search result for a language
func GetRepositories(svc RepositoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		language, err := services.RequireParam("language", c.Query("language"))
		if err != nil {
			return RenderError(c, err)
		}

		result, err := svc.GetRepositories(c.UserContext(), language)
		if err != nil {
			return RenderError(c, err)
		}
		return c.JSON(result)
	}
}

// GetCommits returns the raw GitHub commit list of a repository
func GetCommits(svc RepositoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		repo, err := services.RequireParam("repo", c.Query("repo"))
		if err != nil {
			return RenderError(c, err)
		}

		commits, err := svc.GetCommits(c.UserContext(), repo)
		if err != nil {
			return RenderError(c, err)
		}
		return c.JSON(commits)
	}
}

// RenderError writes err as an ErrorResult body. The response is always HTTP 200;
// clients tell failures apart by the body, whose status field carries the real code.
func RenderError(c *fiber.Ctx, err error) error {
	var er *model.ErrorResult
	if !errors.As(err, &er) {
		er = model.NewInternalError(err)
	}
	return c.JSON(er)
}
