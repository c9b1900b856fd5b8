// Package restapi provides the main router and initialization for REST API endpoints.
package restapi

import (
	"github.com/fourmile/fourmile-backend/model"
	"github.com/fourmile/fourmile-backend/restapi/modules/github"
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

// Help is the static discovery payload served for every unknown path
var Help = model.HelpResponse{
	Message:               "GitHub repository and commit digest API",
	SampleDataURL:         "/api/data?language=python&repo_count=10&commit_count=30",
	SampleRepositoriesURL: "/api/repositories?language=ruby",
	SampleCommitsURL:      "/api/commits?repo=vuejs/vue",
	Endpoints: []model.EndpointInfo{
		{Method: fiber.MethodGet, Path: "/api/data", Description: "Top starred repositories for a language with their latest commits (language, repo_count, commit_count)"},
		{Method: fiber.MethodGet, Path: "/api/repositories", Description: "Raw GitHub repository search result for a language (language)"},
		{Method: fiber.MethodGet, Path: "/api/commits", Description: "Raw GitHub commit list for a repository (repo=owner/name)"},
		{Method: fiber.MethodPost, Path: "/api/graphql", Description: "GraphQL queries: repositories, searchRepositories, commits"},
	},
}

// SetupRoutes configures all REST API routes, the GraphQL endpoint and the help fallback.
// The fallback matches every path, so it must be registered last.
func SetupRoutes(app *fiber.App, svc github.RepositoryService, schema graphql.Schema, logger *zap.Logger) {
	api := app.Group("/api")

	api.Get("/data", github.GetData(svc))
	api.Get("/repositories", github.GetRepositories(svc))
	api.Get("/commits", github.GetCommits(svc))

	api.Post("/graphql", GraphQLHandler(schema))

	app.Use(func(c *fiber.Ctx) error {
		return c.JSON(Help)
	})

	logger.Info("API routes initialized successfully")
}
