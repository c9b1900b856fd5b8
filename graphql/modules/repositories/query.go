package repositories

import (
	"github.com/fourmile/fourmile-backend/internal/services"
	"github.com/graphql-go/graphql"
)

// GetQueryFields returns the repository query fields backed by svc
func GetQueryFields(svc Service) graphql.Fields {
	return graphql.Fields{
		"repositories": &graphql.Field{
			Type: graphql.NewList(RepositorySummaryType),
			Args: graphql.FieldConfigArgument{
				"language":    &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: services.DefaultLanguage},
				"repoCount":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"commitCount": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				language, _ := p.Args["language"].(string)
				repoCount := p.Args["repoCount"].(int)
				commitCount := p.Args["commitCount"].(int)
				return ResolveRepositories(p.Context, svc, language, repoCount, commitCount)
			},
		},
		"searchRepositories": &graphql.Field{
			Type: SearchResultType,
			Args: graphql.FieldConfigArgument{
				"language": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				language := p.Args["language"].(string)
				return ResolveSearchRepositories(p.Context, svc, language)
			},
		},
		"commits": &graphql.Field{
			Type: graphql.NewList(CommitSummaryType),
			Args: graphql.FieldConfigArgument{
				"repo": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				repo := p.Args["repo"].(string)
				return ResolveCommits(p.Context, svc, repo)
			},
		},
	}
}
