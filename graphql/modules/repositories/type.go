// Package repositories defines the GraphQL types and queries for repository and commit data.
package repositories

import (
	"github.com/fourmile/fourmile-backend/model"
	"github.com/graphql-go/graphql"
)

var ErrorResultType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ErrorResult",
	Fields: graphql.Fields{
		"status": &graphql.Field{Type: graphql.Int},
		"stage":  &graphql.Field{Type: graphql.String},
		"error":  &graphql.Field{Type: graphql.String},
	},
})

var CommitSummaryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CommitSummary",
	Fields: graphql.Fields{
		"name":        &graphql.Field{Type: graphql.String},
		"commit_hash": &graphql.Field{Type: graphql.String},
		"commit_url":  &graphql.Field{Type: graphql.String},
	},
})

// RepositorySummaryType splits the authors union into two fields; exactly one is non-null
var RepositorySummaryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "RepositorySummary",
	Fields: graphql.Fields{
		"repository_name": &graphql.Field{Type: graphql.String},
		"star_count":      &graphql.Field{Type: graphql.Int},
		"repo_url":        &graphql.Field{Type: graphql.String},
		"authors": &graphql.Field{
			Type: graphql.NewList(CommitSummaryType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				summary, ok := p.Source.(model.RepositorySummary)
				if !ok || summary.Authors.Failed() {
					return nil, nil
				}
				return summary.Authors.Commits, nil
			},
		},
		"authors_error": &graphql.Field{
			Type: ErrorResultType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				summary, ok := p.Source.(model.RepositorySummary)
				if !ok || !summary.Authors.Failed() {
					return nil, nil
				}
				return summary.Authors.Err, nil
			},
		},
	},
})

var RepositoryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Repository",
	Fields: graphql.Fields{
		"full_name":        &graphql.Field{Type: graphql.String},
		"stargazers_count": &graphql.Field{Type: graphql.Int},
		"html_url":         &graphql.Field{Type: graphql.String},
	},
})

var SearchResultType = graphql.NewObject(graphql.ObjectConfig{
	Name: "SearchResult",
	Fields: graphql.Fields{
		"total_count":        &graphql.Field{Type: graphql.Int},
		"incomplete_results": &graphql.Field{Type: graphql.Boolean},
		"items":              &graphql.Field{Type: graphql.NewList(RepositoryType)},
	},
})
