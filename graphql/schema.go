// Package graphql assembles the GraphQL schema served on /api/graphql.
package graphql

import (
	"github.com/fourmile/fourmile-backend/graphql/modules/repositories"
	"github.com/graphql-go/graphql"
)

// CreateSchema assembles the complete GraphQL schema from all modules
func CreateSchema(svc repositories.Service) (graphql.Schema, error) {
	queryFields := graphql.Fields{}

	// Add repository queries (repositories, searchRepositories, commits)
	for k, v := range repositories.GetQueryFields(svc) {
		queryFields[k] = v
	}

	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: queryFields,
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: rootQuery,
	})
}
