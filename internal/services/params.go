package services

import (
	"fmt"
	"strings"

	"github.com/fourmile/fourmile-backend/model"
	"github.com/fourmile/fourmile-backend/util"
)

// DefaultLanguage is used when /api/data is called without a language
const DefaultLanguage = "javascript"

// DataParams are the validated inputs of an aggregation
type DataParams struct {
	Language    string
	RepoCount   int
	CommitCount int
}

// ParseDataParams validates the raw /api/data query values. Both counts are required and
// must be strictly positive integers; every offending parameter is named in the returned ErrorResult.
func ParseDataParams(language, repoCount, commitCount string) (DataParams, error) {
	p := DataParams{Language: strings.TrimSpace(language)}
	if p.Language == "" {
		p.Language = DefaultLanguage
	}

	var problems []string
	n, err := util.ParsePositiveInt(repoCount)
	if err != nil {
		problems = append(problems, fmt.Sprintf("repo_count must be a positive integer (%v)", err))
	}
	p.RepoCount = n

	n, err = util.ParsePositiveInt(commitCount)
	if err != nil {
		problems = append(problems, fmt.Sprintf("commit_count must be a positive integer (%v)", err))
	}
	p.CommitCount = n

	if len(problems) > 0 {
		return DataParams{}, model.NewValidationError(strings.Join(problems, "; "))
	}
	return p, nil
}

// ValidateCounts applies the same rules as ParseDataParams to already typed counts
func ValidateCounts(repoCount, commitCount int) error {
	var problems []string
	if repoCount <= 0 {
		problems = append(problems, fmt.Sprintf("repo_count must be a positive integer (%d is not positive)", repoCount))
	}
	if commitCount <= 0 {
		problems = append(problems, fmt.Sprintf("commit_count must be a positive integer (%d is not positive)", commitCount))
	}
	if len(problems) > 0 {
		return model.NewValidationError(strings.Join(problems, "; "))
	}
	return nil
}

// RequireParam rejects an empty query value
func RequireParam(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", model.NewValidationError(fmt.Sprintf("%s is required", name))
	}
	return value, nil
}
