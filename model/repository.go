// Package model - RepositorySummary and CommitSummary are the reshaped views returned to the frontend.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CommitSummary is the trimmed view of a single upstream commit
type CommitSummary struct {
	Name       string `json:"name"`
	CommitHash string `json:"commit_hash"`
	CommitURL  string `json:"commit_url"`
}

// RepositorySummary is the trimmed view of a repository plus its latest commits
type RepositorySummary struct {
	RepositoryName string  `json:"repository_name"`
	StarCount      int     `json:"star_count"`
	RepoURL        string  `json:"repo_url"`
	Authors        Authors `json:"authors"`
}

// Authors holds either the commit summaries of a repository or the ErrorResult
// produced when its commits could not be fetched. Exactly one arm is meaningful:
// Err != nil marks the failure arm.
//
// On the wire the field is either a JSON array of CommitSummary or an ErrorResult object.
type Authors struct {
	Commits []CommitSummary
	Err     *ErrorResult
}

// CommitsOf returns the success arm of the union
func CommitsOf(commits []CommitSummary) Authors {
	if commits == nil {
		commits = []CommitSummary{}
	}
	return Authors{Commits: commits}
}

// FailedWith returns the failure arm of the union
func FailedWith(err *ErrorResult) Authors {
	return Authors{Err: err}
}

// Failed reports whether the commit lookup for this repository failed
func (a Authors) Failed() bool {
	return a.Err != nil
}

// MarshalJSON emits the array or the ErrorResult object
func (a Authors) MarshalJSON() ([]byte, error) {
	if a.Err != nil {
		return json.Marshal(a.Err)
	}
	if a.Commits == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a.Commits)
}

// UnmarshalJSON discriminates on the JSON shape: arrays are commits, objects are errors
func (a *Authors) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*a = Authors{}
		return nil
	}

	switch trimmed[0] {
	case '[':
		var commits []CommitSummary
		if err := json.Unmarshal(trimmed, &commits); err != nil {
			return err
		}
		*a = CommitsOf(commits)
	case '{':
		var e ErrorResult
		if err := json.Unmarshal(trimmed, &e); err != nil {
			return err
		}
		*a = FailedWith(&e)
	default:
		return fmt.Errorf("authors: unexpected JSON value starting with %q", trimmed[0])
	}
	return nil
}
