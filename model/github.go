// Package model - upstream GitHub records decoded from the search and commits endpoints.
package model

import "encoding/json"

// RepositoryRecord is the subset of a GitHub repository record used for ranking
type RepositoryRecord struct {
	FullName        string `json:"full_name"`
	StargazersCount int    `json:"stargazers_count"`
	HTMLURL         string `json:"html_url"`
}

// SearchResult is the decoded /search/repositories document.
// The raw upstream bytes are retained so the document can be re-emitted untouched.
type SearchResult struct {
	TotalCount        int                `json:"total_count"`
	IncompleteResults bool               `json:"incomplete_results"`
	Items             []RepositoryRecord `json:"items"`

	raw json.RawMessage
}

type searchResultAlias SearchResult

// UnmarshalJSON decodes the typed fields and keeps a copy of the raw document
func (s *SearchResult) UnmarshalJSON(data []byte) error {
	var alias searchResultAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*s = SearchResult(alias)
	s.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON re-emits the upstream document when one was decoded
func (s SearchResult) MarshalJSON() ([]byte, error) {
	if s.raw != nil {
		return s.raw, nil
	}
	return json.Marshal(searchResultAlias(s))
}

// CommitRecord is the subset of a GitHub commit record used for projection
type CommitRecord struct {
	SHA    string `json:"sha"`
	Commit struct {
		Author struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"author"`
		Tree struct {
			SHA string `json:"sha"`
		} `json:"tree"`
		URL string `json:"url"`
	} `json:"commit"`
}

// Summary projects the record into a CommitSummary
func (r CommitRecord) Summary() CommitSummary {
	return CommitSummary{
		Name:       r.Commit.Author.Name,
		CommitHash: r.Commit.Tree.SHA,
		CommitURL:  r.Commit.URL,
	}
}

// CommitList is the decoded /repos/{repo}/commits document, raw bytes retained
type CommitList struct {
	Commits []CommitRecord

	raw json.RawMessage
}

// UnmarshalJSON decodes the commit array and keeps a copy of the raw document
func (l *CommitList) UnmarshalJSON(data []byte) error {
	var commits []CommitRecord
	if err := json.Unmarshal(data, &commits); err != nil {
		return err
	}
	l.Commits = commits
	l.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON re-emits the upstream document when one was decoded
func (l CommitList) MarshalJSON() ([]byte, error) {
	if l.raw != nil {
		return l.raw, nil
	}
	if l.Commits == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.Commits)
}
