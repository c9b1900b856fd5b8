// Package model - API types for combining models in API responses
package model

// DataResponse is the body of a successful /api/data request
type DataResponse struct {
	Language    string              `json:"language"`
	CommitCount int                 `json:"commit_count"`
	RepoCount   int                 `json:"repo_count"`
	Results     []RepositorySummary `json:"results"`
}

// EndpointInfo describes one route in the discovery payload
type EndpointInfo struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// HelpResponse is the static discovery payload served for unknown paths
type HelpResponse struct {
	Message               string         `json:"message"`
	SampleDataURL         string         `json:"sampleDataUrl"`
	SampleRepositoriesURL string         `json:"sampleRepositoriesUrl"`
	SampleCommitsURL      string         `json:"sampleCommitsUrl"`
	Endpoints             []EndpointInfo `json:"endpoints"`
}
