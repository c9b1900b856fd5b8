// Package githubclient wraps the GitHub REST endpoints used by the backend:
// repository search and per-repository commit listing.
package githubclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fourmile/fourmile-backend/internal/metrics"
	"github.com/fourmile/fourmile-backend/model"
	"github.com/fourmile/fourmile-backend/util"
	"go.uber.org/zap"
)

// Media types sent in the Accept header
const (
	AcceptV3JSON     = "application/vnd.github.v3+json"
	AcceptCloakJSON  = "application/vnd.github.cloak-preview+json"
	hintInvalidLang  = "Invalid language"
	hintCannotAccess = "Cannot access repo"
)

// Client issues authenticated GET requests against the GitHub REST API and
// converts every failure into a *model.ErrorResult.
type Client struct {
	http     *http.Client
	baseURL  string
	token    string
	logger   *zap.Logger
	recorder metrics.Recorder
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for upstream failures
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithRecorder sets the metrics recorder
func WithRecorder(r metrics.Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

// NewClient creates a client for baseURL authenticated with token.
// An empty token sends unauthenticated requests.
// The default http.Client has no timeout; a hung upstream call blocks its caller.
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		http:     &http.Client{},
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		token:    token,
		logger:   zap.NewNop(),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch performs a GET on url with the given Accept header and decodes the JSON body into v.
// Any failure is returned as a *model.ErrorResult tagged with stage; its message is hint
// joined with the upstream status text.
func (c *Client) Fetch(ctx context.Context, url, accept, stage, hint string, v any) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.NewUpstreamError(http.StatusInternalServerError, stage, hint, err.Error())
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}
	req.Header.Set("Accept", accept)

	resp, err := c.http.Do(req)
	if err != nil {
		c.recorder.ObserveUpstreamRequest(stage, http.StatusBadGateway, time.Since(start))
		c.logger.Warn("upstream request failed", zap.String("stage", stage), zap.String("url", url), zap.Error(err))
		return model.NewUpstreamError(http.StatusBadGateway, stage, hint, transportCause(err).Error())
	}
	defer func() { _ = resp.Body.Close() }()

	c.recorder.ObserveUpstreamRequest(stage, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.Warn("upstream returned error status",
			zap.String("stage", stage),
			zap.String("url", url),
			zap.Int("status", resp.StatusCode))
		return model.NewUpstreamError(resp.StatusCode, stage, hint, statusText(resp))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		c.logger.Warn("upstream returned undecodable body", zap.String("stage", stage), zap.Error(err))
		return model.NewUpstreamError(http.StatusBadGateway, stage, hint, "invalid response body")
	}
	return nil
}

// GetRepositories searches repositories written in language, sorted by stars.
func (c *Client) GetRepositories(ctx context.Context, language string) (*model.SearchResult, error) {
	q := util.BuildSearchQuery([][2]string{{"language", language}, {"sort", "stars"}})
	url := fmt.Sprintf("%s/search/repositories?q=%s", c.baseURL, q)

	var result model.SearchResult
	if err := c.Fetch(ctx, url, AcceptV3JSON, model.StageSearchRepositories, hintInvalidLang, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetCommits lists the commits of the repository identified by its owner/name full name.
func (c *Client) GetCommits(ctx context.Context, repoFullName string) (*model.CommitList, error) {
	url := fmt.Sprintf("%s/repos/%s/commits", c.baseURL, util.EscapeRepoPath(repoFullName))

	var commits model.CommitList
	if err := c.Fetch(ctx, url, AcceptCloakJSON, model.StageListCommits, hintCannotAccess, &commits); err != nil {
		return nil, err
	}
	return &commits, nil
}

// statusText returns the reason phrase of the response, e.g. "Not Found".
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// transportCause strips the request URL from a client error so callers never see
// the upstream address or query string.
func transportCause(err error) error {
	var ue *neturl.Error
	if errors.As(err, &ue) && ue.Err != nil {
		return ue.Err
	}
	return err
}
