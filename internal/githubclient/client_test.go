package githubclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fourmile/fourmile-backend/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRepositories_SendsQueryAndHeaders(t *testing.T) {
	var gotPath, gotQuery, gotAuth, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte(`{"total_count":2,"incomplete_results":false,"items":[{"full_name":"a/b","stargazers_count":5,"html_url":"https://github.com/a/b","extra":"kept"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	res, err := c.GetRepositories(context.Background(), "python")
	require.NoError(t, err)

	assert.Equal(t, "/search/repositories", gotPath)
	assert.Equal(t, "q=language:python+sort:stars", gotQuery)
	assert.Equal(t, "Token secret", gotAuth)
	assert.Equal(t, AcceptV3JSON, gotAccept)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "a/b", res.Items[0].FullName)
	assert.Equal(t, 5, res.Items[0].StargazersCount)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"extra":"kept"`)
}

func TestGetRepositories_EscapesLanguage(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").GetRepositories(context.Background(), "c++")
	require.NoError(t, err)
	assert.Equal(t, "q=language:c%2B%2B+sort:stars", gotQuery)
}

func TestGetRepositories_LanguageWithSpace(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").GetRepositories(context.Background(), "visual basic")
	require.NoError(t, err)
	assert.Equal(t, "q=language:visual%20basic+sort:stars", gotQuery)
}

func TestGetRepositories_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "t").GetRepositories(context.Background(), "nope")
	require.Error(t, err)

	var er *model.ErrorResult
	require.True(t, errors.As(err, &er))
	assert.Equal(t, http.StatusUnprocessableEntity, er.Status)
	assert.Equal(t, model.StageSearchRepositories, er.Stage)
	assert.Equal(t, "Invalid language,Unprocessable Entity", er.Message)
}

func TestGetCommits_PathAndAccept(t *testing.T) {
	var gotPath, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		_, _ = w.Write([]byte(`[{"sha":"1","commit":{"author":{"name":"Ada"},"tree":{"sha":"t1"},"url":"https://api.github.com/c/1"}}]`))
	}))
	defer srv.Close()

	list, err := NewClient(srv.URL, "t").GetCommits(context.Background(), "vuejs/vue")
	require.NoError(t, err)

	assert.Equal(t, "/repos/vuejs/vue/commits", gotPath)
	assert.Equal(t, AcceptCloakJSON, gotAccept)
	require.Len(t, list.Commits, 1)
	assert.Equal(t, model.CommitSummary{Name: "Ada", CommitHash: "t1", CommitURL: "https://api.github.com/c/1"}, list.Commits[0].Summary())
}

func TestGetCommits_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "t").GetCommits(context.Background(), "ghost/repo")

	var er *model.ErrorResult
	require.True(t, errors.As(err, &er))
	assert.Equal(t, http.StatusNotFound, er.Status)
	assert.Equal(t, model.StageListCommits, er.Stage)
	assert.Equal(t, "Cannot access repo,Not Found", er.Message)
}

func TestFetch_NoTokenOmitsAuthorization(t *testing.T) {
	var hadAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "").GetCommits(context.Background(), "a/b")
	require.NoError(t, err)
	assert.False(t, hadAuth)
}

func TestFetch_InvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "t").GetCommits(context.Background(), "a/b")

	var er *model.ErrorResult
	require.True(t, errors.As(err, &er))
	assert.Equal(t, http.StatusBadGateway, er.Status)
	assert.Equal(t, "Cannot access repo,invalid response body", er.Message)
}

func TestFetch_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, "t").GetRepositories(context.Background(), "go")

	var er *model.ErrorResult
	require.True(t, errors.As(err, &er))
	assert.Equal(t, http.StatusBadGateway, er.Status)
	assert.Equal(t, model.StageSearchRepositories, er.Stage)
	assert.Contains(t, er.Message, "Invalid language,")
	assert.NotContains(t, er.Message, url)
	assert.NotContains(t, er.Message, "search/repositories")
	assert.NotContains(t, er.Message, "language:go")
}
