package githubtrending

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func withSearchURL(t *testing.T, url string) {
	t.Helper()
	orig := searchURL
	searchURL = url
	t.Cleanup(func() { searchURL = orig })
}

func TestTrending_MapsSearchResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("sort"); got != "stars" {
			t.Errorf("expected sort=stars, got %q", got)
		}
		if got := r.URL.Query().Get("per_page"); got != "25" {
			t.Errorf("expected per_page=25, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items": [
			{"full_name": "fast/thing", "description": "A fast thing", "language": "Go", "stargazers_count": 3000, "html_url": "https://github.com/fast/thing"},
			{"full_name": "bare/thing", "description": "", "language": "", "stargazers_count": 90, "html_url": "https://github.com/bare/thing"}
		]}`))
	}))
	defer server.Close()
	withSearchURL(t, server.URL)

	repos := NewClient("").Trending(context.Background(), "Go")

	if len(repos) != 2 {
		t.Fatalf("expected 2 repos, got %d", len(repos))
	}
	first := repos[0]
	if first.FullName != "fast/thing" || first.Stars != 3000 {
		t.Errorf("unexpected first repo: %+v", first)
	}
	if first.TodayStars != 100 {
		t.Errorf("expected daily star estimate 100, got %d", first.TodayStars)
	}
	second := repos[1]
	if second.Description != "No description available" {
		t.Errorf("expected default description, got %q", second.Description)
	}
	if second.Language != "Go" {
		t.Errorf("expected requested language as default, got %q", second.Language)
	}
}

func TestTrending_SendsAuthHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer some-token" {
			t.Errorf("expected bearer token, got %q", got)
		}
		w.Write([]byte(`{"items": [{"full_name": "a/b", "stargazers_count": 1, "html_url": "u"}]}`))
	}))
	defer server.Close()
	withSearchURL(t, server.URL)

	NewClient("some-token").Trending(context.Background(), "")
}

func TestTrending_APIErrorUsesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "API rate limit exceeded"}`, http.StatusForbidden)
	}))
	defer server.Close()
	withSearchURL(t, server.URL)

	repos := NewClient("").Trending(context.Background(), "Go")

	if len(repos) != 1 || repos[0].FullName != "golang/go" {
		t.Errorf("expected the Go fallback repo, got %+v", repos)
	}
}

func TestTrending_EmptyResultUsesFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()
	withSearchURL(t, server.URL)

	repos := NewClient("").Trending(context.Background(), "Python")

	if len(repos) != 1 || repos[0].FullName != "python/cpython" {
		t.Errorf("expected the Python fallback repo, got %+v", repos)
	}
}

func TestFallbackRepos_NoFilter(t *testing.T) {
	repos := FallbackRepos("")
	if len(repos) != 5 {
		t.Fatalf("expected the full fallback list, got %d repos", len(repos))
	}
}

func TestFallbackRepos_CaseInsensitiveFilter(t *testing.T) {
	repos := FallbackRepos("typescript")
	if len(repos) != 2 {
		t.Fatalf("expected 2 TypeScript fallbacks, got %d", len(repos))
	}
	for _, repo := range repos {
		if repo.Language != "TypeScript" {
			t.Errorf("unexpected language %q", repo.Language)
		}
	}
}

func TestFallbackRepos_UnknownLanguage(t *testing.T) {
	if repos := FallbackRepos("Haskell"); len(repos) != 0 {
		t.Errorf("expected no fallbacks for Haskell, got %d", len(repos))
	}
}
