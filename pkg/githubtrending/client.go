package githubtrending

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"trendwatch-backend/internal/digest/domain"
)

var searchURL = "https://api.github.com/search/repositories"

// Client fetches trending repository candidates from the GitHub search
// API: repositories created in the last week, ordered by stars.
type Client struct {
	token      string
	httpClient *http.Client
}

// NewClient creates a GitHub trending client. The token is optional and
// only raises the API rate limit.
func NewClient(token string) *Client {
	return &Client{
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Trending returns candidate repositories for the language (empty means
// all languages). It never fails: on any API error or empty result it
// returns the fixed fallback list so callers always have data.
func (c *Client) Trending(ctx context.Context, language string) []domain.TrendingRepo {
	repos, err := c.search(ctx, language)
	if err != nil {
		log.Printf("[GitHub] Search failed for %q: %v, using fallback list", language, err)
		return FallbackRepos(language)
	}
	if len(repos) == 0 {
		log.Printf("[GitHub] No results for %q, using fallback list", language)
		return FallbackRepos(language)
	}
	return repos
}

type searchResponse struct {
	Items []struct {
		FullName        string `json:"full_name"`
		Description     string `json:"description"`
		Language        string `json:"language"`
		StargazersCount int    `json:"stargazers_count"`
		HTMLURL         string `json:"html_url"`
	} `json:"items"`
}

func (c *Client) search(ctx context.Context, language string) ([]domain.TrendingRepo, error) {
	lastWeek := time.Now().AddDate(0, 0, -7).Format("2006-01-02")
	query := "created:>" + lastWeek
	if language != "" {
		query += " language:" + language
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("sort", "stars")
	params.Set("order", "desc")
	params.Set("per_page", "25")

	req, err := http.NewRequestWithContext(ctx, "GET", searchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "TrendWatch-App")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("GitHub API error: %d %s", resp.StatusCode, string(body))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	repos := make([]domain.TrendingRepo, 0, len(result.Items))
	for _, item := range result.Items {
		description := item.Description
		if description == "" {
			description = "No description available"
		}
		lang := item.Language
		if lang == "" {
			lang = language
		}
		if lang == "" {
			lang = "Unknown"
		}
		repos = append(repos, domain.TrendingRepo{
			FullName:    item.FullName,
			Description: description,
			Language:    lang,
			Stars:       item.StargazersCount,
			TodayStars:  item.StargazersCount / 30, // rough estimate
			URL:         item.HTMLURL,
		})
	}
	return repos, nil
}

// FallbackRepos is the fixed list served when the search API is
// unavailable, optionally filtered by language (case-insensitive).
func FallbackRepos(language string) []domain.TrendingRepo {
	fallbacks := []domain.TrendingRepo{
		{
			FullName:    "vercel/next.js",
			Description: "The React Framework for the Web",
			Language:    "TypeScript",
			Stars:       125000,
			TodayStars:  150,
			URL:         "https://github.com/vercel/next.js",
		},
		{
			FullName:    "facebook/react",
			Description: "A declarative, efficient, and flexible JavaScript library for building user interfaces.",
			Language:    "JavaScript",
			Stars:       227000,
			TodayStars:  200,
			URL:         "https://github.com/facebook/react",
		},
		{
			FullName:    "microsoft/vscode",
			Description: "Visual Studio Code",
			Language:    "TypeScript",
			Stars:       162000,
			TodayStars:  180,
			URL:         "https://github.com/microsoft/vscode",
		},
		{
			FullName:    "python/cpython",
			Description: "The Python programming language",
			Language:    "Python",
			Stars:       62000,
			TodayStars:  90,
			URL:         "https://github.com/python/cpython",
		},
		{
			FullName:    "golang/go",
			Description: "The Go programming language",
			Language:    "Go",
			Stars:       123000,
			TodayStars:  120,
			URL:         "https://github.com/golang/go",
		},
	}

	if language == "" {
		return fallbacks
	}

	var filtered []domain.TrendingRepo
	for _, repo := range fallbacks {
		if strings.EqualFold(repo.Language, language) {
			filtered = append(filtered, repo)
		}
	}
	return filtered
}
