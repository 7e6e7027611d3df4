package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"trendwatch-backend/internal/digest/domain"

	"github.com/dustin/go-humanize"
)

var apiURL = "https://api.openai.com/v1/chat/completions"

type Service struct {
	apiKey     string
	httpClient *http.Client
}

func NewService(apiKey string) *Service {
	return &Service{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// SummarizeRepo asks gpt-3.5-turbo for a 2-3 sentence developer-facing
// summary of a trending repository.
func (s *Service) SummarizeRepo(ctx context.Context, repo domain.TrendingRepo) (string, error) {
	prompt := fmt.Sprintf(`Summarize this GitHub repository in 2-3 sentences:

Repository: %s
Description: %s
Language: %s
Stars: %s
Stars gained today: %d

Focus on:
1. What problem it solves or what it does
2. Why it's trending (if stars gained today is high)
3. Why developers should care`,
		repo.FullName, repo.Description, repo.Language, humanize.Comma(int64(repo.Stars)), repo.TodayStars)

	payload := map[string]interface{}{
		"model": "gpt-3.5-turbo",
		"messages": []map[string]string{
			{
				"role":    "system",
				"content": "You are a technical writer creating concise summaries for developers. Be insightful and technical, no marketing fluff.",
			},
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"max_tokens":  200,
		"temperature": 0.7,
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, "POST", apiURL, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OpenAI API error: %d %s", resp.StatusCode, string(respBody))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no summary returned")
	}
	return result.Choices[0].Message.Content, nil
}
