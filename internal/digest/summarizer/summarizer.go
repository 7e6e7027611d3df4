package summarizer

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"trendwatch-backend/internal/digest/domain"

	"github.com/dustin/go-humanize"
)

const (
	// batchSize bounds concurrent provider calls; groups run fully in
	// parallel with a pause in between to stay under rate limits.
	batchSize  = 3
	batchDelay = 1000 * time.Millisecond
)

// AIClient is the summarization provider. A nil client means the provider
// is unconfigured and the deterministic fallback is used instead.
type AIClient interface {
	SummarizeRepo(ctx context.Context, repo domain.TrendingRepo) (string, error)
}

// Service produces repository summaries. From the caller's point of view
// it never fails: provider errors degrade to the template fallback.
type Service struct {
	ai AIClient

	// sleep is injectable so tests don't wait on real batch delays
	sleep func(time.Duration)
}

func New(ai AIClient) *Service {
	return &Service{
		ai:    ai,
		sleep: time.Sleep,
	}
}

// SummarizeRepo returns a summary for one repository, falling back to the
// template description when the provider is unconfigured or fails.
func (s *Service) SummarizeRepo(ctx context.Context, repo domain.TrendingRepo) string {
	if s.ai == nil {
		return FallbackSummary(repo)
	}

	text, err := s.ai.SummarizeRepo(ctx, repo)
	if err != nil {
		log.Printf("[Summarizer] AI error for %s: %v, using fallback", repo.FullName, err)
		return FallbackSummary(repo)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return FallbackSummary(repo)
	}
	return text
}

// SummarizeBatch summarizes repositories in groups of batchSize run in
// parallel, pausing between groups. The returned map has exactly one
// entry per input repository.
func (s *Service) SummarizeBatch(ctx context.Context, repos []domain.TrendingRepo) map[string]string {
	summaries := make(map[string]string, len(repos))
	var mu sync.Mutex

	for start := 0; start < len(repos); start += batchSize {
		end := min(start+batchSize, len(repos))

		var wg sync.WaitGroup
		for _, repo := range repos[start:end] {
			wg.Add(1)
			go func(r domain.TrendingRepo) {
				defer wg.Done()
				text := s.SummarizeRepo(ctx, r)
				mu.Lock()
				summaries[r.FullName] = text
				mu.Unlock()
			}(repo)
		}
		wg.Wait()

		log.Printf("[Summarizer] Processed batch %d", start/batchSize+1)

		if end < len(repos) {
			s.sleep(batchDelay)
		}
	}

	return summaries
}

// FallbackSummary builds a deterministic description from the repository
// metadata alone. Same input always yields the same text.
func FallbackSummary(repo domain.TrendingRepo) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s is a %s project", repo.FullName, repo.Language)

	if repo.Description != "" {
		fmt.Fprintf(&sb, " that %s", strings.ToLower(repo.Description))
	}

	if repo.TodayStars > 100 {
		fmt.Fprintf(&sb, ". It's rapidly gaining popularity with %d stars gained today", repo.TodayStars)
	} else if repo.Stars > 10000 {
		fmt.Fprintf(&sb, ". With %s stars, it's a well-established project in the community", humanize.Comma(int64(repo.Stars)))
	}

	sb.WriteString(".")
	return sb.String()
}
