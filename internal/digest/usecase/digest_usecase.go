package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"trendwatch-backend/internal/digest/domain"
	subdomain "trendwatch-backend/internal/subscriber/domain"
)

// maxReposPerDigest caps how many repositories one subscriber receives,
// in discovery (provider-ranked) order.
const maxReposPerDigest = 10

// RunResult is the structured outcome returned to the trigger caller
type RunResult struct {
	TotalRepos   int      `json:"totalRepos"`
	EmailsSent   int      `json:"emailsSent"`
	EmailsFailed int      `json:"emailsFailed"`
	Languages    []string `json:"languages"`
}

// DigestUsecase runs the end-to-end digest pipeline
type DigestUsecase interface {
	Run(ctx context.Context) (*RunResult, error)
}

type digestUsecase struct {
	subscribers SubscriberStore
	source      TrendingSource
	summarizer  Summarizer
	mailer      DigestMailer
	repos       RepositoryStore
	ledger      DigestLedger

	sendDelay time.Duration
	// sleep is injectable so tests don't pay the inter-send pacing
	sleep func(time.Duration)
}

// NewDigestUsecase creates the digest orchestrator (dependency injection)
func NewDigestUsecase(
	subscribers SubscriberStore,
	source TrendingSource,
	summarizer Summarizer,
	mailer DigestMailer,
	repos RepositoryStore,
	ledger DigestLedger,
	sendDelay time.Duration,
) DigestUsecase {
	return &digestUsecase{
		subscribers: subscribers,
		source:      source,
		summarizer:  summarizer,
		mailer:      mailer,
		repos:       repos,
		ledger:      ledger,
		sendDelay:   sendDelay,
		sleep:       time.Sleep,
	}
}

// Run executes one digest pipeline invocation: language discovery,
// per-language scrape+summarize+persist, per-subscriber fan-out, ledger
// write. Safe to re-invoke; re-running refreshes repository data and
// re-sends digests (no cross-run duplicate suppression).
func (u *digestUsecase) Run(ctx context.Context) (*RunResult, error) {
	log.Println("[Digest] Starting digest run...")

	subs, err := u.subscribers.FindAllActive()
	if err != nil {
		u.writeLedger(0, 0, domain.DigestStatusFailed, err.Error())
		return nil, fmt.Errorf("listing active subscribers: %w", err)
	}

	languages := distinctLanguages(subs)
	log.Printf("[Digest] Found %d languages to scrape", len(languages))

	result := &RunResult{Languages: languages}

	// Run-scoped composition keyed by full name; order preserves first
	// discovery so truncation keeps the provider ranking. A repository
	// discovered under several languages keeps its latest summary/fields
	// but its original position.
	composition := make(map[string]domain.AnnotatedRepo)
	var order []string

	for _, language := range languages {
		log.Printf("[Digest] Scraping %s...", language)

		trending := u.source.Trending(ctx, language)
		if len(trending) == 0 {
			log.Printf("[Digest] No repos for %s, skipping", language)
			continue
		}
		log.Printf("[Digest] Found %d %s repos", len(trending), language)

		summaries := u.summarizer.SummarizeBatch(ctx, trending)

		for _, repo := range trending {
			summary, ok := summaries[repo.FullName]
			if !ok || summary == "" {
				summary = repo.Description
			}

			record := &domain.Repository{
				FullName:    repo.FullName,
				Description: repo.Description,
				Language:    repo.Language,
				Stars:       repo.Stars,
				TodayStars:  repo.TodayStars,
				URL:         repo.URL,
				AISummary:   summary,
			}
			if err := u.repos.Upsert(record); err != nil {
				u.writeLedger(0, 0, domain.DigestStatusFailed, err.Error())
				return nil, fmt.Errorf("storing repository %s: %w", repo.FullName, err)
			}

			if _, seen := composition[repo.FullName]; !seen {
				order = append(order, repo.FullName)
			}
			composition[repo.FullName] = domain.AnnotatedRepo{TrendingRepo: repo, AISummary: summary}
			result.TotalRepos++
		}
	}

	log.Printf("[Digest] Stored %d total repos", result.TotalRepos)

	for i, sub := range subs {
		matching := selectRepos(composition, order, sub.Languages)

		if len(matching) > 0 {
			res := u.mailer.SendDigest(ctx, sub.Email, matching, sub.Languages)
			if res.Success {
				result.EmailsSent++
				log.Printf("[Digest] Sent to %s", sub.Email)
			} else {
				result.EmailsFailed++
				log.Printf("[Digest] Failed to send to %s: %v", sub.Email, res.Err)
			}
		}

		// Rate limit: pace between subscribers
		if i < len(subs)-1 {
			u.sleep(u.sendDelay)
		}
	}

	status := domain.DigestStatusSuccess
	errMsg := ""
	if result.EmailsFailed > 0 {
		status = domain.DigestStatusPartial
		errMsg = fmt.Sprintf("%d emails failed", result.EmailsFailed)
	}
	u.writeLedger(result.TotalRepos, result.EmailsSent, status, errMsg)

	log.Println("[Digest] Digest run completed")
	return result, nil
}

// writeLedger appends the run outcome. A ledger write failure is logged
// but does not fail an otherwise completed run.
func (u *digestUsecase) writeLedger(totalRepos, totalEmails int, status domain.DigestStatus, errMsg string) {
	entry := &domain.DigestLog{
		TotalRepos:  totalRepos,
		TotalEmails: totalEmails,
		Status:      status,
		ErrorMsg:    errMsg,
	}
	if err := u.ledger.Create(entry); err != nil {
		log.Printf("[Digest] Failed to write digest log: %v", err)
	}
}

// distinctLanguages collects the set of languages across subscribers in
// first-seen order. Matching is exact; no case folding or aliasing.
func distinctLanguages(subs []*subdomain.Subscriber) []string {
	seen := make(map[string]bool)
	var languages []string
	for _, sub := range subs {
		for _, lang := range sub.Languages {
			if !seen[lang] {
				seen[lang] = true
				languages = append(languages, lang)
			}
		}
	}
	return languages
}

// selectRepos filters the run composition down to the subscriber's
// languages and truncates to the per-digest cap, preserving discovery
// order.
func selectRepos(composition map[string]domain.AnnotatedRepo, order []string, languages []string) []domain.AnnotatedRepo {
	wanted := make(map[string]bool, len(languages))
	for _, lang := range languages {
		wanted[lang] = true
	}

	var matching []domain.AnnotatedRepo
	for _, fullName := range order {
		repo := composition[fullName]
		if wanted[repo.Language] {
			matching = append(matching, repo)
			if len(matching) == maxReposPerDigest {
				break
			}
		}
	}
	return matching
}
