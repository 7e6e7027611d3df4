package usecase

import (
	"context"

	"trendwatch-backend/internal/digest/domain"
	subdomain "trendwatch-backend/internal/subscriber/domain"
)

// TrendingSource fetches candidate repositories for one language. It
// never fails; on provider errors it serves a documented fallback list.
type TrendingSource interface {
	Trending(ctx context.Context, language string) []domain.TrendingRepo
}

// Summarizer produces one summary per input repository, batched and
// rate-limited internally. The result always covers every input.
type Summarizer interface {
	SummarizeBatch(ctx context.Context, repos []domain.TrendingRepo) map[string]string
}

// DigestMailer dispatches one digest email and reports the outcome as a
// value instead of raising it.
type DigestMailer interface {
	SendDigest(ctx context.Context, to string, repos []domain.AnnotatedRepo, languages []string) domain.SendResult
}

// SubscriberStore reads the active subscriber list
type SubscriberStore interface {
	FindAllActive() ([]*subdomain.Subscriber, error)
}

// RepositoryStore upserts scraped repositories by full name
type RepositoryStore interface {
	Upsert(repo *domain.Repository) error
}

// DigestLedger appends one run outcome per invocation
type DigestLedger interface {
	Create(entry *domain.DigestLog) error
}
