package delivery

import (
	"context"
	"log"
	"net/http"

	"trendwatch-backend/internal/digest/domain"
	"trendwatch-backend/internal/digest/repository"
	"trendwatch-backend/internal/digest/usecase"

	"github.com/gin-gonic/gin"
)

// RepoSummarizer summarizes a single repository, never failing (used by
// the test-digest endpoint which skips batch cadence).
type RepoSummarizer interface {
	SummarizeRepo(ctx context.Context, repo domain.TrendingRepo) string
}

// DigestHandler exposes the cron trigger and the manual test endpoints
type DigestHandler struct {
	digestUsecase usecase.DigestUsecase
	subscribers   usecase.SubscriberStore
	source        usecase.TrendingSource
	summarizer    RepoSummarizer
	mailer        usecase.DigestMailer
	ledger        repository.DigestLogRepository
}

func NewDigestHandler(
	digestUsecase usecase.DigestUsecase,
	subscribers usecase.SubscriberStore,
	source usecase.TrendingSource,
	summarizer RepoSummarizer,
	mailer usecase.DigestMailer,
	ledger repository.DigestLogRepository,
) *DigestHandler {
	return &DigestHandler{
		digestUsecase: digestUsecase,
		subscribers:   subscribers,
		source:        source,
		summarizer:    summarizer,
		mailer:        mailer,
		ledger:        ledger,
	}
}

// RunDigest handles GET /api/cron/scrape (behind CronAuthMiddleware)
func (h *DigestHandler) RunDigest(c *gin.Context) {
	h.runAndRespond(c)
}

// TriggerDigest handles POST /api/cron/scrape — an intentional
// unauthenticated bypass for manual testing, never for production crons.
func (h *DigestHandler) TriggerDigest(c *gin.Context) {
	log.Println("[Digest] Manual trigger - running digest job")
	h.runAndRespond(c)
}

func (h *DigestHandler) runAndRespond(c *gin.Context) {
	result, err := h.digestUsecase.Run(c.Request.Context())
	if err != nil {
		log.Printf("[Digest] Run failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Digest run failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"totalRepos":   result.TotalRepos,
		"emailsSent":   result.EmailsSent,
		"emailsFailed": result.EmailsFailed,
		"languages":    result.Languages,
	})
}

// Logs handles GET /api/cron/logs (behind CronAuthMiddleware): recent
// ledger entries for run auditing.
func (h *DigestHandler) Logs(c *gin.Context) {
	entries, err := h.ledger.FindRecent(20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read digest logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": entries})
}

// TestScrape handles GET /api/test-scrape?language= — runs only the
// source adapter.
func (h *DigestHandler) TestScrape(c *gin.Context) {
	language := c.Query("language")
	repos := h.source.Trending(c.Request.Context(), language)
	c.JSON(http.StatusOK, gin.H{
		"count": len(repos),
		"repos": repos,
	})
}

// TestDigest handles GET /api/test-digest — sends one real digest to the
// first active subscriber using their first language's top 5 repos.
func (h *DigestHandler) TestDigest(c *gin.Context) {
	log.Println("[Digest] Testing digest email send...")

	subs, err := h.subscribers.FindAllActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read subscribers"})
		return
	}
	if len(subs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No subscribers found. Please subscribe first!"})
		return
	}
	sub := subs[0]

	firstLang := sub.Languages[0]
	repos := h.source.Trending(c.Request.Context(), firstLang)
	if len(repos) == 0 {
		c.JSON(http.StatusOK, gin.H{"error": "No repos found for language: " + firstLang})
		return
	}

	if len(repos) > 5 {
		repos = repos[:5]
	}

	annotated := make([]domain.AnnotatedRepo, len(repos))
	for i, repo := range repos {
		annotated[i] = domain.AnnotatedRepo{
			TrendingRepo: repo,
			AISummary:    h.summarizer.SummarizeRepo(c.Request.Context(), repo),
		}
	}

	result := h.mailer.SendDigest(c.Request.Context(), sub.Email, annotated, sub.Languages)
	if !result.Success {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to send email",
			"details": result.Err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Test email sent to " + sub.Email,
		"messageId": result.MessageID,
		"repoCount": len(annotated),
	})
}
