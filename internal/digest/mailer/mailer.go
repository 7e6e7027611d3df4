package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"net/url"
	"strings"
	"time"

	"trendwatch-backend/internal/digest/domain"
	"trendwatch-backend/pkg/config"
	"trendwatch-backend/pkg/resend"

	"github.com/dustin/go-humanize"
)

// Sender is the underlying email provider
type Sender interface {
	Send(ctx context.Context, to, subject, html string) (string, error)
}

// Mailer renders and dispatches digest emails. Failures are reported via
// domain.SendResult, never raised, so per-recipient isolation in the
// orchestrator can rely on the return value. A nil sender puts the mailer
// in test/offline mode: sends succeed without any network call.
type Mailer struct {
	sender Sender
	appURL string
	tmpl   *template.Template

	// now is injectable for stable dates in tests
	now func() time.Time
}

func New(sender Sender, appURL string) *Mailer {
	return &Mailer{
		sender: sender,
		appURL: strings.TrimSuffix(appURL, "/"),
		tmpl:   template.Must(template.New("digest").Parse(digestTemplate)),
		now:    time.Now,
	}
}

// NewFromConfig picks the provider from configuration. Missing
// credentials leave the sender nil (test mode) rather than erroring.
func NewFromConfig(cfg *config.Config) *Mailer {
	var sender Sender
	switch cfg.EmailProvider {
	case "smtp":
		if cfg.SMTPHost != "" {
			sender = NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.EmailFrom)
		}
	default: // resend
		if cfg.ResendAPIKey != "" {
			sender = resend.NewClient(cfg.ResendAPIKey, cfg.EmailFrom)
		}
	}
	if sender == nil {
		log.Printf("[Mailer] No %s credentials configured, running in test mode (emails are not sent)", cfg.EmailProvider)
	}
	return New(sender, cfg.AppURL)
}

type repoView struct {
	FullName     string
	Description  string
	Language     string
	StarsDisplay string
	TodayStars   int
	URL          string
	AISummary    string
}

type digestView struct {
	Date           string
	LanguageBadge  string
	Repos          []repoView
	AppURL         string
	UnsubscribeURL string
}

// SendDigest renders and sends one digest email to the recipient
func (m *Mailer) SendDigest(ctx context.Context, to string, repos []domain.AnnotatedRepo, languages []string) domain.SendResult {
	if m.sender == nil {
		log.Printf("[Mailer] Test mode - digest for %s (%d repos) not sent", to, len(repos))
		return domain.SendResult{Success: true, MessageID: "test-mode"}
	}

	html, err := m.render(to, repos, languages)
	if err != nil {
		log.Printf("[Mailer] Render error for %s: %v", to, err)
		return domain.SendResult{Success: false, Err: err}
	}

	subject := fmt.Sprintf("🔥 %d Trending %s Repos Today", len(repos), strings.Join(languages, ", "))

	messageID, err := m.sender.Send(ctx, to, subject, html)
	if err != nil {
		log.Printf("[Mailer] Send error for %s: %v", to, err)
		return domain.SendResult{Success: false, Err: err}
	}

	return domain.SendResult{Success: true, MessageID: messageID}
}

func (m *Mailer) render(to string, repos []domain.AnnotatedRepo, languages []string) (string, error) {
	views := make([]repoView, len(repos))
	for i, repo := range repos {
		views[i] = repoView{
			FullName:     repo.FullName,
			Description:  repo.Description,
			Language:     repo.Language,
			StarsDisplay: humanize.Comma(int64(repo.Stars)),
			TodayStars:   repo.TodayStars,
			URL:          repo.URL,
			AISummary:    repo.AISummary,
		}
	}

	data := digestView{
		Date:           m.now().Format("Monday, January 2, 2006"),
		LanguageBadge:  strings.Join(languages, " • "),
		Repos:          views,
		AppURL:         m.appURL,
		UnsubscribeURL: m.appURL + "/api/unsubscribe?email=" + url.QueryEscape(to),
	}

	var buf bytes.Buffer
	if err := m.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
