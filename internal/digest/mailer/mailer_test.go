package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"trendwatch-backend/internal/digest/domain"
)

type mockSender struct {
	err error

	to      string
	subject string
	html    string
	calls   int
}

func (m *mockSender) Send(ctx context.Context, to, subject, html string) (string, error) {
	m.calls++
	m.to, m.subject, m.html = to, subject, html
	if m.err != nil {
		return "", m.err
	}
	return "msg-123", nil
}

func annotated(fullName, summary string) domain.AnnotatedRepo {
	return domain.AnnotatedRepo{
		TrendingRepo: domain.TrendingRepo{
			FullName:    fullName,
			Description: "Description of " + fullName,
			Language:    "Go",
			Stars:       12345,
			TodayStars:  42,
			URL:         "https://github.com/" + fullName,
		},
		AISummary: summary,
	}
}

func TestSendDigest_TestModeWithoutSender(t *testing.T) {
	m := New(nil, "http://localhost:8080")

	result := m.SendDigest(context.Background(), "a@example.com", []domain.AnnotatedRepo{annotated("go/one", "s")}, []string{"Go"})

	if !result.Success {
		t.Error("test mode sends must succeed")
	}
	if result.MessageID != "test-mode" {
		t.Errorf("expected test-mode message ID, got %q", result.MessageID)
	}
}

func TestSendDigest_Success(t *testing.T) {
	sender := &mockSender{}
	m := New(sender, "http://localhost:8080")

	result := m.SendDigest(context.Background(), "a@example.com",
		[]domain.AnnotatedRepo{annotated("go/one", "s1"), annotated("go/two", "s2")},
		[]string{"Go", "Rust"})

	if !result.Success || result.MessageID != "msg-123" {
		t.Errorf("unexpected result: %+v", result)
	}
	if sender.to != "a@example.com" {
		t.Errorf("expected recipient a@example.com, got %q", sender.to)
	}
	if sender.subject != "🔥 2 Trending Go, Rust Repos Today" {
		t.Errorf("unexpected subject: %q", sender.subject)
	}
}

func TestSendDigest_SenderErrorReported(t *testing.T) {
	sender := &mockSender{err: errors.New("provider down")}
	m := New(sender, "http://localhost:8080")

	result := m.SendDigest(context.Background(), "a@example.com", []domain.AnnotatedRepo{annotated("go/one", "s")}, []string{"Go"})

	if result.Success {
		t.Error("expected failure result")
	}
	if result.Err == nil || result.Err.Error() != "provider down" {
		t.Errorf("expected the sender error, got %v", result.Err)
	}
}

func TestSendDigest_HTMLContents(t *testing.T) {
	sender := &mockSender{}
	m := New(sender, "http://localhost:8080")
	m.now = func() time.Time { return time.Date(2026, time.August, 28, 8, 0, 0, 0, time.UTC) }

	repos := []domain.AnnotatedRepo{annotated("go/one", "An insightful summary")}
	m.SendDigest(context.Background(), "user+tag@example.com", repos, []string{"Go"})

	html := sender.html
	for _, want := range []string{
		"go/one",
		"Description of go/one",
		"An insightful summary",
		"12,345",
		"+42",
		"https://github.com/go/one",
		"Friday, August 28, 2026",
		"http://localhost:8080/api/unsubscribe?email=user%2Btag%40example.com",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered digest missing %q", want)
		}
	}
}

func TestSendDigest_TrailingSlashTrimmed(t *testing.T) {
	sender := &mockSender{}
	m := New(sender, "https://trendwatch.dev/")

	m.SendDigest(context.Background(), "a@example.com", []domain.AnnotatedRepo{annotated("go/one", "s")}, []string{"Go"})

	if strings.Contains(sender.html, "trendwatch.dev//") {
		t.Error("app URL trailing slash must not double up in links")
	}
}
