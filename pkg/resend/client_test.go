package resend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func withAPIURL(t *testing.T, url string) {
	t.Helper()
	orig := apiURL
	apiURL = url
	t.Cleanup(func() { apiURL = orig })
}

func TestSend_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer re_test_key" {
			t.Errorf("expected bearer auth, got %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("expected json content type, got %q", got)
		}

		var payload struct {
			From    string   `json:"from"`
			To      []string `json:"to"`
			Subject string   `json:"subject"`
			HTML    string   `json:"html"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload.From != "TrendWatch <digest@example.com>" {
			t.Errorf("unexpected from: %q", payload.From)
		}
		if len(payload.To) != 1 || payload.To[0] != "a@example.com" {
			t.Errorf("unexpected to: %v", payload.To)
		}
		if payload.Subject != "Hello" || payload.HTML != "<p>Hi</p>" {
			t.Errorf("unexpected content: %q / %q", payload.Subject, payload.HTML)
		}

		w.Write([]byte(`{"id": "email-abc123"}`))
	}))
	defer server.Close()
	withAPIURL(t, server.URL)

	client := NewClient("re_test_key", "TrendWatch <digest@example.com>")
	id, err := client.Send(context.Background(), "a@example.com", "Hello", "<p>Hi</p>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "email-abc123" {
		t.Errorf("expected provider message ID, got %q", id)
	}
}

func TestSend_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "invalid api key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()
	withAPIURL(t, server.URL)

	client := NewClient("bad-key", "digest@example.com")
	_, err := client.Send(context.Background(), "a@example.com", "Hello", "<p>Hi</p>")
	if err == nil {
		t.Fatal("expected error on non-200 response")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("expected the status code in the error, got %v", err)
	}
}
