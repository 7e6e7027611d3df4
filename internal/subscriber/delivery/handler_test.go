package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	subdomain "trendwatch-backend/internal/subscriber/domain"
	"trendwatch-backend/internal/subscriber/usecase"

	"github.com/gin-gonic/gin"
)

type mockSubscriberUsecase struct {
	sub     *subdomain.Subscriber
	created bool
	err     error

	unsubscribed []string
}

func (m *mockSubscriberUsecase) Subscribe(input usecase.SubscribeInput) (*subdomain.Subscriber, bool, error) {
	if m.err != nil {
		return nil, false, m.err
	}
	return m.sub, m.created, nil
}

func (m *mockSubscriberUsecase) Unsubscribe(email string) error {
	if m.err != nil {
		return m.err
	}
	m.unsubscribed = append(m.unsubscribed, email)
	return nil
}

func (m *mockSubscriberUsecase) Status(email string) (*subdomain.Subscriber, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sub, nil
}

func newTestRouter(u usecase.SubscriberUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewSubscriberHandler(u)

	r := gin.New()
	r.POST("/api/subscribe", handler.Subscribe)
	r.GET("/api/subscribe", handler.Status)
	r.POST("/api/unsubscribe", handler.Unsubscribe)
	r.GET("/api/unsubscribe", handler.UnsubscribeLink)
	return r
}

func TestSubscribe_NewSubscriberReturns201(t *testing.T) {
	u := &mockSubscriberUsecase{
		sub:     &subdomain.Subscriber{Email: "a@example.com", Languages: []string{"Go"}, Frequency: subdomain.FrequencyDaily, IsActive: true},
		created: true,
	}
	router := newTestRouter(u)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/subscribe", strings.NewReader(`{"email": "a@example.com", "languages": ["Go"]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Subscribed successfully") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestSubscribe_ExistingSubscriberReturns200(t *testing.T) {
	u := &mockSubscriberUsecase{
		sub:     &subdomain.Subscriber{Email: "a@example.com", Languages: []string{"Rust"}, Frequency: subdomain.FrequencyDaily, IsActive: true},
		created: false,
	}
	router := newTestRouter(u)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/subscribe", strings.NewReader(`{"email": "a@example.com", "languages": ["Rust"]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Subscription updated successfully") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestSubscribe_InvalidBodyReturns400(t *testing.T) {
	router := newTestRouter(&mockSubscriberUsecase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/subscribe", strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestStatus_KnownEmail(t *testing.T) {
	u := &mockSubscriberUsecase{
		sub: &subdomain.Subscriber{Email: "a@example.com", Languages: []string{"Go"}, Frequency: subdomain.FrequencyWeekly, IsActive: true},
	}
	router := newTestRouter(u)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/subscribe?email=a@example.com", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Subscribed bool `json:"subscribed"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if !body.Subscribed {
		t.Error("expected subscribed=true")
	}
}

func TestStatus_UnknownEmailReturns404(t *testing.T) {
	router := newTestRouter(&mockSubscriberUsecase{sub: nil})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/subscribe?email=nobody@example.com", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"subscribed":false`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestStatus_MissingEmailReturns400(t *testing.T) {
	router := newTestRouter(&mockSubscriberUsecase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/subscribe", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestUnsubscribe_UnknownEmailReturns404(t *testing.T) {
	u := &mockSubscriberUsecase{err: usecase.ErrNotFound}
	router := newTestRouter(u)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/unsubscribe", strings.NewReader(`{"email": "nobody@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestUnsubscribeLink_DecodesEscapedEmail(t *testing.T) {
	u := &mockSubscriberUsecase{}
	router := newTestRouter(u)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/unsubscribe?email=user%2Btag%40example.com", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(u.unsubscribed) != 1 || u.unsubscribed[0] != "user+tag@example.com" {
		t.Errorf("expected the decoded email, got %v", u.unsubscribed)
	}
	if !strings.Contains(w.Header().Get("Content-Type"), "text/html") {
		t.Errorf("expected an HTML page, got %s", w.Header().Get("Content-Type"))
	}
}
