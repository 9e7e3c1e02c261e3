package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/maisondeculture/leguide/internal/config"
	"github.com/maisondeculture/leguide/internal/domain"
	"github.com/maisondeculture/leguide/internal/generator"
	"github.com/maisondeculture/leguide/internal/ratelimit"
)

type fakeGuard struct{ err error }

func (g fakeGuard) CheckRequired() error { return g.err }

type fakeResponder struct {
	mu    sync.Mutex
	err   error
	calls []string
	ctx   []domain.BusinessContext
	hist  [][]domain.HistoryEntry
}

func (f *fakeResponder) Respond(_ context.Context, text string, bc domain.BusinessContext, history []domain.HistoryEntry) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, text)
	f.ctx = append(f.ctx, bc)
	f.hist = append(f.hist, history)
	if f.err != nil {
		return "", f.err
	}
	return "echo: " + text, nil
}

func newTestRouter(t *testing.T, guard Guard, responder Responder) chi.Router {
	t.Helper()
	limiter := ratelimit.New(10, 10*time.Second)
	t.Cleanup(limiter.Close)

	h := NewChatHandler(ChatOptions{Guard: guard, Limiter: limiter, Responder: responder})
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func postChat(r http.Handler, remote, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = remote
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return got
}

const validBody = `{"message":"  What does it cost?  ","context":{"country":"france","query":"fr"}}`

func TestHandleChatSuccess(t *testing.T) {
	t.Parallel()

	responder := &fakeResponder{}
	r := newTestRouter(t, fakeGuard{}, responder)

	body := `{"message":"Hello","context":{"country":"romania","query":"ro","messageType":"freeform"},` +
		`"conversationHistory":[{"role":"assistant","content":"Bine ati venit"}]}`
	w := postChat(r, "203.0.113.7:4000", body)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := decodeBody(t, w); got["response"] != "echo: Hello" {
		t.Errorf("unexpected response: %v", got)
	}
	if responder.ctx[0].Country != "romania" || len(responder.hist[0]) != 1 {
		t.Errorf("context or history not forwarded: %+v %+v", responder.ctx[0], responder.hist[0])
	}
}

func TestHandleChatTrimsMessage(t *testing.T) {
	t.Parallel()

	responder := &fakeResponder{}
	r := newTestRouter(t, fakeGuard{}, responder)
	if w := postChat(r, "203.0.113.7:4000", validBody); w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if responder.calls[0] != "What does it cost?" {
		t.Errorf("message not trimmed: %q", responder.calls[0])
	}
}

func TestHandleChatValidation(t *testing.T) {
	t.Parallel()

	tooLong := strings.Repeat("é", MaxMessageLength+1)
	exact := strings.Repeat("é", MaxMessageLength)

	tests := []struct {
		name   string
		body   string
		status int
		want   string
	}{
		{"malformed json", `{"message":`, http.StatusBadRequest, msgInvalid},
		{"missing message", `{"context":{}}`, http.StatusBadRequest, msgInvalid},
		{"non-string message", `{"message":42,"context":{}}`, http.StatusBadRequest, msgInvalid},
		{"empty message", `{"message":"","context":{}}`, http.StatusBadRequest, msgInvalid},
		{"missing context", `{"message":"hi"}`, http.StatusBadRequest, msgInvalid},
		{"null context", `{"message":"hi","context":null}`, http.StatusBadRequest, msgInvalid},
		{"blank message", `{"message":"   ","context":{}}`, http.StatusBadRequest, msgEmpty},
		{"too long", fmt.Sprintf(`{"message":%q,"context":{}}`, tooLong), http.StatusBadRequest, msgTooLong},
		{"exactly max", fmt.Sprintf(`{"message":%q,"context":{}}`, exact), http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := newTestRouter(t, fakeGuard{}, &fakeResponder{})
			w := postChat(r, "198.51.100.1:1", tt.body)
			if w.Code != tt.status {
				t.Fatalf("Expected status %d, got %d: %s", tt.status, w.Code, w.Body.String())
			}
			if tt.want != "" {
				if got := decodeBody(t, w); got["error"] != tt.want {
					t.Errorf("Expected error %q, got %v", tt.want, got["error"])
				}
			}
		})
	}
}

func TestHandleChatConfigurationError(t *testing.T) {
	t.Parallel()

	responder := &fakeResponder{}
	r := newTestRouter(t, fakeGuard{err: fmt.Errorf("%w: OPENAI_API_KEY", config.ErrMissingEnv)}, responder)
	w := postChat(r, "203.0.113.7:4000", validBody)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}
	if got := decodeBody(t, w); got["error"] != msgConfigError {
		t.Errorf("unexpected body: %v", got)
	}
	if len(responder.calls) != 0 {
		t.Error("responder must not run without configuration")
	}
}

func TestHandleChatGenerationFailureDoesNotLeak(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, fakeGuard{}, &fakeResponder{err: errors.New("db password is hunter2")})
	w := postChat(r, "203.0.113.7:4000", validBody)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "hunter2") {
		t.Fatal("internal error text leaked to client")
	}
	if got := decodeBody(t, w); got["error"] != msgGenerateFail {
		t.Errorf("unexpected body: %v", got)
	}
}

func TestHandleChatRateLimit(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, fakeGuard{}, &fakeResponder{})
	for i := 0; i < 10; i++ {
		if w := postChat(r, "203.0.113.7:4000", validBody); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}

	w := postChat(r, "203.0.113.7:5000", validBody)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("Expected status 429, got %d", w.Code)
	}
	if got := w.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Errorf("X-RateLimit-Remaining = %q, want 0", got)
	}
	if got := w.Header().Get("X-RateLimit-Limit"); got != "10" {
		t.Errorf("X-RateLimit-Limit = %q, want 10", got)
	}
	if w.Header().Get("X-RateLimit-Reset") == "" {
		t.Error("expected X-RateLimit-Reset header")
	}
	body := decodeBody(t, w)
	if body["error"] != msgTooMany || body["limit"] != float64(10) || body["remaining"] != float64(0) {
		t.Errorf("unexpected body: %v", body)
	}
	if _, ok := body["reset"].(float64); !ok {
		t.Errorf("expected numeric reset, got %v", body["reset"])
	}

	if w := postChat(r, "198.51.100.9:4000", validBody); w.Code != http.StatusOK {
		t.Errorf("other addresses are limited separately, got %d", w.Code)
	}
}

func TestHandleChatBodyTooLarge(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.New(10, 10*time.Second)
	t.Cleanup(limiter.Close)
	h := NewChatHandler(ChatOptions{Guard: fakeGuard{}, Limiter: limiter, Responder: &fakeResponder{}, MaxBodySize: 64})
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	w := postChat(r, "203.0.113.7:4000", `{"message":"`+strings.Repeat("a", 200)+`","context":{}}`)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("Expected status 413, got %d", w.Code)
	}
}

func TestHandleChatWithGenerator(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, fakeGuard{}, generator.New(nil))
	w := postChat(r, "203.0.113.7:4000", `{"message":"What is the price?","context":{"country":"us","query":"en"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	got, _ := decodeBody(t, w)["response"].(string)
	if !strings.HasPrefix(got, "## 💰 Le Guide Pricing & Services") {
		t.Errorf("expected pricing reply, got %q", got)
	}
}

func TestStatus(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, fakeGuard{err: config.ErrMissingEnv}, &fakeResponder{})
	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	got := decodeBody(t, w)
	if got["status"] != "Le Guide Chat API is running" || got["version"] != "1.0.0" {
		t.Errorf("unexpected body: %v", got)
	}
	langs, _ := got["supportedLanguages"].([]any)
	if len(langs) != 3 || langs[0] != "en" || langs[1] != "fr" || langs[2] != "ro" {
		t.Errorf("unexpected languages: %v", got["supportedLanguages"])
	}
}
