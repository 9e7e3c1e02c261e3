package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/maisondeculture/leguide/internal/domain"
)

func TestRespondSendsRequest(t *testing.T) {
	t.Parallel()

	var got map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/chat" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"response":"Salut"}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", nil)
	history := []domain.HistoryEntry{{Role: domain.RoleAssistant, Content: "Welcome"}}
	reply, err := c.Respond(context.Background(), "Bonjour", domain.DefaultContext("fr"), history)
	if err != nil {
		t.Fatalf("Respond failed: %v", err)
	}
	if reply != "Salut" {
		t.Errorf("reply = %q", reply)
	}
	if string(got["message"]) != `"Bonjour"` {
		t.Errorf("message = %s", got["message"])
	}
	if !strings.Contains(string(got["context"]), `"query":"fr"`) {
		t.Errorf("context = %s", got["context"])
	}
	if !strings.Contains(string(got["conversationHistory"]), "Welcome") {
		t.Errorf("history = %s", got["conversationHistory"])
	}
}

func TestRespondAPIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"Too many requests","limit":10,"remaining":0}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).Respond(context.Background(), "hi", domain.DefaultContext("en"), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "API error: status 429: Too many requests") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRespondNetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, nil).Respond(context.Background(), "hi", domain.DefaultContext("en"), nil)
	if err == nil || !strings.Contains(err.Error(), "network") {
		t.Fatalf("expected network error, got %v", err)
	}
}

func TestRespondCancelled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"response":"late"}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(srv.URL, nil).Respond(ctx, "hi", domain.DefaultContext("en"), nil); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
