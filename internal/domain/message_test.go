package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestMessageJSONDecodesMetadataByRole(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	ctx := BusinessContext{Country: "france", Query: "fr"}
	in := []Message{
		{ID: "1", Content: "Bonjour", Role: RoleUser, Timestamp: ts, Language: "fr",
			Metadata: UserMetadata{IsQuickAction: true, Source: SourceQuickAction}},
		{ID: "2", Content: "reply", Role: RoleAssistant, Timestamp: ts.Add(time.Second), Language: "fr",
			Metadata: AssistantMetadata{RespondingTo: MessageTypeQuickAction, Context: &ctx}},
		{ID: "welcome", Content: "hi", Role: RoleAssistant, Timestamp: ts},
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var out []Message
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(out))
	}

	um, ok := out[0].Metadata.(UserMetadata)
	if !ok {
		t.Fatalf("expected UserMetadata, got %T", out[0].Metadata)
	}
	if !um.IsQuickAction || um.Source != SourceQuickAction {
		t.Errorf("unexpected user metadata: %+v", um)
	}

	am, ok := out[1].Metadata.(AssistantMetadata)
	if !ok {
		t.Fatalf("expected AssistantMetadata, got %T", out[1].Metadata)
	}
	if am.Context == nil || am.Context.Country != "france" {
		t.Errorf("unexpected assistant context: %+v", am.Context)
	}

	if out[2].Metadata != nil {
		t.Errorf("expected nil metadata, got %#v", out[2].Metadata)
	}
	if !out[1].Timestamp.Equal(ts.Add(time.Second)) {
		t.Errorf("timestamp mismatch: %v", out[1].Timestamp)
	}
}

func TestMessageJSONUsesFlatMetadataShape(t *testing.T) {
	t.Parallel()

	msg := Message{ID: "1", Content: "x", Role: RoleUser, Timestamp: time.Unix(0, 0).UTC(),
		Metadata: UserMetadata{Source: SourceRetry}}
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	meta, ok := raw["metadata"].(map[string]any)
	if !ok {
		t.Fatalf("metadata missing: %s", data)
	}
	if meta["source"] != "retry" || meta["isQuickAction"] != false {
		t.Errorf("unexpected metadata: %v", meta)
	}
}

func TestNormalizeLanguage(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"fr":  "fr",
		"RO":  "ro",
		"en":  "en",
		"de":  "en",
		"":    "en",
		" fr": "fr",
	}
	for in, want := range tests {
		if got := NormalizeLanguage(in); got != want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHistoryProjection(t *testing.T) {
	t.Parallel()

	if History(nil) != nil {
		t.Fatal("expected nil history for no messages")
	}
	msgs := []Message{
		{ID: "a", Role: RoleUser, Content: "one"},
		{ID: "b", Role: RoleAssistant, Content: "two"},
	}
	h := History(msgs)
	if len(h) != 2 || h[0].Content != "one" || h[1].Role != RoleAssistant {
		t.Fatalf("unexpected history: %+v", h)
	}
}
