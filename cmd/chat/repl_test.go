package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/maisondeculture/leguide/internal/conversation"
	"github.com/maisondeculture/leguide/internal/generator"
	"github.com/maisondeculture/leguide/internal/store"
)

func runREPL(t *testing.T, input string) (string, *conversation.Controller) {
	t.Helper()
	color.NoColor = true
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctrl, err := conversation.New(conversation.Options{
		Responder: generator.New(logger),
		Store:     store.NewMemory(),
		Logger:    logger,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctrl.Restore(context.Background())

	var out bytes.Buffer
	newREPL(ctrl, strings.NewReader(input), &out).run(context.Background())
	return out.String(), ctrl
}

func TestREPLSendsMessages(t *testing.T) {
	out, ctrl := runREPL(t, "How much does it cost?\n/quit\nignored\n")

	if !strings.Contains(out, conversation.WelcomeText("en")) {
		t.Error("expected welcome message")
	}
	if !strings.Contains(out, "Le Guide Pricing & Services") {
		t.Errorf("expected pricing reply, got:\n%s", out)
	}
	if n := len(ctrl.State().Messages); n != 3 {
		t.Errorf("expected 3 messages, got %d", n)
	}
}

func TestREPLCommands(t *testing.T) {
	input := strings.Join([]string{
		"/lang fr",
		"/quick france-regs",
		"/guide virtual_meeting french american",
		"/voice",
		"/retry",
		"/bogus",
		"/clear",
	}, "\n") + "\n"
	out, ctrl := runREPL(t, input)

	for _, want := range []string{
		conversation.WelcomeText("fr"),
		"Language: fr",
		"What are the key business regulations for starting a company in France?",
		"Cross-Cultural Strategy: VIRTUAL MEETING",
		"Speech recognition not supported in this browser",
		"Nothing to retry.",
		"Unknown command: /bogus",
		"History cleared.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if n := len(ctrl.State().Messages); n != 0 {
		t.Errorf("expected empty conversation after /clear, got %d", n)
	}
}
