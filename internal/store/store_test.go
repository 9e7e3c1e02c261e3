package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func exerciseStore(t *testing.T, s SessionStore) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Load(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.Save(ctx, "k", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Save(ctx, "k", []byte(`{"v":2}`)); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	got, err := s.Load(ctx, "k")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(got) != `{"v":2}` {
		t.Errorf("Load = %s, want overwritten value", got)
	}

	if err := s.Clear(ctx, "k"); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := s.Load(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after Clear, got %v", err)
	}
	if err := s.Clear(ctx, "k"); err != nil {
		t.Errorf("clearing a missing key should succeed: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	exerciseStore(t, NewMemory())
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	t.Parallel()

	s := NewMemory()
	buf := []byte("abc")
	_ = s.Save(context.Background(), "k", buf)
	buf[0] = 'x'
	got, _ := s.Load(context.Background(), "k")
	if string(got) != "abc" {
		t.Fatalf("stored value aliased caller buffer: %s", got)
	}
}

func TestSQLiteStore(t *testing.T) {
	t.Parallel()

	s, err := NewSQLite(filepath.Join(t.TempDir(), "nested", "sessions.db"))
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	defer func() { _ = s.Close() }()

	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
	exerciseStore(t, s)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sessions.db")
	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	if err := s.Save(context.Background(), "le_guide_chat_history", []byte("payload")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	_ = s.Close()

	reopened, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Load(context.Background(), "le_guide_chat_history")
	if err != nil || string(got) != "payload" {
		t.Fatalf("Load after reopen = %q, %v", got, err)
	}
}
