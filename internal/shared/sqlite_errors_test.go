package shared

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestIsSQLiteConflictError(t *testing.T) {
	t.Parallel()

	if IsSQLiteConflictError(nil) {
		t.Error("nil must not be a conflict")
	}
	if !IsSQLiteConflictError(errors.New("exec: SQLITE_BUSY (5)")) {
		t.Error("expected SQLITE_BUSY to be a conflict")
	}
	if !IsSQLiteConflictError(errors.New("database is locked")) {
		t.Error("expected locked database to be a conflict")
	}
	if IsSQLiteConflictError(errors.New("no such table")) {
		t.Error("unexpected conflict")
	}
}

func TestRetryOnConflict(t *testing.T) {
	t.Parallel()

	policy := RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond}

	calls := 0
	err := RetryOnConflict(context.Background(), "test", policy, func() error {
		calls++
		if calls < 3 {
			return errors.New("database is locked")
		}
		return nil
	})
	if err != nil || calls != 3 {
		t.Fatalf("expected success on third attempt, got err=%v calls=%d", err, calls)
	}

	calls = 0
	fatal := errors.New("constraint failed")
	err = RetryOnConflict(context.Background(), "test", policy, func() error {
		calls++
		return fatal
	})
	if !errors.Is(err, fatal) || calls != 1 {
		t.Fatalf("non-conflict errors must not be retried: err=%v calls=%d", err, calls)
	}

	calls = 0
	err = RetryOnConflict(context.Background(), "test", policy, func() error {
		calls++
		return errors.New("SQLITE_BUSY")
	})
	if err == nil || calls != 3 {
		t.Fatalf("expected exhaustion after 3 attempts: err=%v calls=%d", err, calls)
	}
}

func TestRetryOnConflictStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RetryOnConflict(ctx, "test", RetryPolicy{MaxAttempts: 5, BaseDelay: time.Hour}, func() error {
		return errors.New("SQLITE_BUSY")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
