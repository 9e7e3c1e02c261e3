package conversation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/maisondeculture/leguide/internal/domain"
)

// StorageKey is the fixed key the conversation snapshot is stored under.
const StorageKey = "le_guide_chat_history"

// SessionTTL is how long a stored snapshot stays eligible for replay.
const SessionTTL = 24 * time.Hour

var (
	errInvalidSession = errors.New("invalid stored chat state")
	errExpiredSession = errors.New("stored chat state expired")
)

// PersistedSession is the stored conversation snapshot.
type PersistedSession struct {
	Messages []domain.Message `json:"messages"`
	// Timestamp is the save time in Unix milliseconds.
	Timestamp int64                   `json:"timestamp"`
	Context   *domain.BusinessContext `json:"context"`
}

func encodeSession(msgs []domain.Message, bc domain.BusinessContext, now time.Time) ([]byte, error) {
	data, err := json.Marshal(PersistedSession{
		Messages:  msgs,
		Timestamp: now.UnixMilli(),
		Context:   &bc,
	})
	if err != nil {
		return nil, fmt.Errorf("encode chat state: %w", err)
	}
	return data, nil
}

// decodeSession validates and decodes a stored snapshot. A snapshot that lacks
// any of messages, timestamp or context is rejected as a whole.
func decodeSession(data []byte, now time.Time) (*PersistedSession, error) {
	var raw struct {
		Messages  json.RawMessage `json:"messages"`
		Timestamp *int64          `json:"timestamp"`
		Context   json.RawMessage `json:"context"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidSession, err)
	}

	if !isJSONArray(raw.Messages) {
		return nil, fmt.Errorf("%w: messages is not a list", errInvalidSession)
	}
	if raw.Timestamp == nil || *raw.Timestamp == 0 {
		return nil, fmt.Errorf("%w: missing timestamp", errInvalidSession)
	}
	if len(raw.Context) == 0 || string(raw.Context) == "null" {
		return nil, fmt.Errorf("%w: missing context", errInvalidSession)
	}

	savedAt := time.UnixMilli(*raw.Timestamp)
	if now.Sub(savedAt) > SessionTTL {
		return nil, errExpiredSession
	}

	sess := &PersistedSession{Timestamp: *raw.Timestamp}
	if err := json.Unmarshal(raw.Messages, &sess.Messages); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidSession, err)
	}
	var bc domain.BusinessContext
	if err := json.Unmarshal(raw.Context, &bc); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidSession, err)
	}
	sess.Context = &bc
	return sess, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
