// Package domain contains core domain types for the Le Guide chat service.
package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Source records how a user message entered the conversation.
type Source string

const (
	SourceUser        Source = "user"
	SourceRetry       Source = "retry"
	SourceQuickAction Source = "quick_action"
)

// MessageType distinguishes canned quick-action prompts from free text.
type MessageType string

const (
	MessageTypeQuickAction MessageType = "quick_action"
	MessageTypeFreeform    MessageType = "freeform"
)

// Metadata is attached to a message according to its role.
// The only implementations are UserMetadata and AssistantMetadata.
type Metadata interface {
	metadataRole() Role
}

// UserMetadata annotates messages typed or selected by the user.
type UserMetadata struct {
	IsQuickAction bool   `json:"isQuickAction"`
	Source        Source `json:"source"`
}

func (UserMetadata) metadataRole() Role { return RoleUser }

// AssistantMetadata annotates generated replies.
type AssistantMetadata struct {
	RespondingTo MessageType      `json:"respondingTo"`
	Context      *BusinessContext `json:"context,omitempty"`
}

func (AssistantMetadata) metadataRole() Role { return RoleAssistant }

// Message is one entry in a conversation. Messages are never mutated after creation.
type Message struct {
	ID        string
	Content   string
	Role      Role
	Timestamp time.Time
	Language  string
	Metadata  Metadata
}

type messageJSON struct {
	ID        string          `json:"id"`
	Content   string          `json:"content"`
	Role      Role            `json:"role"`
	Timestamp time.Time       `json:"timestamp"`
	Language  string          `json:"language,omitempty"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (m Message) MarshalJSON() ([]byte, error) {
	meta, err := encodeMetadata(m.Metadata)
	if err != nil {
		return nil, err
	}
	return json.Marshal(messageJSON{
		ID:        m.ID,
		Content:   m.Content,
		Role:      m.Role,
		Timestamp: m.Timestamp,
		Language:  m.Language,
		Metadata:  meta,
	})
}

// UnmarshalJSON implements json.Unmarshaler. Metadata is decoded into the
// variant that matches the message role.
func (m *Message) UnmarshalJSON(data []byte) error {
	var raw messageJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	meta, err := decodeMetadata(raw.Role, raw.Metadata)
	if err != nil {
		return fmt.Errorf("message %s: %w", raw.ID, err)
	}
	*m = Message{
		ID:        raw.ID,
		Content:   raw.Content,
		Role:      raw.Role,
		Timestamp: raw.Timestamp,
		Language:  raw.Language,
		Metadata:  meta,
	}
	return nil
}

// HistoryEntry is the projection of a Message sent along with a request.
type HistoryEntry struct {
	Role     Role
	Content  string
	Metadata Metadata
}

type historyJSON struct {
	Role     Role            `json:"role"`
	Content  string          `json:"content"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (h HistoryEntry) MarshalJSON() ([]byte, error) {
	meta, err := encodeMetadata(h.Metadata)
	if err != nil {
		return nil, err
	}
	return json.Marshal(historyJSON{Role: h.Role, Content: h.Content, Metadata: meta})
}

// UnmarshalJSON implements json.Unmarshaler.
func (h *HistoryEntry) UnmarshalJSON(data []byte) error {
	var raw historyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	meta, err := decodeMetadata(raw.Role, raw.Metadata)
	if err != nil {
		return err
	}
	*h = HistoryEntry{Role: raw.Role, Content: raw.Content, Metadata: meta}
	return nil
}

// History projects messages to the entries sent as conversation history.
func History(messages []Message) []HistoryEntry {
	if len(messages) == 0 {
		return nil
	}
	out := make([]HistoryEntry, len(messages))
	for i, m := range messages {
		out[i] = HistoryEntry{Role: m.Role, Content: m.Content, Metadata: m.Metadata}
	}
	return out
}

func encodeMetadata(meta Metadata) (json.RawMessage, error) {
	if meta == nil {
		return nil, nil
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}
	return data, nil
}

func decodeMetadata(role Role, raw json.RawMessage) (Metadata, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	switch role {
	case RoleUser:
		var meta UserMetadata
		if err := json.Unmarshal(raw, &meta); err != nil {
			return nil, fmt.Errorf("decode user metadata: %w", err)
		}
		return meta, nil
	case RoleAssistant:
		var meta AssistantMetadata
		if err := json.Unmarshal(raw, &meta); err != nil {
			return nil, fmt.Errorf("decode assistant metadata: %w", err)
		}
		return meta, nil
	default:
		// Unknown roles keep their content but lose metadata.
		return nil, nil
	}
}
