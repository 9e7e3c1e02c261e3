// Package conversation manages client-side chat state: message history,
// send and retry lifecycle, voice input and local persistence.
package conversation

import (
	"context"
	"time"

	"github.com/maisondeculture/leguide/internal/domain"
)

// MaxRetries is the number of failures after which retrying is disabled.
const MaxRetries = 3

// ErrorKind classifies a failed send.
type ErrorKind string

const (
	ErrorNetwork ErrorKind = "network"
	ErrorAPI     ErrorKind = "api"
	ErrorTimeout ErrorKind = "timeout"
	ErrorUnknown ErrorKind = "unknown"
)

// ErrorState is the failure currently shown to the user.
type ErrorState struct {
	Kind        ErrorKind
	Message     string
	Timestamp   time.Time
	RetryCount  int
	LastAttempt string
	// Retry resends the last user message after a backoff. Nil when no retry is offered.
	Retry func(ctx context.Context) error
}

// State is the complete client-visible chat state.
type State struct {
	Messages         []domain.Message
	Input            string
	Loading          bool
	Listening        bool
	ShowScrollButton bool
	Error            *ErrorState
	RetryCount       int
}

// Action is a state transition. The set of actions is closed.
type Action interface {
	apply(State) State
}

type (
	// SetMessages replaces the message list and clears the error.
	SetMessages struct{ Messages []domain.Message }
	// AddMessage appends one message and clears the error.
	AddMessage struct{ Message domain.Message }
	// SetInput replaces the input buffer.
	SetInput struct{ Text string }
	// SetLoading toggles the in-flight flag.
	SetLoading struct{ Loading bool }
	// SetListening toggles the voice-input flag.
	SetListening struct{ Listening bool }
	// SetScrollButton toggles the jump-to-latest affordance.
	SetScrollButton struct{ Show bool }
	// SetError replaces the current error; nil dismisses it.
	SetError struct{ Error *ErrorState }
	// IncrementRetry counts one failure, up to MaxRetries.
	IncrementRetry struct{}
	// ResetRetry zeroes the failure count.
	ResetRetry struct{}
	// ClearMessages empties history and resets the error and retry count.
	ClearMessages struct{}
)

func (a SetMessages) apply(s State) State {
	s.Messages = append([]domain.Message(nil), a.Messages...)
	s.Error = nil
	return s
}

func (a AddMessage) apply(s State) State {
	msgs := make([]domain.Message, len(s.Messages), len(s.Messages)+1)
	copy(msgs, s.Messages)
	s.Messages = append(msgs, a.Message)
	s.Error = nil
	return s
}

func (a SetInput) apply(s State) State {
	s.Input = a.Text
	return s
}

func (a SetLoading) apply(s State) State {
	s.Loading = a.Loading
	return s
}

func (a SetListening) apply(s State) State {
	s.Listening = a.Listening
	return s
}

func (a SetScrollButton) apply(s State) State {
	s.ShowScrollButton = a.Show
	return s
}

func (a SetError) apply(s State) State {
	s.Error = a.Error
	return s
}

func (IncrementRetry) apply(s State) State {
	if s.RetryCount < MaxRetries {
		s.RetryCount++
	}
	return s
}

func (ResetRetry) apply(s State) State {
	s.RetryCount = 0
	return s
}

func (ClearMessages) apply(s State) State {
	s.Messages = nil
	s.Error = nil
	s.RetryCount = 0
	return s
}

// Reduce applies a to s and returns the new state. It never blocks.
func Reduce(s State, a Action) State {
	return a.apply(s)
}

func (s State) clone() State {
	s.Messages = append([]domain.Message(nil), s.Messages...)
	return s
}
