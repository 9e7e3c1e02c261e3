package conversation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBusy is returned when a send starts while another is in flight.
	ErrBusy = errors.New("conversation: a message is already being sent")
	// ErrTimeout is the deadline signal raised when the responder is too slow.
	ErrTimeout = errors.New("timeout")
	// ErrMaxRetries is returned by Retry once MaxRetries failures have accumulated.
	ErrMaxRetries = errors.New("conversation: maximum retry attempts reached")
	// ErrNothingToRetry is returned by Retry when there is no failed send to repeat.
	ErrNothingToRetry = errors.New("conversation: nothing to retry")
	// ErrUnknownQuickAction is returned for quick-action ids not in the catalogue.
	ErrUnknownQuickAction = errors.New("conversation: unknown quick action")
)

type errorCopy struct {
	Title      string
	Message    string
	RetryLabel string
}

var errorCopies = map[ErrorKind]errorCopy{
	ErrorNetwork: {
		Title:      "Connection Error",
		Message:    "Unable to connect to the server. Please check your internet connection.",
		RetryLabel: "Retry connection",
	},
	ErrorAPI: {
		Title:      "Service Error",
		Message:    "The AI service is temporarily unavailable. Please try again in a moment.",
		RetryLabel: "Retry request",
	},
	ErrorTimeout: {
		Title:      "Request Timeout",
		Message:    "The request took too long to complete. Please try again.",
		RetryLabel: "Retry request",
	},
	ErrorUnknown: {
		Title:      "Unexpected Error",
		Message:    "Something went wrong. Please try again or contact support if the issue persists.",
		RetryLabel: "Try again",
	},
}

const maxRetriesText = "Maximum retry attempts reached. Please try a different question."

// classify infers the failure kind from the error text. It is a heuristic: only
// the timeout signal is authoritative.
func classify(err error) ErrorKind {
	if errors.Is(err, ErrTimeout) {
		return ErrorTimeout
	}
	msg := err.Error()
	switch {
	case msg == "timeout":
		return ErrorTimeout
	case strings.Contains(msg, "network"), strings.Contains(msg, "connection"):
		return ErrorNetwork
	case strings.Contains(msg, "API"), strings.Contains(msg, "service"):
		return ErrorAPI
	default:
		return ErrorUnknown
	}
}

// userMessage is the banner text for kind. Unknown failures use the localized generic text.
func userMessage(kind ErrorKind, lang string) string {
	if kind == ErrorUnknown {
		return GenericErrorText(lang)
	}
	return errorCopies[kind].Message
}

// Banner is the presentation of the current error.
type Banner struct {
	Title   string
	Message string
	// RetryLabel is empty when no retry is offered.
	RetryLabel string
	// Notice is the retry status line, such as attempts left or the max-retries text.
	Notice string
}

// BannerFor renders s.Error. It returns false when there is no error.
func BannerFor(s State) (Banner, bool) {
	if s.Error == nil {
		return Banner{}, false
	}
	c, ok := errorCopies[s.Error.Kind]
	if !ok {
		c = errorCopies[ErrorUnknown]
	}

	b := Banner{Title: c.Title, Message: s.Error.Message}
	switch {
	case s.RetryCount >= MaxRetries:
		b.Notice = maxRetriesText
	case s.Error.Retry != nil:
		b.RetryLabel = c.RetryLabel
		b.Notice = fmt.Sprintf("Retry (%d attempts left)", MaxRetries-s.RetryCount)
	}
	return b, true
}
