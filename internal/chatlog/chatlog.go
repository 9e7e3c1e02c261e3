// Package chatlog writes an asynchronous NDJSON audit log of chat traffic.
package chatlog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Channels and directions used by the chat transports.
const (
	ChannelHTTP = "chat_http"
	ChannelWS   = "chat_ws"

	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// Event is a single conversation log line.
type Event struct {
	Timestamp string         `json:"ts"`
	RequestID string         `json:"request_id,omitempty"`
	ClientIP  string         `json:"client_ip,omitempty"`
	Channel   string         `json:"channel"`
	Direction string         `json:"direction"`
	EventType string         `json:"event_type"`
	Language  string         `json:"language,omitempty"`
	Content   string         `json:"content,omitempty"`
	Meta      map[string]any `json:"meta,omitempty"`
}

// Logger records conversation events without blocking the caller.
type Logger interface {
	Log(event Event)
	Close() error
}

// Config controls the conversation log.
type Config struct {
	Enabled   bool
	Path      string
	QueueSize int
}

// New returns a file-backed Logger, or a no-op Logger when logging is disabled.
func New(cfg Config, logger *slog.Logger) (Logger, error) {
	if !cfg.Enabled {
		return Noop{}, nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create conversation log directory: %w", err)
	}

	l := &fileLogger{
		out: &lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28,
		},
		queue:  make(chan Event, cfg.QueueSize),
		done:   make(chan struct{}),
		logger: logger,
	}
	go l.run()
	return l, nil
}

type fileLogger struct {
	out    *lumberjack.Logger
	queue  chan Event
	done   chan struct{}
	logger *slog.Logger

	mu      sync.RWMutex
	closed  bool
	dropped atomic.Int64
}

// Log enqueues event. A full queue drops the event.
func (l *fileLogger) Log(event Event) {
	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return
	}
	select {
	case l.queue <- event:
	default:
		l.logger.Warn("Conversation log queue full, dropping event",
			"event_type", event.EventType,
			"dropped_total", l.dropped.Add(1),
		)
	}
}

func (l *fileLogger) run() {
	defer close(l.done)
	for event := range l.queue {
		line, err := json.Marshal(event)
		if err != nil {
			l.logger.Warn("Failed to encode conversation event", "error", err)
			continue
		}
		line = append(line, '\n')
		if _, err := l.out.Write(line); err != nil {
			l.logger.Warn("Failed to write conversation event", "error", err)
		}
	}
}

// Close drains queued events and closes the log file.
func (l *fileLogger) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	close(l.queue)
	l.mu.Unlock()

	<-l.done
	return l.out.Close()
}

// Noop discards all events.
type Noop struct{}

// Log implements Logger.
func (Noop) Log(Event) {}

// Close implements Logger.
func (Noop) Close() error { return nil }
