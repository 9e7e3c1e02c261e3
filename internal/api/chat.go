package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/maisondeculture/leguide/internal/chatlog"
	"github.com/maisondeculture/leguide/internal/config"
	"github.com/maisondeculture/leguide/internal/domain"
	"github.com/maisondeculture/leguide/internal/identity"
	"github.com/maisondeculture/leguide/internal/ratelimit"
	"github.com/maisondeculture/leguide/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	// defaultMaxRequestBodySize is the default maximum allowed request body size (1MB).
	defaultMaxRequestBodySize = 1 << 20
	// MaxMessageLength is the longest accepted message, in characters.
	MaxMessageLength = 1000
)

// Guard reports whether the server is configured to serve chat requests.
type Guard interface {
	CheckRequired() error
}

// Responder produces the assistant reply for a validated message.
type Responder interface {
	Respond(ctx context.Context, text string, bc domain.BusinessContext, history []domain.HistoryEntry) (string, error)
}

// ChatOptions configures a ChatHandler. Guard, Limiter and Responder are required.
type ChatOptions struct {
	Guard          Guard
	Limiter        ratelimit.Limiter
	Responder      Responder
	Log            chatlog.Logger
	Tracer         trace.Tracer
	Metrics        *telemetry.ChatMetrics
	Logger         *slog.Logger
	AllowedOrigins []string
	MaxBodySize    int64
}

// ChatHandler serves the chat endpoints.
type ChatHandler struct {
	guard          Guard
	limiter        ratelimit.Limiter
	responder      Responder
	log            chatlog.Logger
	tracer         trace.Tracer
	metrics        *telemetry.ChatMetrics
	logger         *slog.Logger
	allowedOrigins []string
	maxBodySize    int64
}

// NewChatHandler creates a ChatHandler. Optional collaborators default to no-ops.
func NewChatHandler(opts ChatOptions) *ChatHandler {
	h := &ChatHandler{
		guard:          opts.Guard,
		limiter:        opts.Limiter,
		responder:      opts.Responder,
		log:            opts.Log,
		tracer:         opts.Tracer,
		metrics:        opts.Metrics,
		logger:         opts.Logger,
		allowedOrigins: opts.AllowedOrigins,
		maxBodySize:    opts.MaxBodySize,
	}
	if h.log == nil {
		h.log = chatlog.Noop{}
	}
	if h.tracer == nil || h.metrics == nil {
		tracer, meter := telemetry.Noop()
		if h.tracer == nil {
			h.tracer = tracer
		}
		if h.metrics == nil {
			// Noop instruments never fail to create.
			h.metrics, _ = telemetry.NewChatMetrics(meter)
		}
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	if len(h.allowedOrigins) == 0 {
		h.allowedOrigins = []string{"*"}
	}
	if h.maxBodySize <= 0 {
		h.maxBodySize = defaultMaxRequestBodySize
	}
	return h
}

// RegisterRoutes registers the chat routes.
func (h *ChatHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/chat", func(r chi.Router) {
		r.Post("/", h.HandleChat)
		r.Get("/", h.Status)
	})
	r.Get("/ws/chat", h.ServeWS)
}

// chatRequest is the request body of POST /api/chat and of each WebSocket frame.
type chatRequest struct {
	Message             json.RawMessage       `json:"message"`
	Context             json.RawMessage       `json:"context"`
	ConversationHistory []domain.HistoryEntry `json:"conversationHistory,omitempty"`
}

// outcome is the transport-neutral result of one chat exchange.
type outcome struct {
	status   int
	response string
	errMsg   string
	limit    *ratelimit.Result
}

func (o outcome) body() map[string]any {
	switch {
	case o.status == http.StatusOK:
		return map[string]any{"response": o.response}
	case o.limit != nil:
		return map[string]any{
			"error":     o.errMsg,
			"limit":     o.limit.Limit,
			"reset":     resetMillis(o.limit.Reset),
			"remaining": o.limit.Remaining,
		}
	default:
		return map[string]any{"error": o.errMsg}
	}
}

func (o outcome) label() string {
	switch o.status {
	case http.StatusOK:
		return "ok"
	case http.StatusTooManyRequests:
		return "rate_limited"
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		return "invalid"
	}
	if o.errMsg == msgConfigError {
		return "config_error"
	}
	return "error"
}

func failed(status int, msg string) outcome {
	return outcome{status: status, errMsg: msg}
}

// exchange carries the per-request identity into process.
type exchange struct {
	channel   string
	clientIP  string
	requestID string
}

// HandleChat handles POST /api/chat.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	ex := exchange{
		channel:   chatlog.ChannelHTTP,
		clientIP:  identity.ClientIP(r),
		requestID: chiMiddleware.GetReqID(r.Context()),
	}

	// The guard and limiter run before the body is read.
	if res, ok := h.admit(r.Context(), ex); !ok {
		h.writeOutcome(w, res)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.writeOutcome(w, h.record(r.Context(), failed(http.StatusRequestEntityTooLarge, msgBodyTooLarge)))
			return
		}
		h.logger.Warn("Failed to read chat request body", "error", err)
		h.writeOutcome(w, h.record(r.Context(), failed(http.StatusBadRequest, msgInvalid)))
		return
	}

	h.writeOutcome(w, h.process(r.Context(), ex, body))
}

func (h *ChatHandler) writeOutcome(w http.ResponseWriter, o outcome) {
	if o.limit != nil {
		setRateLimitHeaders(w, *o.limit)
	}
	JSON(w, o.status, o.body())
}

// Status handles GET /api/chat.
func (h *ChatHandler) Status(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, map[string]any{
		"status":             "Le Guide Chat API is running",
		"version":            telemetry.ServiceVersion,
		"supportedLanguages": domain.SupportedLanguages,
	})
}

// admit runs the environment guard and the rate limiter.
func (h *ChatHandler) admit(ctx context.Context, ex exchange) (outcome, bool) {
	if err := h.guard.CheckRequired(); err != nil {
		h.logger.Error("Chat API configuration error", "error", err)
		return h.record(ctx, failed(http.StatusInternalServerError, msgConfigError)), false
	}

	res := h.limiter.Limit(ex.clientIP)
	if !res.Success {
		h.logger.Warn("Chat rate limit exceeded",
			"client_ip", ex.clientIP,
			"limit", res.Limit,
			"reset", res.Reset,
		)
		h.metrics.RateLimited.Add(ctx, 1, metric.WithAttributes(attribute.String("channel", ex.channel)))
		return h.record(ctx, outcome{status: http.StatusTooManyRequests, errMsg: msgTooMany, limit: &res}), false
	}
	return outcome{}, true
}

// process validates one request body and generates the reply. Callers must
// have admitted the request first.
func (h *ChatHandler) process(ctx context.Context, ex exchange, body []byte) outcome {
	text, bc, history, reject := parseChatRequest(body)
	if reject != "" {
		return h.record(ctx, failed(http.StatusBadRequest, reject))
	}

	lang := domain.NormalizeLanguage(bc.Query)
	h.logger.Info("Chat request",
		"channel", ex.channel,
		"client_ip", ex.clientIP,
		"request_id", ex.requestID,
		"language", lang,
		"message_type", string(bc.MessageType),
		"message_length", utf8.RuneCountInString(text),
		"history_length", len(history),
	)
	h.log.Log(chatlog.Event{
		RequestID: ex.requestID,
		ClientIP:  ex.clientIP,
		Channel:   ex.channel,
		Direction: chatlog.DirectionInbound,
		EventType: "chat_user_message",
		Language:  lang,
		Content:   text,
		Meta: map[string]any{
			"message_type": string(bc.MessageType),
			"country":      bc.Country,
		},
	})

	ctx, span := h.tracer.Start(ctx, "chat.generate", trace.WithAttributes(
		attribute.String("chat.channel", ex.channel),
		attribute.String("chat.language", lang),
		attribute.String("chat.message_type", string(bc.MessageType)),
		attribute.Int("chat.history_length", len(history)),
	))
	start := time.Now()
	reply, err := h.responder.Respond(ctx, text, bc, history)
	span.SetAttributes(attribute.Int64("chat.duration_ms", time.Since(start).Milliseconds()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		span.End()
		h.logger.Error("Chat API error", "error", err, "request_id", ex.requestID)
		if errors.Is(err, config.ErrMissingEnv) {
			return h.record(ctx, failed(http.StatusInternalServerError, msgConfigError))
		}
		return h.record(ctx, failed(http.StatusInternalServerError, msgGenerateFail))
	}
	span.End()

	h.log.Log(chatlog.Event{
		RequestID: ex.requestID,
		ClientIP:  ex.clientIP,
		Channel:   ex.channel,
		Direction: chatlog.DirectionOutbound,
		EventType: "chat_assistant_message",
		Language:  lang,
		Content:   reply,
	})
	return h.record(ctx, outcome{status: http.StatusOK, response: reply})
}

// record counts o by outcome and returns it unchanged.
func (h *ChatHandler) record(ctx context.Context, o outcome) outcome {
	h.metrics.Requests.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", o.label())))
	return o
}

// parseChatRequest decodes and validates a request body. It returns the
// trimmed message, or a non-empty rejection message.
func parseChatRequest(body []byte) (string, domain.BusinessContext, []domain.HistoryEntry, string) {
	var req chatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return "", domain.BusinessContext{}, nil, msgInvalid
	}

	var message string
	if !isJSONString(req.Message) || json.Unmarshal(req.Message, &message) != nil || message == "" {
		return "", domain.BusinessContext{}, nil, msgInvalid
	}
	if isJSONNull(req.Context) {
		return "", domain.BusinessContext{}, nil, msgInvalid
	}
	var bc domain.BusinessContext
	if err := json.Unmarshal(req.Context, &bc); err != nil {
		return "", domain.BusinessContext{}, nil, msgInvalid
	}

	text := strings.TrimSpace(message)
	if text == "" {
		return "", domain.BusinessContext{}, nil, msgEmpty
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return "", domain.BusinessContext{}, nil, msgTooLong
	}

	history := req.ConversationHistory
	if len(history) == 0 {
		history = bc.PreviousMessages
	}
	return text, bc, history, ""
}

func isJSONString(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '"'
}

func isJSONNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
