// Package api provides the HTTP and WebSocket handlers for the chat service.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/maisondeculture/leguide/internal/ratelimit"
)

// Fixed client-facing error messages. Internal error text is never returned.
const (
	msgConfigError  = "Server configuration error"
	msgTooMany      = "Too many requests"
	msgInvalid      = "Invalid request: message and context are required"
	msgEmpty        = "Message cannot be empty"
	msgTooLong      = "Message is too long (max 1000 characters)"
	msgGenerateFail = "Failed to generate response"
	msgBodyTooLarge = "Request body too large"
)

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// resetMillis renders a limiter reset instant as Unix milliseconds.
func resetMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// setRateLimitHeaders writes the X-RateLimit-* headers for res.
func setRateLimitHeaders(w http.ResponseWriter, res ratelimit.Result) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetMillis(res.Reset), 10))
}
