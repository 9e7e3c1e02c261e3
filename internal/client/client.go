// Package client talks to the chat API over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/maisondeculture/leguide/internal/domain"
)

// Client is a conversation.Responder backed by POST /api/chat.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the server at baseURL. A nil httpClient uses a
// client with a 60 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

type chatRequest struct {
	Message             string                 `json:"message"`
	Context             domain.BusinessContext `json:"context"`
	ConversationHistory []domain.HistoryEntry  `json:"conversationHistory"`
}

type chatResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

// Respond sends one chat request and returns the reply. Transport failures
// read "network request failed", non-200 replies "API error".
func (c *Client) Respond(ctx context.Context, text string, bc domain.BusinessContext, history []domain.HistoryEntry) (string, error) {
	if history == nil {
		history = []domain.HistoryEntry{}
	}
	payload, err := json.Marshal(chatRequest{Message: text, Context: bc, ConversationHistory: history})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("network request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("network request failed: read body: %w", err)
	}

	var out chatResponse
	decodeErr := json.Unmarshal(body, &out)
	if resp.StatusCode != http.StatusOK {
		msg := out.Error
		if decodeErr != nil || msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return "", fmt.Errorf("API error: status %d: %s", resp.StatusCode, msg)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("decode chat response: %w", decodeErr)
	}
	if out.Response == "" {
		return "", errors.New("empty chat response")
	}
	return out.Response, nil
}
