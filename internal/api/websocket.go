package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/maisondeculture/leguide/internal/chatlog"
	"github.com/maisondeculture/leguide/internal/identity"
)

// wsControl is a control frame; frames without a type are chat requests.
type wsControl struct {
	Type string `json:"type"`
}

// ServeWS handles GET /ws/chat. Every text frame is one chat request and gets
// exactly one reply frame.
func (h *ChatHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	clientIP := identity.ClientIP(r)
	requestID := chiMiddleware.GetReqID(r.Context())
	h.logger.Info("WebSocket chat connection request", "client_ip", clientIP, "request_id", requestID)

	if !h.checkOrigin(r) {
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}

	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.logger.Error("Failed to accept WebSocket", "error", err, "client_ip", clientIP)
		return
	}
	defer func() {
		if closeErr := ws.Close(websocket.StatusNormalClosure, "session ended"); closeErr != nil {
			h.logger.Debug("Failed to close websocket", "error", closeErr, "client_ip", clientIP)
		}
	}()

	// Oversized frames close the connection with StatusMessageTooBig.
	ws.SetReadLimit(h.maxBodySize)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	ex := exchange{channel: chatlog.ChannelWS, clientIP: clientIP, requestID: requestID}
	for {
		typ, frame, err := ws.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != -1 {
				h.logger.Debug("WebSocket closed by client", "client_ip", clientIP)
			} else {
				h.logger.Warn("WebSocket read error", "error", err, "client_ip", clientIP)
			}
			return
		}
		if typ != websocket.MessageText {
			if err := wsjson.Write(ctx, ws, wsReply(failed(http.StatusBadRequest, msgInvalid))); err != nil {
				h.logger.Debug("Failed to send reply", "error", err)
				return
			}
			continue
		}

		var ctl wsControl
		if json.Unmarshal(frame, &ctl) == nil && ctl.Type == "ping" {
			if err := wsjson.Write(ctx, ws, map[string]string{"type": "pong"}); err != nil {
				h.logger.Debug("Failed to send pong", "error", err)
				return
			}
			continue
		}

		o, ok := h.admit(ctx, ex)
		if ok {
			o = h.process(ctx, ex, frame)
		}
		if err := wsjson.Write(ctx, ws, wsReply(o)); err != nil {
			h.logger.Debug("Failed to send reply", "error", err, "client_ip", clientIP)
			return
		}
	}
}

// wsReply is the HTTP body of o, plus the HTTP status for failures.
func wsReply(o outcome) map[string]any {
	body := o.body()
	if o.status != http.StatusOK {
		body["status"] = o.status
	}
	return body
}

func (h *ChatHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, o := range h.allowedOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	h.logger.Warn("WebSocket origin rejected", "origin", origin, "allowed", h.allowedOrigins)
	return false
}
