// Package identity resolves the caller identity used for rate limiting.
package identity

import (
	"net"
	"net/http"
	"strings"
)

// DefaultClientIP is used when the request carries no usable address.
const DefaultClientIP = "127.0.0.1"

// ClientIP returns the caller's address. Run chi's RealIP middleware first so
// proxy headers are folded into RemoteAddr.
func ClientIP(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	if addr == "" {
		return DefaultClientIP
	}
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}
	host = strings.Trim(host, "[]")
	if host == "" {
		return DefaultClientIP
	}
	return host
}
