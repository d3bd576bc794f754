package httputil

import (
	"net/http"
	"strings"
)

// ClientIP returns the originating client address: the first entry of
// X-Forwarded-For when a proxy set it, otherwise the remote address with
// any port stripped.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	host := r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}
	return host
}
