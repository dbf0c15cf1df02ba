package requestctx

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP extracts the client address from the request, preferring the
// first entry of X-Forwarded-For. The header is trusted as sent: any
// intermediary (or the client itself) can set it.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// IsLocalAddress reports whether ip belongs to the local development network
func IsLocalAddress(ip string) bool {
	return ip == "127.0.0.1" ||
		ip == "localhost" ||
		strings.HasPrefix(ip, "192.168.") ||
		strings.HasPrefix(ip, "10.")
}
