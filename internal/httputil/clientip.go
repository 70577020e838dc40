// Package httputil has small helpers shared by the HTTP layer.
package httputil

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// ClientIP returns the client address for a request. Behind a trusted
// reverse proxy (trustProxy true) the forwarding headers win: the leftmost
// X-Forwarded-For entry first, then X-Real-IP, with RemoteAddr as the
// fallback. Never enable trustProxy on a directly exposed listener, since
// both headers are client controlled.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		for _, candidate := range forwardedCandidates(r) {
			if addr, err := netip.ParseAddr(candidate); err == nil {
				return addr.String()
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// forwardedCandidates lists proxy-supplied addresses in precedence order.
// Entries that do not parse as addresses are skipped by the caller.
func forwardedCandidates(r *http.Request) []string {
	var candidates []string
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		candidates = append(candidates, strings.TrimSpace(first))
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		candidates = append(candidates, strings.TrimSpace(xri))
	}
	return candidates
}
