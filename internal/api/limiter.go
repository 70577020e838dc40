package api

import (
	"sync"
)

// profileLimiter tracks concurrent profile evaluations per IP and globally.
type profileLimiter struct {
	mu       sync.Mutex
	inflight map[string]int
	total    int
	maxPerIP int
	maxTotal int
}

func newProfileLimiter(maxPerIP int) *profileLimiter {
	return &profileLimiter{
		inflight: make(map[string]int),
		maxPerIP: maxPerIP,
		maxTotal: 64, // Global cap across all clients.
	}
}

// acquire attempts to register a new evaluation for the given IP.
// Returns false if the IP or global limit has been reached.
func (l *profileLimiter) acquire(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.total >= l.maxTotal {
		return false
	}
	if l.inflight[ip] >= l.maxPerIP {
		return false
	}

	l.inflight[ip]++
	l.total++
	return true
}

// release decrements the evaluation count for the given IP.
func (l *profileLimiter) release(ip string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.inflight[ip]--
	l.total--
	if l.inflight[ip] <= 0 {
		delete(l.inflight, ip)
	}
}

// count returns the number of active evaluations for the given IP.
func (l *profileLimiter) count(ip string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inflight[ip]
}
