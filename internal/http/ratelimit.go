package http

import (
	"sync"
	"time"
)

// rateLimiter enforces a fixed-window per-client request budget.
type rateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientInfo
	perMinute int
	stopCh    chan struct{}
	stopOnce  sync.Once
}

type clientInfo struct {
	count       int
	windowStart time.Time
	lastSeen    time.Time
}

func newRateLimiter(perMinute int) *rateLimiter {
	rl := &rateLimiter{
		clients:   make(map[string]*clientInfo),
		perMinute: perMinute,
		stopCh:    make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// allow reports whether the client may issue another request in the
// current one-minute window.
func (rl *rateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	info, ok := rl.clients[clientIP]
	if !ok || now.Sub(info.windowStart) >= time.Minute {
		rl.clients[clientIP] = &clientInfo{count: 1, windowStart: now, lastSeen: now}
		return true
	}

	info.lastSeen = now
	if info.count >= rl.perMinute {
		return false
	}
	info.count++
	return true
}

// cleanup drops clients not seen for ten minutes.
func (rl *rateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopCh:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-10 * time.Minute)
			rl.mu.Lock()
			for ip, info := range rl.clients {
				if info.lastSeen.Before(cutoff) {
					delete(rl.clients, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

func (rl *rateLimiter) stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}
