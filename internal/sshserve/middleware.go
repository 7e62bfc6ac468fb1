package sshserve

import (
	"sync"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/google/uuid"

	"github.com/opencode-ai/folio/internal/logging"
)

// SessionLogMiddleware logs session start and end with a generated
// session id.
func SessionLogMiddleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			logger := logging.Component("sshserve").With().
				Str("session_id", uuid.NewString()).
				Str("user", s.User()).
				Str("remote_ip", remoteIP(s)).
				Logger()

			start := time.Now()
			pty, _, hasPty := s.Pty()
			event := logger.Info().Bool("pty", hasPty)
			if hasPty {
				event = event.Str("term", pty.Term).Int("width", pty.Window.Width).Int("height", pty.Window.Height)
			}
			event.Msg("session started")

			next(s)

			logger.Info().Dur("duration", time.Since(start)).Msg("session ended")
		}
	}
}

type ipBucket struct {
	tokens float64
	last   time.Time
}

// limiter is a per-IP token bucket.
type limiter struct {
	mu            sync.Mutex
	ratePerSecond float64
	burst         float64
	buckets       map[string]ipBucket
}

func newLimiter(limitPerMinute, burst int) *limiter {
	if limitPerMinute <= 0 {
		limitPerMinute = 30
	}
	if burst <= 0 {
		burst = 10
	}
	return &limiter{
		ratePerSecond: float64(limitPerMinute) / 60.0,
		burst:         float64(burst),
		buckets:       make(map[string]ipBucket),
	}
}

func (l *limiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	bucket := l.buckets[ip]
	if bucket.last.IsZero() {
		bucket = ipBucket{tokens: l.burst, last: now}
	}

	elapsed := now.Sub(bucket.last).Seconds()
	if elapsed > 0 {
		bucket.tokens += elapsed * l.ratePerSecond
		if bucket.tokens > l.burst {
			bucket.tokens = l.burst
		}
		bucket.last = now
	}

	if bucket.tokens < 1 {
		l.buckets[ip] = bucket
		return false
	}

	bucket.tokens--
	l.buckets[ip] = bucket
	return true
}

// RateLimitMiddleware rejects sessions from an IP once its bucket is empty.
func RateLimitMiddleware(limitPerMinute, burst int) wish.Middleware {
	l := newLimiter(limitPerMinute, burst)

	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			now := time.Now().UTC()
			ip := remoteIP(s)
			if !l.allow(ip, now) {
				logger := logging.Component("sshserve")
				logger.Warn().Str("remote_ip", ip).Msg("rate limit exceeded")
				_, _ = s.Write([]byte("rate limit exceeded\n"))
				return
			}
			next(s)
		}
	}
}
