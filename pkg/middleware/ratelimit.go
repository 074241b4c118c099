package middleware

import (
	"net"
	"net/http"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// maxLimiterKeys bounds the per-client map; it is reset when full.
const maxLimiterKeys = 10000

// ClientLimiter hands out one token bucket per client IP.
type ClientLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func NewClientLimiter(perSecond float64, burst int) *ClientLimiter {
	return &ClientLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(perSecond),
		burst:    burst,
	}
}

func (cl *ClientLimiter) Allow(key string) bool {
	cl.mu.Lock()
	limiter, ok := cl.limiters[key]
	if !ok {
		if len(cl.limiters) >= maxLimiterKeys {
			cl.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(cl.rate, cl.burst)
		cl.limiters[key] = limiter
	}
	cl.mu.Unlock()

	return limiter.Allow()
}

// RateLimit calls onLimit instead of next once the client's bucket is empty.
func RateLimit(limiter *ClientLimiter, onLimit http.HandlerFunc, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r)
			if !limiter.Allow(ip) {
				logger.Warn("Rate limit exceeded",
					zap.String("ip", ip),
					zap.String("path", r.URL.Path))
				onLimit(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP strips the port from RemoteAddr.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
