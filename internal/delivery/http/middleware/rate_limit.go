package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"hometex-storefront/pkg/utils"

	"golang.org/x/time/rate"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles each client IP with its own token bucket. Preflight
// requests and exempt paths are never counted. Idle clients are forgotten by a
// background sweep that ends with Shutdown or when ctx is done.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	exempt  map[string]bool

	ctx    context.Context
	cancel context.CancelFunc
}

func NewRateLimiter(ctx context.Context, limit rate.Limit, burst int, sweepEvery, ttl time.Duration, exemptPaths ...string) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		limit:   limit,
		burst:   burst,
		ttl:     ttl,
		exempt:  make(map[string]bool, len(exemptPaths)),
	}
	for _, p := range exemptPaths {
		rl.exempt[p] = true
	}
	rl.ctx, rl.cancel = context.WithCancel(ctx)
	go rl.sweepLoop(sweepEvery)
	return rl
}

func (rl *RateLimiter) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || rl.exempt[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			if wait, ok := rl.take(getClientIP(r)); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				utils.WriteError(w, http.StatusTooManyRequests, "Too many requests, slow down")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// take spends one token for ip. When the bucket is empty it returns how long
// the client has to wait, and nothing is spent.
func (rl *RateLimiter) take(ip string) (time.Duration, bool) {
	now := time.Now()
	res := rl.limiterFor(ip, now).ReserveN(now, 1)
	if !res.OK() {
		return time.Second, false
	}
	if wait := res.DelayFrom(now); wait > 0 {
		res.CancelAt(now)
		return max(wait, time.Second), false
	}
	return 0, true
}

func (rl *RateLimiter) limiterFor(ip string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter
}

func (rl *RateLimiter) sweepLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			rl.sweep(now)
		case <-rl.ctx.Done():
			return
		}
	}
}

func (rl *RateLimiter) sweep(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, c := range rl.clients {
		if now.Sub(c.lastSeen) > rl.ttl {
			delete(rl.clients, ip)
		}
	}
}

// Shutdown stops the sweep loop.
func (rl *RateLimiter) Shutdown() {
	rl.cancel()
}
