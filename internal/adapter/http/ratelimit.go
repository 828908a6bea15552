package httpadapter

import (
	"context"
	"sync"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"golang.org/x/time/rate"
)

// IPLimiter hands out one token bucket per client address.
type IPLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters map[string]*rate.Limiter
}

func NewIPLimiter(perSecond float64, burst int) *IPLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &IPLimiter{
		limit:    rate.Limit(perSecond),
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (l *IPLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	limiter, ok := l.limiters[ip]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[ip] = limiter
	}
	return limiter
}

func (l *IPLimiter) Allow(ip string) bool {
	return l.get(ip).Allow()
}

func rateLimitMiddleware(l *IPLimiter) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		if l != nil && !l.Allow(ctx.ClientIP()) {
			ctx.Response.Header.Set("Retry-After", "1")
			writeErrorBody(ctx, consts.StatusTooManyRequests, "rate_limited", "too many requests")
			ctx.Abort()
			return
		}
		ctx.Next(c)
	}
}
