// Package ratelimit ограничивает частоту запросов с одного IP.
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/exp/slog"
	"golang.org/x/time/rate"
)

const (
	maxSources = 1000
	sourceTTL  = 5 * time.Minute
)

type Limiter struct {
	api      huma.API
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
	log      *slog.Logger
}

// New создает ограничитель на requestsPerMin запросов в минуту с источника.
// Неактивные источники вытесняются через sourceTTL.
func New(api huma.API, requestsPerMin int, log *slog.Logger) *Limiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 1
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		api:      api,
		limiters: expirable.NewLRU[string, *rate.Limiter](maxSources, nil, sourceTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
		log:      log.With("component", "rate_limiter"),
	}
}

// Allow сообщает, можно ли пропустить запрос от источника key.
func (l *Limiter) Allow(key string) bool {
	limiter, ok := l.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

func (l *Limiter) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		ip := clientIP(ctx)
		if !l.Allow(ip) {
			l.log.Warn("rate limit exceeded", "ip", ip, "path", ctx.URL().Path)
			ctx.SetHeader("Retry-After", "60")
			_ = huma.WriteErr(l.api, ctx, http.StatusTooManyRequests, "Too Many Attempts.")
			return
		}
		next(ctx)
	}
}

func clientIP(ctx huma.Context) string {
	if xff := ctx.Header("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	if xri := ctx.Header("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, err := net.SplitHostPort(ctx.RemoteAddr())
	if err != nil {
		return ctx.RemoteAddr()
	}
	return ip
}
