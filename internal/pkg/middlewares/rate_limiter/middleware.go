package rate_limiter

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"lastmile/internal/pkg/middlewares/metrics"
	"lastmile/pkg/logger"
)

// ClientIDHeader - заголовок, по которому клиента узнают до разбора тела.
// Без него ключом служит адрес клиента.
const ClientIDHeader = "X-Client-ID"

const (
	scopeGlobal = "global"
	scopeClient = "client"
)

// Middleware - общий bucket на весь сервис.
func Middleware(log handlerLogger, rateLimiterQPS int, rlimiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rlimiter.Allow() {
				reject(w, r, log, rateLimiterQPS, scopeGlobal)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientMiddleware ограничивает каждого клиента отдельно, чтобы один курьер,
// штурмующий accept, не выедал общий лимит.
func ClientMiddleware(log handlerLogger, clientQPS int, registry KeyedLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !registry.Allow(ClientKey(r)) {
				reject(w, r, log, clientQPS, scopeClient)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func ClientKey(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(ClientIDHeader)); id != "" {
		return "id:" + id
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "addr:" + r.RemoteAddr
	}
	return "addr:" + host
}

func reject(w http.ResponseWriter, r *http.Request, log handlerLogger, limit int, scope string) {
	handlerPath := metrics.RouteTemplate(r)

	log.With(
		logger.NewField("method", r.Method),
		logger.NewField("path", r.URL.Path),
		logger.NewField("route", handlerPath),
		logger.NewField("remote_addr", r.RemoteAddr),
		logger.NewField("scope", scope),
	).Warn("rate limit exceeded")

	RateLimitExceededTotal.WithLabelValues(r.Method, handlerPath, scope).Inc()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
	w.Header().Set("Retry-After", "1")
	w.WriteHeader(http.StatusTooManyRequests)

	_, err := w.Write([]byte(`{"error":"Too Many Requests","message":"Rate limit exceeded. Try again later."}`))
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("path", r.URL.Path),
		).Error("failed to write rate limit response")
	}
}
