package graceful_shutdown

import (
	"context"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"
)

var shuttingDownBody = []byte(`{"error":"service is shutting down"}` + "\n")

// Middleware отклоняет новые запросы, как только выставлен флаг остановки
// или отменен ongoingCtx. Запросы, начатые раньше, дорабатывают.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context, retryAfter time.Duration) func(http.Handler) http.Handler {
	retry := strconv.Itoa(max(1, int(retryAfter.Seconds())))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() || ongoingCtx.Err() != nil {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Connection", "close")
				w.Header().Set("Retry-After", retry)
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write(shuttingDownBody)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
