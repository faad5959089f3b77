package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const cpuSampleWindow = time.Second

var (
	SystemCPUUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_cpu_usage_percent",
		Help: "Host CPU usage percentage",
	})

	SystemMemoryUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_memory_usage_bytes",
		Help: "Host memory in use, bytes",
	})

	ApplicationMemoryUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "application_memory_usage_bytes",
		Help: "Go heap allocation, bytes",
	})

	Goroutines = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "application_goroutines",
		Help: "Live goroutines, includes fire-and-forget push notifications",
	})

	DBPoolConns = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "db_pool_connections",
		Help: "pgx pool connections by state",
	}, []string{"state"})

	DBPoolEmptyAcquires = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_pool_empty_acquire_total",
		Help: "Acquires that had to wait for a free connection, cumulative",
	})
)

// PoolStats - срез pgxpool.Stat, который можно собрать и в тестах.
type PoolStats struct {
	Acquired      int32
	Idle          int32
	Total         int32
	Max           int32
	EmptyAcquires int64
}

type PoolSource func() PoolStats

func PgxPoolSource(pool *pgxpool.Pool) PoolSource {
	return func() PoolStats {
		s := pool.Stat()
		return PoolStats{
			Acquired:      s.AcquiredConns(),
			Idle:          s.IdleConns(),
			Total:         s.TotalConns(),
			Max:           s.MaxConns(),
			EmptyAcquires: s.EmptyAcquireCount(),
		}
	}
}

// StartSystemMetricsCollector собирает метрики раз в interval, пока жив ctx.
// pool может быть nil, тогда метрики пула не пишутся.
func StartSystemMetricsCollector(ctx context.Context, interval time.Duration, pool PoolSource) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collectSystemMetrics(ctx)
				if pool != nil {
					collectPoolMetrics(pool())
				}
			}
		}
	}()
}

func collectSystemMetrics(ctx context.Context) {
	cpuPercent, err := cpu.PercentWithContext(ctx, cpuSampleWindow, false)
	if err == nil && len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	if vmStat, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ApplicationMemoryUsage.Set(float64(m.Alloc))
	Goroutines.Set(float64(runtime.NumGoroutine()))
}

func collectPoolMetrics(s PoolStats) {
	DBPoolConns.WithLabelValues("acquired").Set(float64(s.Acquired))
	DBPoolConns.WithLabelValues("idle").Set(float64(s.Idle))
	DBPoolConns.WithLabelValues("total").Set(float64(s.Total))
	DBPoolConns.WithLabelValues("max").Set(float64(s.Max))
	DBPoolEmptyAcquires.Set(float64(s.EmptyAcquires))
}
