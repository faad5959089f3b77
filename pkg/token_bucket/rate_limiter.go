package token_bucket

import (
	"sync"
	"time"
)

type Limiter interface {
	Allow() bool
}

// TokenBucket накапливает дробные токены, чтобы низкий refillRate
// (меньше одного токена между запросами) не терялся при округлении.
type TokenBucket struct {
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        func() time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return newTokenBucket(capacity, refillRate, time.Now)
}

func newTokenBucket(capacity int, refillRate float64, now func() time.Time) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: now(),
		now:        now,
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
	t.lastRefill = now
}

// Registry раздаёт отдельный bucket на каждый ключ (например, courier_id),
// чтобы один клиент, штурмующий accept, не выедал общий лимит.
type Registry struct {
	capacity   int
	refillRate float64
	maxKeys    int

	mu      sync.Mutex
	buckets map[string]*TokenBucket
}

func NewRegistry(capacity int, refillRate float64, maxKeys int) *Registry {
	return &Registry{
		capacity:   capacity,
		refillRate: refillRate,
		maxKeys:    maxKeys,
		buckets:    make(map[string]*TokenBucket),
	}
}

func (r *Registry) Allow(key string) bool {
	return r.bucket(key).Allow()
}

func (r *Registry) bucket(key string) *TokenBucket {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.buckets[key]
	if ok {
		return b
	}

	// грубая защита от разрастания карты: при переполнении начинаем заново
	if r.maxKeys > 0 && len(r.buckets) >= r.maxKeys {
		r.buckets = make(map[string]*TokenBucket, r.maxKeys)
	}

	b = NewTokenBucket(r.capacity, r.refillRate)
	r.buckets[key] = b
	return b
}
