package quota

import (
	"sync"
	"time"

	"poster-studio/config"
)

// GenerationQuotaLimiter enforces per-minute spacing and a daily cap on
// copy-generation calls. It is in-memory and assumes a single service
// instance; counters reset on restart.
type GenerationQuotaLimiter struct {
	mu sync.Mutex

	dailyLimit int
	usedToday  int
	dayKey     string

	interval time.Duration
	lastCall time.Time
}

// NewFromConfig builds the limiter from the generation_quota section.
// Values of 0 or below leave that direction unlimited.
func NewFromConfig(q config.QuotaConfig) *GenerationQuotaLimiter {
	requestsPerDay := q.RequestsPerDay
	if requestsPerDay < 0 {
		requestsPerDay = 0
	}

	var interval time.Duration
	if q.RequestsPerMinute > 0 {
		interval = time.Minute / time.Duration(q.RequestsPerMinute)
	}

	return &GenerationQuotaLimiter{
		dailyLimit: requestsPerDay,
		interval:   interval,
	}
}

// Reserve applies both limits before a generation call, without
// blocking: the caller is an interactive request, so a busy slot is
// reported instead of waited for. A false result with retryAfter > 0
// means the per-minute slot is taken; with retryAfter == 0 the daily
// budget is spent.
func (l *GenerationQuotaLimiter) Reserve() (ok bool, retryAfter time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now().UTC()
	todayKey := now.Format("2006-01-02")
	if l.dayKey != todayKey {
		l.dayKey = todayKey
		l.usedToday = 0
	}

	if l.dailyLimit > 0 && l.usedToday >= l.dailyLimit {
		return false, 0
	}

	if l.interval > 0 && !l.lastCall.IsZero() {
		if wait := time.Until(l.lastCall.Add(l.interval)); wait > 0 {
			return false, wait
		}
	}

	l.usedToday++
	l.lastCall = now
	return true, 0
}
