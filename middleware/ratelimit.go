package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"homeledger/config"

	"github.com/gin-gonic/gin"
)

// loginLimiter 按客户端 IP 的滑动窗口计数
type loginLimiter struct {
	max    int
	window time.Duration

	mu        sync.Mutex
	attempts  map[string][]time.Time
	lastSweep time.Time
}

func newLoginLimiter(limit int, window time.Duration) *loginLimiter {
	return &loginLimiter{max: limit, window: window, attempts: make(map[string][]time.Time)}
}

// allow 记录一次尝试；超限时返回 false 以及距离最早一次尝试过期的时间
func (l *loginLimiter) allow(key string, now time.Time) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := now.Add(-l.window)
	if now.Sub(l.lastSweep) >= l.window {
		for k, ts := range l.attempts {
			if kept := within(ts, cutoff); len(kept) == 0 {
				delete(l.attempts, k)
			} else {
				l.attempts[k] = kept
			}
		}
		l.lastSweep = now
	}

	ts := within(l.attempts[key], cutoff)
	if len(ts) >= l.max {
		l.attempts[key] = ts
		return false, ts[0].Sub(cutoff)
	}
	l.attempts[key] = append(ts, now)
	return true, 0
}

// within 去掉 cutoff 之前的记录，时间戳按先后顺序追加
func within(ts []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(ts) && !ts[i].After(cutoff) {
		i++
	}
	return ts[i:]
}

// LoginRateLimit 登录限流：每个 IP 在 LoginWindow 内最多 LoginMaxAttempts 次，超过返回 429
func LoginRateLimit(cfg config.AuthConfig) gin.HandlerFunc {
	limiter := newLoginLimiter(cfg.LoginMaxAttempts, cfg.LoginWindow)
	return func(c *gin.Context) {
		ok, wait := limiter.allow(c.ClientIP(), time.Now())
		if !ok {
			c.Header("Retry-After", strconv.Itoa(int(wait.Seconds())+1))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "登录尝试过于频繁，请稍后再试",
			})
			return
		}
		c.Next()
	}
}
