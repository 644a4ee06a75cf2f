package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// WriteRateLimit 写接口限流中间件
// 每 IP 在 window 内最多 maxRequests 次 POST/PUT/PATCH/DELETE，超过返回 429；读请求不受限。
// maxRequests <= 0 时不限流
func WriteRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	if maxRequests <= 0 || window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	var (
		mu        sync.Mutex
		hits      = make(map[string][]time.Time)
		lastSweep = time.Now()
	)

	prune := func(ts []time.Time, cutoff time.Time) []time.Time {
		kept := ts[:0]
		for _, t := range ts {
			if t.After(cutoff) {
				kept = append(kept, t)
			}
		}
		return kept
	}

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		ip := c.ClientIP()
		now := time.Now()
		cutoff := now.Add(-window)

		mu.Lock()
		// 清理过期 IP，避免 map 无限增长
		if now.Sub(lastSweep) > window {
			for k, ts := range hits {
				if ts = prune(ts, cutoff); len(ts) == 0 {
					delete(hits, k)
				} else {
					hits[k] = ts
				}
			}
			lastSweep = now
		}

		ts := prune(hits[ip], cutoff)
		if len(ts) >= maxRequests {
			hits[ip] = ts
			retry := ts[0].Add(window).Sub(now)
			mu.Unlock()
			c.Header("Retry-After", formatSeconds(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests, please try again later",
			})
			return
		}
		hits[ip] = append(ts, now)
		mu.Unlock()
		c.Next()
	}
}

func formatSeconds(d time.Duration) string {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
