package ratelimit

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimiter 出站请求QPS限制器,上游API与文件中转共用
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter 创建速率限制器
// qps: 每秒允许的请求数，0或负数表示不限制
func NewRateLimiter(qps int) *RateLimiter {
	if qps <= 0 {
		return &RateLimiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}

	// 桶大小为QPS，允许短时突发
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(qps), qps)}
}

// Wait 阻塞直到获得令牌；ctx取消时返回错误
func (r *RateLimiter) Wait(ctx context.Context) error {
	if r == nil {
		return nil
	}
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}
	return nil
}

// Allow 非阻塞检查
func (r *RateLimiter) Allow() bool {
	if r == nil {
		return true
	}
	return r.limiter.Allow()
}

// QPS 当前限制，0表示不限制
func (r *RateLimiter) QPS() int {
	if r == nil || r.limiter.Limit() == rate.Inf {
		return 0
	}
	return int(r.limiter.Limit())
}
