package ratelimit

import "time"

type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

type RateLimiter interface {
	Allow(key string, config RateLimitConfig) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}

// LoginConfig throttles credential attempts per email address.
var LoginConfig = RateLimitConfig{
	RequestsPerMinute: 10,
	RequestsPerHour:   30,
}

// NoopRateLimiter allows everything. Used when redis is disabled.
type NoopRateLimiter struct{}

func NewNoopRateLimiter() RateLimiter {
	return &NoopRateLimiter{}
}

func (l *NoopRateLimiter) Allow(key string, config RateLimitConfig) (bool, error) {
	return true, nil
}

func (l *NoopRateLimiter) GetRemaining(key string, window time.Duration) (int64, error) {
	return 0, nil
}

func (l *NoopRateLimiter) Reset(key string) error {
	return nil
}
