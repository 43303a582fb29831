package resilience

import "time"

// CircuitBreakerConfig carries the per-upstream breaker knobs as read from config.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

var defaultBreaker = CircuitBreakerConfig{
	Enabled:          true,
	FailureThreshold: 5,
	OpenTimeout:      15 * time.Second,
	HalfOpenMaxReq:   2,
}

// Normalized fills unset knobs from the defaults. Enabled is kept as given.
func (c CircuitBreakerConfig) Normalized() CircuitBreakerConfig {
	if c.FailureThreshold < 1 {
		c.FailureThreshold = defaultBreaker.FailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaultBreaker.OpenTimeout
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = defaultBreaker.HalfOpenMaxReq
	}
	return c
}

// Build returns nil for a disabled breaker; callers treat nil as "always allow".
func (c CircuitBreakerConfig) Build(upstream string) *CircuitBreaker {
	if !c.Enabled {
		return nil
	}
	return NewNamedCircuitBreaker(upstream, c.Normalized())
}
