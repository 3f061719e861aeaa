package scan

import (
	"context"

	"go.uber.org/ratelimit"
)

type rateLimitScanner struct {
	scanner Scanner
	rl      ratelimit.Limiter
}

// NewRateLimitScanner paces candidate tests with the given limiter.
func NewRateLimitScanner(scanner Scanner, rl ratelimit.Limiter) Scanner {
	return &rateLimitScanner{scanner: scanner, rl: rl}
}

func (s *rateLimitScanner) Scan(ctx context.Context, r *Request) (Result, error) {
	s.rl.Take()
	return s.scanner.Scan(ctx, r)
}
