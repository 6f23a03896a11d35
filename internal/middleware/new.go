package middleware

import (
	"sync"

	"golang.org/x/time/rate"

	"foodhub-support/config"
	"foodhub-support/pkg/log"
)

type Middleware struct {
	l   log.Logger
	cfg config.RateLimitConfig

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func New(l log.Logger, cfg config.RateLimitConfig) *Middleware {
	return &Middleware{
		l:        l,
		cfg:      cfg,
		limiters: map[string]*rate.Limiter{},
	}
}
