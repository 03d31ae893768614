package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"taskpilot/config"
	"taskpilot/pkg/log"
)

// Per-client limiters live in a bounded LRU so the map cannot grow with the
// number of distinct clients. Idle entries age out after limiterTTL.
const (
	maxTrackedClients = 1000
	limiterTTL        = 5 * time.Minute
)

type Middleware struct {
	l        log.Logger
	cfg      config.RateLimitConfig
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	perMin := cfg.PerMin
	if perMin <= 0 {
		perMin = 120
	}
	burst := perMin / 10
	if burst < 1 {
		burst = 1
	}

	return Middleware{
		l:        l,
		cfg:      cfg,
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, limiterTTL),
		rate:     rate.Limit(float64(perMin) / 60.0),
		burst:    burst,
	}
}
