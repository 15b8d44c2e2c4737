package memcache_fx

import (
	"time"

	"go.uber.org/fx"
	"routeplanner/internal/config"
	mem "routeplanner/pkg/memcache"
)

const limiterIdleTTL = 10 * time.Minute

var Module = fx.Provide(provideLimiterStore)

func provideLimiterStore(cfg *config.Config) mem.LimiterStore {
	return mem.NewLimiterStore(cfg.AIRatePerMinute, cfg.AIRateBurst, limiterIdleTTL)
}
