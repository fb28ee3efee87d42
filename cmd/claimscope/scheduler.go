// cmd/claimscope/scheduler.go
package main

import (
	"github.com/robfig/cron/v3"
)

// StartScheduler wires background maintenance jobs: periodic cache pruning
// and a daily stats line
func StartScheduler(cache *ResultCache) *cron.Cron {
	c := cron.New()

	c.AddFunc("*/15 * * * *", func() {
		defer RecoverFromPanic("scheduler-prune")
		if removed := cache.Prune(); removed > 0 {
			Logger().Debug("cache: pruned %d expired entries", removed)
		}
	})

	c.AddFunc("0 0 * * *", func() {
		defer RecoverFromPanic("scheduler-stats")
		m := collectMetrics(cache)
		Logger().Info("daily stats: %d checks, %d cache hits, %d degraded, %d rejected",
			m.ChecksTotal, m.CacheHits, m.DegradedAnalyses, m.RejectedClaims)
	})

	c.Start()
	return c
}
