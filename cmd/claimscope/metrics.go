// cmd/claimscope/metrics.go
package main

import (
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Metrics holds system and application metrics
type Metrics struct {
	Timestamp        time.Time `json:"timestamp"`
	MemoryUsedPct    float64   `json:"memory_used_percent"`
	CPUUsagePercent  float64   `json:"cpu_usage_percent"`
	GoroutineCount   int       `json:"goroutine_count"`
	UptimeHours      float64   `json:"uptime_hours"`
	ChecksTotal      int64     `json:"checks_total"`
	CacheHits        int64     `json:"cache_hits"`
	DegradedAnalyses int64     `json:"degraded_analyses"`
	RejectedClaims   int64     `json:"rejected_claims"`
	CacheSize        int       `json:"cache_size"`
	CacheHitRate     float64   `json:"cache_hit_rate"`
}

var (
	countersMutex    sync.Mutex
	checksTotal      int64
	cacheHits        int64
	degradedAnalyses int64
	rejectedClaims   int64
	startTime        = time.Now()
)

// countCheck records one completed pipeline run
func countCheck(cached bool, degraded bool) {
	countersMutex.Lock()
	defer countersMutex.Unlock()

	checksTotal++
	if cached {
		cacheHits++
	}
	if degraded {
		degradedAnalyses++
	}
}

// countRejection records a claim turned away by validation
func countRejection() {
	countersMutex.Lock()
	defer countersMutex.Unlock()
	rejectedClaims++
}

// collectMetrics gathers system and application metrics for the status
// endpoint
func collectMetrics(cache *ResultCache) *Metrics {
	countersMutex.Lock()
	m := &Metrics{
		Timestamp:        time.Now(),
		GoroutineCount:   runtime.NumGoroutine(),
		UptimeHours:      time.Since(startTime).Hours(),
		ChecksTotal:      checksTotal,
		CacheHits:        cacheHits,
		DegradedAnalyses: degradedAnalyses,
		RejectedClaims:   rejectedClaims,
	}
	countersMutex.Unlock()

	if vm, err := mem.VirtualMemory(); err == nil {
		m.MemoryUsedPct = vm.UsedPercent
	}
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		m.CPUUsagePercent = percents[0]
	}

	if cache != nil {
		m.CacheSize = cache.Len()
		m.CacheHitRate = cache.HitRate()
	}

	return m
}
