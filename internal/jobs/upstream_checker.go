package jobs

import (
	"context"
	"log"
	"sync"
	"time"

	"galaxycheck/internal/lookup"
	"galaxycheck/internal/metrics"
)

// UpstreamChecker periodically looks up a known token to tell whether the
// contract call endpoint is answering.
type UpstreamChecker struct {
	fetcher    lookup.Fetcher
	probeToken string
	interval   time.Duration
	timeout    time.Duration

	mu        sync.RWMutex
	checked   bool
	healthy   bool
	lastError string
	lastCheck time.Time
}

// NewUpstreamChecker creates a new upstream checker.
func NewUpstreamChecker(fetcher lookup.Fetcher, probeToken string, interval, timeout time.Duration) *UpstreamChecker {
	return &UpstreamChecker{
		fetcher:    fetcher,
		probeToken: probeToken,
		interval:   interval,
		timeout:    timeout,
	}
}

// Start begins the background check loop.
func (h *UpstreamChecker) Start(ctx context.Context) {
	log.Printf("Upstream checker started (interval: %v, token: %s)", h.interval, h.probeToken)

	// Run immediately on start
	h.Check(ctx)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Upstream checker stopped")
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}

// Check runs a single probe lookup and records the result.
func (h *UpstreamChecker) Check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	_, err := h.fetcher.FetchTokenInfo(ctx, h.probeToken)

	h.mu.Lock()
	defer h.mu.Unlock()

	changed := !h.checked || h.healthy != (err == nil)
	h.checked = true
	h.lastCheck = time.Now()
	h.healthy = err == nil
	h.lastError = ""
	if err != nil {
		h.lastError = err.Error()
	}
	metrics.SetUpstreamUp(h.healthy)

	// Only log transitions
	if changed {
		if err != nil {
			log.Printf("Upstream checker: call endpoint unhealthy: %v", err)
		} else {
			log.Println("Upstream checker: call endpoint healthy")
		}
	}
}

// LastCheck returns when the last probe finished.
func (h *UpstreamChecker) LastCheck() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.lastCheck
}

// Status reports whether the last probe succeeded. Before the first probe
// completes the endpoint is reported as not ready.
func (h *UpstreamChecker) Status() (healthy bool, lastError string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if !h.checked {
		return false, "not checked yet"
	}
	return h.healthy, h.lastError
}
