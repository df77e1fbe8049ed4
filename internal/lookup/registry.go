package lookup

import (
	"context"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"galaxycheck/internal/metrics"
)

// Registry holds one Controller per browser session. A session's list is
// dropped once it has not been touched for the configured TTL.
type Registry struct {
	cache         *ttlcache.Cache[string, *Controller]
	newController func() *Controller

	mu sync.Mutex
}

// NewRegistry creates a registry whose controllers come from newController.
func NewRegistry(ttl time.Duration, newController func() *Controller) *Registry {
	r := &Registry{
		cache:         ttlcache.New[string, *Controller](ttlcache.WithTTL[string, *Controller](ttl)),
		newController: newController,
	}
	r.cache.OnEviction(func(_ context.Context, _ ttlcache.EvictionReason, _ *ttlcache.Item[string, *Controller]) {
		// Eviction callbacks may run while the cache holds its lock.
		go func() { metrics.SetActiveSessions(r.cache.Len()) }()
	})
	return r
}

// Start runs the expiry loop until Stop is called.
func (r *Registry) Start() {
	go r.cache.Start()
}

// Stop ends the expiry loop.
func (r *Registry) Stop() {
	r.cache.Stop()
}

// Get returns the controller for sessionID, creating it on first use.
// Each access extends the session's lifetime.
func (r *Registry) Get(sessionID string) *Controller {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item := r.cache.Get(sessionID); item != nil {
		return item.Value()
	}

	c := r.newController()
	r.cache.Set(sessionID, c, ttlcache.DefaultTTL)
	metrics.SetActiveSessions(r.cache.Len())
	return c
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	return r.cache.Len()
}
