// Package lookup sequences token lookups for one visitor and keeps their
// results in submission order.
package lookup

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"

	"galaxycheck/internal/galaxy"
	"galaxycheck/internal/metrics"
	"galaxycheck/internal/models"
	"galaxycheck/internal/validation"
	"galaxycheck/internal/vechain"
)

// TokenParam is the page query parameter naming a token to look up.
const TokenParam = "token"

// ErrEntryNotFound is returned when no entry has the requested id.
var ErrEntryNotFound = errors.New("lookup entry not found")

// Fetcher reads a token's on-chain values.
type Fetcher interface {
	FetchTokenInfo(ctx context.Context, tokenID string) (vechain.TokenInfo, error)
}

// Controller owns an append-only list of lookups. Each submitted lookup runs
// in its own goroutine and completions may arrive in any order.
type Controller struct {
	fetcher  Fetcher
	ctx      context.Context
	timeout  time.Duration
	recorder metrics.Recorder
	logger   *slog.Logger

	mu      sync.Mutex
	entries []models.LookupEntry
	wg      sync.WaitGroup
}

// Option configures Controller.
type Option func(*Controller)

// WithContext sets the parent context of every lookup. Cancelling it fails
// lookups that are still in flight.
func WithContext(ctx context.Context) Option {
	return func(c *Controller) {
		c.ctx = ctx
	}
}

// WithTimeout bounds each lookup. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		c.timeout = d
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(c *Controller) {
		c.recorder = r
	}
}

// WithLogger sets the logger used for failed lookups.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// NewController creates an empty controller that queries through fetcher.
func NewController(fetcher Fetcher, opts ...Option) *Controller {
	c := &Controller{
		fetcher:  fetcher,
		ctx:      context.Background(),
		recorder: metrics.Nop{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit appends a pending entry for tokenID and starts its lookup.
// Blank ids are ignored: nothing is appended and no call is made.
func (c *Controller) Submit(tokenID string) (models.LookupEntry, bool) {
	tokenID, ok := validation.NormalizeTokenID(tokenID)
	if !ok {
		return models.LookupEntry{}, false
	}

	entry := models.LookupEntry{
		ID:      uuid.New(),
		TokenID: tokenID,
		Loading: true,
	}

	c.mu.Lock()
	c.entries = append(c.entries, entry)
	c.mu.Unlock()

	c.wg.Add(1)
	go c.run(tokenID)

	return entry, true
}

// RestoreFromLocation submits the token named by the token parameter of a
// page query string, if there is one.
func (c *Controller) RestoreFromLocation(rawQuery string) (models.LookupEntry, bool) {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return models.LookupEntry{}, false
	}
	return c.Submit(values.Get(TokenParam))
}

func (c *Controller) run(tokenID string) {
	defer c.wg.Done()

	ctx := c.ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	c.recorder.LookupStarted()
	info, err := c.fetcher.FetchTokenInfo(ctx, tokenID)
	if err != nil {
		c.recorder.LookupFinished(metrics.OutcomeFailed, time.Since(start))
		c.logger.Warn("token lookup failed", "token_id", tokenID, "error", err)
		c.OnQueryFailed(tokenID)
		return
	}

	c.recorder.LookupFinished(metrics.OutcomeResolved, time.Since(start))
	c.OnQueryResolved(tokenID, info)
}

// OnQueryResolved fills in the pending entries for tokenID and returns how
// many were updated.
func (c *Controller) OnQueryResolved(tokenID string, info vechain.TokenInfo) int {
	return c.update(tokenID, func(e *models.LookupEntry) {
		e.NodeID = info.NodeID
		e.Level = info.Level
		e.Owner = info.Owner
	})
}

// OnQueryFailed marks the pending entries for tokenID with the error marker
// and returns how many were updated.
func (c *Controller) OnQueryFailed(tokenID string) int {
	return c.update(tokenID, func(e *models.LookupEntry) {
		e.NodeID = galaxy.ErrorMarker
		e.Level = galaxy.ErrorMarker
		e.Owner = galaxy.ErrorMarker
	})
}

// update applies fn to every pending entry with tokenID. Entries that have
// already completed are left alone, so each entry is resolved exactly once.
func (c *Controller) update(tokenID string, fn func(*models.LookupEntry)) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for i := range c.entries {
		if c.entries[i].TokenID != tokenID || !c.entries[i].Loading {
			continue
		}
		fn(&c.entries[i])
		c.entries[i].Loading = false
		n++
	}
	return n
}

// Entries returns a copy of the list in submission order.
func (c *Controller) Entries() []models.LookupEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.LookupEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Entry returns the entry with the given id.
func (c *Controller) Entry(id uuid.UUID) (models.LookupEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return models.LookupEntry{}, ErrEntryNotFound
}

// Wait blocks until every submitted lookup has completed.
func (c *Controller) Wait() {
	c.wg.Wait()
}
