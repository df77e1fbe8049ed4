package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"galaxycheck/internal/galaxy"
	"galaxycheck/internal/lookup"
	"galaxycheck/internal/metrics"
	"galaxycheck/internal/models"
	"galaxycheck/internal/validation"
)

// TokenHandler handles synchronous token lookups via JSON API.
type TokenHandler struct {
	fetcher  lookup.Fetcher
	timeout  time.Duration
	recorder metrics.Recorder
}

// NewTokenHandler creates a new API token handler.
func NewTokenHandler(fetcher lookup.Fetcher, timeout time.Duration, recorder metrics.Recorder) *TokenHandler {
	return &TokenHandler{fetcher: fetcher, timeout: timeout, recorder: recorder}
}

// Get looks up a token and returns its node, level and owner.
func (h *TokenHandler) Get(c fiber.Ctx) error {
	tokenID, ok := validation.NormalizePathTokenID(c.Params("token"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid token id")
	}

	ctx := c.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	start := time.Now()
	h.recorder.LookupStarted()
	info, err := h.fetcher.FetchTokenInfo(ctx, tokenID)
	if err != nil {
		h.recorder.LookupFinished(metrics.OutcomeFailed, time.Since(start))
		slog.Warn("token lookup failed", "token_id", tokenID, "error", err)
		return jsonError(c, fiber.StatusBadGateway, "lookup failed")
	}
	h.recorder.LookupFinished(metrics.OutcomeResolved, time.Since(start))

	level := galaxy.Level(info.Level)
	return jsonSuccess(c, models.TokenInfoResponse{
		TokenID:      tokenID,
		NodeID:       info.NodeID,
		NodeAttached: galaxy.NodeAttached(info.NodeID),
		Level:        info.Level,
		LevelName:    level.Name,
		B3TR:         level.B3TR,
		Owner:        info.Owner,
	})
}
