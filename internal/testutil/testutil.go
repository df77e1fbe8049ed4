// Package testutil provides test utilities and helpers.
package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"galaxycheck/internal/vechain"
)

// StubFetcher answers token lookups from an in-memory table.
// Tokens missing from Results fail with vechain.ErrLookupFailed.
type StubFetcher struct {
	Results map[string]vechain.TokenInfo

	// Block, when set, holds every lookup until it is closed or the
	// lookup's context ends.
	Block chan struct{}

	mu    sync.Mutex
	calls []string
}

// FetchTokenInfo implements lookup.Fetcher.
func (f *StubFetcher) FetchTokenInfo(ctx context.Context, tokenID string) (vechain.TokenInfo, error) {
	f.mu.Lock()
	f.calls = append(f.calls, tokenID)
	f.mu.Unlock()

	if f.Block != nil {
		select {
		case <-f.Block:
		case <-ctx.Done():
			return vechain.TokenInfo{}, vechain.ErrLookupFailed
		}
	}

	info, ok := f.Results[tokenID]
	if !ok {
		return vechain.TokenInfo{}, vechain.ErrLookupFailed
	}
	return info, nil
}

// Calls returns the token ids looked up so far.
func (f *StubFetcher) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallServer starts a fake call endpoint. values maps a token id to the
// raw JSON array the endpoint returns for it; unknown tokens get a 500.
// The server is closed when the test ends.
func CallServer(t *testing.T, values map[string]string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Clauses []vechain.Clause `json:"clauses"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Clauses) == 0 {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		body, ok := values[tokenFromSignature(req.Clauses[0].Signature)]
		if !ok {
			http.Error(w, "revert", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

// tokenFromSignature extracts 123 from "fn(uint256 123) returns (...)".
func tokenFromSignature(sig string) string {
	_, rest, ok := strings.Cut(sig, "uint256 ")
	if !ok {
		return ""
	}
	token, _, _ := strings.Cut(rest, ")")
	return token
}
