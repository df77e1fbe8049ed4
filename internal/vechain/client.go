// Package vechain reads GalaxyMember token state through a VeChain call
// endpoint that executes batched read-only contract clauses.
package vechain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Default configuration values.
const (
	DefaultTimeout = 15 * time.Second
	maxBodyBytes   = 1 << 20
)

// ErrLookupFailed is the single failure outcome of a token lookup. Network
// errors, bad status codes, undecodable bodies and short result arrays all
// wrap it; the cause stays in the chain for logging.
var ErrLookupFailed = errors.New("token lookup failed")

// TokenInfo holds the decoded values of one GalaxyMember token.
type TokenInfo struct {
	NodeID string `json:"nodeId"`
	Level  string `json:"level"`
	Owner  string `json:"owner"`
}

// Clause is one read-only contract invocation in a batched call.
type Clause struct {
	To        string `json:"to"`
	Signature string `json:"signature"`
}

type callRequest struct {
	Clauses []Clause `json:"clauses"`
}

type callResult struct {
	Value json.RawMessage `json:"value"`
}

// Client implements token lookups against a call endpoint.
type Client struct {
	endpoint string
	contract string
	client   *http.Client
}

// ClientOption configures Client.
type ClientOption func(*Client)

// WithTimeout sets HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithHTTPClient sets custom http.Client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a client for the GalaxyMember contract at contract,
// calling through endpoint.
func NewClient(endpoint, contract string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint: endpoint,
		contract: contract,
		client:   &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Timeout returns the HTTP client timeout.
func (c *Client) Timeout() time.Duration {
	return c.client.Timeout
}

// TokenClauses builds the three clauses read for tokenID. Their order is
// the order of the values in the response.
func TokenClauses(contract, tokenID string) []Clause {
	return []Clause{
		{To: contract, Signature: fmt.Sprintf("getNodeIdAttached(uint256 %s) returns (uint256 value)", tokenID)},
		{To: contract, Signature: fmt.Sprintf("levelOf(uint256 %s) returns (uint256 value)", tokenID)},
		{To: contract, Signature: fmt.Sprintf("ownerOf(uint256 %s) returns (address value)", tokenID)},
	}
}

// FetchTokenInfo reads node attachment, level and owner of tokenID in a
// single call. Any failure is returned as an error wrapping ErrLookupFailed.
// There are no retries.
func (c *Client) FetchTokenInfo(ctx context.Context, tokenID string) (TokenInfo, error) {
	body, err := json.Marshal(callRequest{Clauses: TokenClauses(c.contract, tokenID)})
	if err != nil {
		return TokenInfo{}, fail("marshal request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return TokenInfo{}, fail("create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return TokenInfo{}, fail("http request", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return TokenInfo{}, fail("read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return TokenInfo{}, fail("call endpoint", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	return decodeTokenInfo(respBody)
}

func decodeTokenInfo(body []byte) (TokenInfo, error) {
	var results []callResult
	if err := json.Unmarshal(body, &results); err != nil {
		return TokenInfo{}, fail("unmarshal response", err)
	}
	if len(results) < 3 {
		return TokenInfo{}, fail("decode response", fmt.Errorf("expected 3 results, got %d", len(results)))
	}

	values := make([]string, 3)
	for i := range values {
		v, err := valueString(results[i].Value)
		if err != nil {
			return TokenInfo{}, fail("decode response", fmt.Errorf("result %d: %w", i, err))
		}
		values[i] = v
	}

	return TokenInfo{NodeID: values[0], Level: values[1], Owner: values[2]}, nil
}

// valueString accepts a JSON string or number and returns its text.
func valueString(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", errors.New("missing value")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}
	return "", fmt.Errorf("unsupported value %s", raw)
}

func fail(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrLookupFailed, op, err)
}
