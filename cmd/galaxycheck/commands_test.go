package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"galaxycheck/internal/models"
	"galaxycheck/internal/testutil"
	"galaxycheck/internal/vechain"
)

func TestRunLookups_JSON(t *testing.T) {
	fetcher := &testutil.StubFetcher{Results: map[string]vechain.TokenInfo{
		"55": {NodeID: "0", Level: "2", Owner: "0xabc"},
	}}

	var buf bytes.Buffer
	failed, err := runLookups(context.Background(), &buf, fetcher, time.Second, []string{"55", " ", "404"}, true)
	require.NoError(t, err)
	assert.Equal(t, 1, failed)

	var got []models.TokenInfoResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)

	assert.Equal(t, "55", got[0].TokenID)
	assert.Equal(t, "Moon", got[0].LevelName)
	assert.False(t, got[0].NodeAttached)

	assert.Equal(t, "404", got[1].TokenID)
	assert.Equal(t, "Error", got[1].NodeID)
	assert.Equal(t, "Unknown", got[1].LevelName)
}

func TestRunLookups_Table(t *testing.T) {
	fetcher := &testutil.StubFetcher{Results: map[string]vechain.TokenInfo{
		"123": {NodeID: "7", Level: "10", Owner: "0xabc"},
	}}

	var buf bytes.Buffer
	failed, err := runLookups(context.Background(), &buf, fetcher, time.Second, []string{"123"}, false)
	require.NoError(t, err)
	assert.Zero(t, failed)

	out := buf.String()
	assert.Contains(t, out, "TOKEN")
	assert.Contains(t, out, "#7")
	assert.Contains(t, out, "10 (Galaxy)")
	assert.Contains(t, out, "25,000,000")
}

func TestNewLookupClient_Timeout(t *testing.T) {
	assert.Equal(t, 40*time.Second, newLookupClient("http://localhost", "0xabc", 40*time.Second).Timeout())
	assert.Equal(t, vechain.DefaultTimeout, newLookupClient("http://localhost", "0xabc", 0).Timeout())
}

func TestNewLookupClient_SlowEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		_, _ = w.Write([]byte(`[{"value":"0"},{"value":"2"},{"value":"0xabc"}]`))
	}))
	t.Cleanup(server.Close)

	client := newLookupClient(server.URL, "0xabc", time.Second)

	var buf bytes.Buffer
	failed, err := runLookups(context.Background(), &buf, client, time.Second, []string{"55"}, true)
	require.NoError(t, err)
	assert.Zero(t, failed)
	assert.Contains(t, buf.String(), `"level_name": "Moon"`)
}
