package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"galaxycheck/internal/lookup"
	"galaxycheck/internal/models"
	"galaxycheck/internal/vechain"
)

func lookupAction(cCtx *cli.Context) error {
	if cCtx.NArg() == 0 {
		return cli.Exit("at least one token id is required", 2)
	}

	timeout := cCtx.Duration(TimeoutFlag)
	client := newLookupClient(cCtx.String(CallURLFlag), cCtx.String(ContractFlag), timeout)
	failed, err := runLookups(cCtx.Context, cCtx.App.Writer, client, timeout, cCtx.Args().Slice(), cCtx.Bool(JSONFlag))
	if err != nil {
		return err
	}
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d lookup(s) failed", failed), 1)
	}
	return nil
}

// newLookupClient builds the call client. The HTTP timeout follows the
// lookup timeout so a longer --timeout is not cut short by the default.
func newLookupClient(callURL, contract string, timeout time.Duration) *vechain.Client {
	var opts []vechain.ClientOption
	if timeout > 0 {
		opts = append(opts, vechain.WithTimeout(timeout))
	}
	return vechain.NewClient(callURL, contract, opts...)
}

func shareAction(cCtx *cli.Context) error {
	if cCtx.NArg() != 1 {
		return cli.Exit("exactly one token id is required", 2)
	}

	link, err := lookup.BuildShareLink(cCtx.String(PageFlag), cCtx.Args().First())
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	_, err = fmt.Fprintln(cCtx.App.Writer, link)
	return err
}

// runLookups submits every token to one controller, waits for all of them
// and prints the list. It returns how many lookups failed.
func runLookups(ctx context.Context, w io.Writer, fetcher lookup.Fetcher, timeout time.Duration, tokens []string, asJSON bool) (int, error) {
	ctrl := lookup.NewController(fetcher, lookup.WithContext(ctx), lookup.WithTimeout(timeout))
	for _, token := range tokens {
		ctrl.Submit(token)
	}
	ctrl.Wait()

	entries := ctrl.Entries()
	failed := 0
	for _, e := range entries {
		if e.Failed() {
			failed++
		}
	}

	if asJSON {
		return failed, writeJSON(w, entries)
	}
	writeTable(w, entries)
	return failed, nil
}

func writeJSON(w io.Writer, entries []models.LookupEntry) error {
	out := make([]models.TokenInfoResponse, 0, len(entries))
	for _, e := range entries {
		level := e.LevelInfo()
		out = append(out, models.TokenInfoResponse{
			TokenID:      e.TokenID,
			NodeID:       e.NodeID,
			NodeAttached: e.NodeAttached(),
			Level:        e.Level,
			LevelName:    level.Name,
			B3TR:         level.B3TR,
			Owner:        e.Owner,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeTable(w io.Writer, entries []models.LookupEntry) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Token", "Node", "Level", "B3TR", "Owner"})
	for _, e := range entries {
		node := "none"
		if e.NodeAttached() {
			node = "#" + e.NodeID
		}
		if e.Failed() {
			node = e.NodeID
		}
		level := e.LevelInfo()
		table.Append([]string{
			e.TokenID,
			node,
			fmt.Sprintf("%s (%s)", e.Level, level.Name),
			level.B3TR,
			e.OwnerDisplay(),
		})
	}
	table.Render()
}
