package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"caniq/cmd/caniq/picker"
	"caniq/internal/caniuse"
	"caniq/internal/store"
)

// queryCmd resolves a search term to feature IDs, fetches each feature,
// and renders the normalized support tables.
var queryCmd = &cobra.Command{
	Use:   "query [search term]",
	Short: "Search caniuse.com and show support tables",
	Long: `Resolves a free-text search term to feature IDs, fetches the support
record for each, and renders one compatibility table per feature.

Example:
  caniq query css grid
  caniq query websocket --pick`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

// featureCmd skips the search step and fetches feature IDs directly.
var featureCmd = &cobra.Command{
	Use:   "feature [id...]",
	Short: "Fetch specific features by ID",
	Long: `Fetches support records for known feature IDs, bypassing search.

Example:
  caniq feature css-grid flexbox`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFeatures,
}

func runQuery(cmd *cobra.Command, args []string) error {
	term := strings.Join(args, " ")
	ctx, cancel := commandContext(cmd)
	defer cancel()

	client := newClient()
	ids, err := client.Search(ctx, term)
	if err != nil {
		if errors.Is(err, caniuse.ErrNoFeatures) {
			fmt.Printf("No features match %q.\n", term)
			return nil
		}
		return err
	}

	recordHistory(term, ids)

	if pick {
		ids, err = picker.Run(term, ids)
		if err != nil {
			if errors.Is(err, picker.ErrCancelled) {
				return nil
			}
			return err
		}
	}

	return fetchAndRender(ctx, client, term, ids)
}

func runFeatures(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	return fetchAndRender(ctx, newClient(), "", args)
}

// fetchAndRender is the shared back half of query and feature: parallel
// fetch, then one rendered section per feature.
func fetchAndRender(ctx context.Context, client *caniuse.Client, term string, ids []string) error {
	features, err := client.FetchAll(ctx, ids)
	if err != nil {
		return err
	}

	r := newRenderer()
	if jsonOut {
		return r.RenderJSON(os.Stdout, ids, features)
	}
	if term != "" {
		r.RenderSearchHeader(os.Stdout, term, ids)
	}
	for i, f := range features {
		r.RenderFeature(os.Stdout, i+1, ids[i], f)
	}
	return nil
}

func newClient() *caniuse.Client {
	opts := []caniuse.Option{
		caniuse.WithBaseURL(cfg.API.BaseURL),
		caniuse.WithUserAgent(cfg.API.UserAgent),
		caniuse.WithParallel(cfg.Fetch.Parallel),
		caniuse.WithTimeout(cfg.Timeout()),
	}
	if timeout > 0 {
		opts = append(opts, caniuse.WithTimeout(timeout))
	}
	return caniuse.New(logger, opts...)
}

// recordHistory stores the search in the local history DB. History is
// best-effort; failures are logged and never interrupt the query.
func recordHistory(term string, ids []string) {
	if !cfg.HistoryEnabled() || cfg.History.Path == "" {
		return
	}
	hs, err := store.NewHistoryStore(cfg.History.Path)
	if err != nil {
		logger.Warn("history store unavailable", zap.Error(err))
		return
	}
	defer hs.Close()

	if err := hs.Record(term, ids); err != nil {
		logger.Warn("failed to record search", zap.Error(err))
		return
	}
	if err := hs.Prune(cfg.History.Limit); err != nil {
		logger.Warn("failed to prune history", zap.Error(err))
	}
}

// commandContext derives a signal-aware context so an in-flight fetch can
// be interrupted with ctrl-c.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	base := cmd.Context()
	if base == nil {
		base = context.Background()
	}
	return signal.NotifyContext(base, os.Interrupt, syscall.SIGTERM)
}
