// Package caniuse is the HTTP collaborator for the normalization engine:
// it resolves a free-text search term to feature IDs and fetches one
// record per ID from caniuse.com. The engine itself never touches the
// network; everything it sees has already been fetched and decoded here.
package caniuse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"caniq/internal/compat"
)

const (
	// DefaultBaseURL is the production caniuse.com endpoint root.
	DefaultBaseURL = "https://caniuse.com"

	searchPath = "/process/query.php"
	dataPath   = "/process/get_feat_data.php"

	// maxBodySize caps response reads; feature payloads are tens of KB.
	maxBodySize = 2 << 20
)

// ErrNoFeatures is returned by Search when the term matches nothing.
var ErrNoFeatures = errors.New("no feature IDs found for search term")

// Client talks to the caniuse.com query endpoints. The zero value is not
// usable; construct with New.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	parallel  int
	logger    *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the endpoint root, mainly for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithParallel bounds how many feature fetches run concurrently.
func WithParallel(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.parallel = n
		}
	}
}

// New creates a Client. logger may not be nil; pass zap.NewNop() when
// logging is unwanted.
func New(logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: "caniq/1.0 (+https://github.com/caniq/caniq)",
		http:      &http.Client{Timeout: 30 * time.Second},
		parallel:  4,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search resolves a free-text term to the matching feature IDs. An empty
// match list is reported as ErrNoFeatures so callers can print a friendly
// message instead of an empty table.
func (c *Client) Search(ctx context.Context, term string) ([]string, error) {
	u := c.baseURL + searchPath + "?search=" + url.QueryEscape(term)
	c.logger.Debug("searching features", zap.String("term", term), zap.String("url", u))

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", term, err)
	}

	var ids []string
	for _, id := range gjson.GetBytes(body, "featureIds").Array() {
		ids = append(ids, id.String())
	}
	c.logger.Info("search complete", zap.String("term", term), zap.Int("matches", len(ids)))
	if len(ids) == 0 {
		return nil, fmt.Errorf("search %q: %w", term, ErrNoFeatures)
	}
	return ids, nil
}

// Fetch retrieves and decodes the support record for one feature ID. The
// endpoint wraps the record in a one-element JSON array.
func (c *Client) Fetch(ctx context.Context, id string) (*compat.Feature, error) {
	u := c.baseURL + dataPath + "?type=support-data&feat=" + url.QueryEscape(id)
	c.logger.Debug("fetching feature", zap.String("feature", id), zap.String("url", u))

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %w", id, err)
	}

	first := gjson.GetBytes(body, "0")
	if !first.Exists() {
		return nil, fmt.Errorf("fetch %q: response carries no feature record", id)
	}

	var feature compat.Feature
	if err := feature.UnmarshalJSON([]byte(first.Raw)); err != nil {
		return nil, fmt.Errorf("fetch %q: decoding record: %w", id, err)
	}
	return &feature, nil
}

// FetchAll retrieves every ID with bounded concurrency. Normalization has
// no cross-feature dependency, so fetches are independent; results come
// back in the order of ids regardless of completion order. The first
// failure cancels the remaining fetches.
func (c *Client) FetchAll(ctx context.Context, ids []string) ([]*compat.Feature, error) {
	features := make([]*compat.Feature, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallel)
	for i, id := range ids {
		g.Go(func() error {
			f, err := c.Fetch(ctx, id)
			if err != nil {
				return err
			}
			features[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return features, nil
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("request failed", zap.String("url", u), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return body, nil
}
