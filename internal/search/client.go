// Package search finds company websites through the Serper search API.
//
// Lookups treat every kind of failure (transport error, non-200 status,
// empty or fully filtered results) as routine absence of data rather than
// an error: external availability cannot be controlled, and the caller's
// natural handling is to move on to the next company.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// defaultEndpoint is the Serper search API.
const defaultEndpoint = "https://api.serper.dev/search"

// defaultTimeout bounds each search call when no timeout is configured.
const defaultTimeout = 20 * time.Second

// resultCount is how many organic results to request per query. More than
// one so there is something left after domain filtering.
const resultCount = 5

// excludedDomains are never returned as a company website. Matching is by
// substring of the host, so subdomains like sub.facebook.com are excluded
// too. That also over-matches unrelated hosts such as linkedin.company.com;
// known false-positive source, kept for predictable filtering.
var excludedDomains = []string{
	"linkedin.com",
	"facebook.com",
	"twitter.com",
	"instagram.com",
	"bloomberg.com",
}

// Client queries the search API for company websites. Safe for concurrent
// use: the credential and blocklist are immutable and each call builds its
// own request.
type Client struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// Option adjusts a Client at construction time.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout for search calls.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithEndpoint overrides the search API endpoint. Used by tests.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// New returns a Client using the given API credential. An empty credential
// is not rejected here; it surfaces as a rejected request at lookup time.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		client: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// searchRequest is the JSON body sent to the search API.
type searchRequest struct {
	Query string `json:"q"`
	Num   int    `json:"num"`
}

// searchResponse holds the part of the API response we read.
type searchResponse struct {
	Organic []organicResult `json:"organic"`
}

type organicResult struct {
	Link string `json:"link"`
}

// IsAllowedDomain reports whether a result URL may be returned as a
// company website. Unparseable URLs and URLs without a host are
// disallowed, never an error.
func (c *Client) IsAllowedDomain(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}

	host := strings.ToLower(u.Host)
	for _, excluded := range excludedDomains {
		if strings.Contains(host, excluded) {
			return false
		}
	}
	return true
}

// SearchCompany looks up the official website for a company name. It
// issues exactly one request and returns the first organic result whose
// link passes the domain filter. Absence of a result, for any reason, is
// ("", false); SearchCompany never returns an error.
func (c *Client) SearchCompany(ctx context.Context, companyName string) (string, bool) {
	body, err := json.Marshal(searchRequest{
		Query: companyName + " company official website",
		Num:   resultCount,
	})
	if err != nil {
		return "", false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		slog.Debug("search request build failed", "company", companyName, "error", err)
		return "", false
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		slog.Debug("search request failed", "company", companyName, "error", err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("search returned non-200", "company", companyName, "status", resp.StatusCode)
		return "", false
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		slog.Debug("search response decode failed", "company", companyName, "error", err)
		return "", false
	}

	for _, r := range result.Organic {
		if r.Link != "" && c.IsAllowedDomain(r.Link) {
			return r.Link, true
		}
	}
	return "", false
}
