package hotlist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// Browser-like user agent; the hotlist API rejects obvious bot agents.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

const (
	discoverTimeout = 10 * time.Second
	// Per-channel payloads can be larger than the route list.
	fetchTimeout = 15 * time.Second
)

// Route describes one channel's availability as reported by the
// discovery endpoint.
type Route struct {
	Name    string  `json:"name"`
	Path    *string `json:"path"`
	Message string  `json:"message"`
}

// Available reports whether the route can actually be fetched.
func (r Route) Available() bool {
	return r.Path != nil && r.Message == ""
}

type discoveryResponse struct {
	Code   int     `json:"code"`
	Routes []Route `json:"routes"`
}

// Item is a single trending entry in a channel's hotlist.
type Item struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// Response is the hotlist payload for one channel.
type Response struct {
	Code  int    `json:"code"`
	Title string `json:"title"`
	Name  string `json:"name"`
	Data  []Item `json:"data"`
}

// DisplayName returns the human-readable channel name, falling back to
// the raw channel identifier.
func (r *Response) DisplayName(channel string) string {
	if r.Title != "" {
		return r.Title
	}
	if r.Name != "" {
		return r.Name
	}
	return channel
}

// CombinedText joins every item's title (plus description when present)
// into one newline-separated block for keyword extraction.
func (r *Response) CombinedText() string {
	lines := lo.Map(r.Data, func(item Item, _ int) string {
		if item.Desc != "" {
			return item.Title + " " + item.Desc
		}
		return item.Title
	})
	return strings.Join(lines, "\n")
}

// Client handles hotlist API operations
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new hotlist API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// Timeouts are applied per call; discovery and fetch differ.
		httpClient: &http.Client{},
	}
}

// Routes fetches the discovery endpoint and returns all reported routes.
func (c *Client) Routes(ctx context.Context) ([]Route, error) {
	url := c.baseURL + "/all"

	var resp discoveryResponse
	if err := c.getJSON(ctx, url, discoverTimeout, &resp); err != nil {
		return nil, err
	}

	if resp.Code != 200 {
		return nil, &Error{Kind: ErrUpstream, URL: url, Err: fmt.Errorf("unexpected response code: %d", resp.Code)}
	}
	if resp.Routes == nil {
		return nil, &Error{Kind: ErrUpstream, URL: url, Err: fmt.Errorf("response has no routes field")}
	}

	return resp.Routes, nil
}

// Channels returns the names of all available channels in discovery
// order. On any discovery failure it logs a warning and returns the
// fixed fallback list instead; it never returns an error.
func (c *Client) Channels(ctx context.Context) []string {
	routes, err := c.Routes(ctx)
	if err != nil {
		log.Warnf("fetching channel list failed, using fallback list: %v", err)
		return FallbackChannels()
	}

	channels := lo.FilterMap(routes, func(r Route, _ int) (string, bool) {
		return r.Name, r.Available()
	})

	log.Infof("discovered %d available channels", len(channels))
	return channels
}

// Fetch retrieves the hotlist for one channel.
func (c *Client) Fetch(ctx context.Context, channel string, limit int, useCache bool) (*Response, error) {
	url := fmt.Sprintf("%s/%s?limit=%d&cache=%t", c.baseURL, channel, limit, useCache)

	var resp Response
	if err := c.getJSON(ctx, url, fetchTimeout, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// getJSON performs a GET request and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, url string, timeout time.Duration, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return &Error{Kind: ErrTransport, URL: url, Err: fmt.Errorf("creating request: %w", err)}
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: ErrTransport, URL: url, Err: fmt.Errorf("sending request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{Kind: ErrStatus, URL: url, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: ErrDecode, URL: url, Err: fmt.Errorf("decoding response: %w", err)}
	}

	return nil
}
