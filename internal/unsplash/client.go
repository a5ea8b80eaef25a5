package unsplash

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrRequestFailed is matched by every error returned from a fetch. Transport
// failures, HTTP error statuses and undecodable bodies are not distinguished.
var ErrRequestFailed = errors.New("request failed")

// Fetcher retrieves one page of photos. An empty query lists recent photos.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	Fetch(ctx context.Context, query string, page int) ([]Photo, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the Unsplash HTTP API.
type Client struct {
	baseURL   *url.URL
	accessKey string
	http      *http.Client
	userAgent string
}

const (
	DefaultBaseURL   = "https://api.unsplash.com"
	defaultUserAgent = "getphotos/0.1"
	requestTimeout   = 15 * time.Second

	listPath   = "/photos"
	searchPath = "/search/photos"
)

// NewClient builds a Client for the API rooted at baseURL, authenticating
// every request with accessKey as client_id.
func NewClient(baseURL, accessKey string) (*Client, error) {
	key := strings.TrimSpace(accessKey)
	if key == "" {
		return nil, fmt.Errorf("access key is empty")
	}
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:   base,
		accessKey: key,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// HTTPClient exposes the underlying HTTP client so downloads share its timeout.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

// ListURL builds the recent-photos URL for page.
func (c *Client) ListURL(page int) *url.URL {
	values := c.baseValues(page)
	return c.baseURL.ResolveReference(&url.URL{Path: listPath, RawQuery: values.Encode()})
}

// SearchURL builds the search URL for query and page. The query is URL-encoded.
func (c *Client) SearchURL(query string, page int) *url.URL {
	values := c.baseValues(page)
	values.Set("query", query)
	return c.baseURL.ResolveReference(&url.URL{Path: searchPath, RawQuery: values.Encode()})
}

// ListPhotos retrieves a page of recent photos. The endpoint returns a flat list.
func (c *Client) ListPhotos(ctx context.Context, page int) ([]Photo, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Photo
	if err := c.get(ctx, c.ListURL(page), &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// SearchPhotos retrieves a page of search results for query.
func (c *Client) SearchPhotos(ctx context.Context, query string, page int) (SearchResponse, error) {
	if c == nil {
		return SearchResponse{}, fmt.Errorf("client is nil")
	}
	var payload SearchResponse
	if err := c.get(ctx, c.SearchURL(query, page), &payload); err != nil {
		return SearchResponse{}, err
	}
	return payload, nil
}

// Fetch picks the search endpoint when query is non-empty and the list
// endpoint otherwise.
func (c *Client) Fetch(ctx context.Context, query string, page int) ([]Photo, error) {
	if query == "" {
		return c.ListPhotos(ctx, page)
	}
	resp, err := c.SearchPhotos(ctx, query, page)
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *Client) baseValues(page int) url.Values {
	if page < 1 {
		page = 1
	}
	values := url.Values{}
	values.Set("client_id", c.accessKey)
	values.Set("page", strconv.Itoa(page))
	return values
}

func (c *Client) get(ctx context.Context, reqURL *url.URL, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Version", "v1")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: execute request: %w", ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: api %s returned status %d", ErrRequestFailed, reqURL.Path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrRequestFailed, err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
