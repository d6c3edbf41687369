// Package client provides an HTTP client for the content ratings JSON API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Taxonomy is a category or tag.
type Taxonomy struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Item is a rated post or page.
type Item struct {
	ID     int64  `json:"id"`
	Type   string `json:"type"`
	Title  string `json:"title"`
	Author struct {
		ID          int64  `json:"id"`
		DisplayName string `json:"display_name"`
	} `json:"author"`
	Categories  []Taxonomy `json:"categories"`
	Tags        []Taxonomy `json:"tags"`
	PublishedAt time.Time  `json:"published_at"`
}

// RatedItem is one entry of the top-rated list.
type RatedItem struct {
	Item   Item `json:"item"`
	Rating struct {
		Value int  `json:"value"`
		Rated bool `json:"rated"`
	} `json:"rating"`
}

// TopRatedResponse is the response of the top-rated endpoint.
type TopRatedResponse struct {
	Data     []RatedItem `json:"data"`
	Metadata struct {
		Scale      int    `json:"scale"`
		CategoryID int64  `json:"category_id,omitempty"`
		Tag        string `json:"tag,omitempty"`
	} `json:"metadata"`
}

// Rating is the editor rating of one item. Rating is nil when the item has
// not been rated.
type Rating struct {
	ContentID int64  `json:"content_id"`
	Rating    *int   `json:"rating"`
	Scale     int    `json:"scale"`
	Display   string `json:"display,omitempty"`
}

// TopRatedFilters narrows the top-rated list.
type TopRatedFilters struct {
	CategoryID int64
	Tag        string
	Limit      int
}

func (f TopRatedFilters) queryParams() url.Values {
	params := url.Values{}
	if f.CategoryID > 0 {
		params.Set("category", strconv.FormatInt(f.CategoryID, 10))
	}
	if f.Tag != "" {
		params.Set("tag", f.Tag)
	}
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}
	return params
}

// Client is an HTTP client for the content ratings API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// NewClient creates a new API client. An empty token sends anonymous requests.
func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

func (c *Client) handleResponse(resp *http.Response, result interface{}) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// TopRated lists rated content, highest rating first.
func (c *Client) TopRated(ctx context.Context, filters TopRatedFilters) (*TopRatedResponse, error) {
	path := "/v1/ratings/top"
	if params := filters.queryParams(); len(params) > 0 {
		path += "?" + params.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}

	var result TopRatedResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// GetRating retrieves the editor rating of one item.
func (c *Client) GetRating(ctx context.Context, contentID int64) (*Rating, error) {
	path := "/v1/content/" + strconv.FormatInt(contentID, 10) + "/rating"
	resp, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}

	var rating Rating
	if err := c.handleResponse(resp, &rating); err != nil {
		return nil, err
	}

	return &rating, nil
}
