package mensa

import (
	"fmt"
	"net/http"
	"time"
)

var baseURL = "https://fhnw.sv-restaurant.ch/de/menuplan"

// Client handles HTTP requests to the SV restaurant menu website
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new menu client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchMenu downloads the weekly menu page and returns the items for the
// given date. The page only covers the current week, so dates outside it
// simply yield an empty list.
func (c *Client) FetchMenu(date time.Time) ([]MenuItem, error) {
	req, err := http.NewRequest("GET", baseURL, nil)
	if err != nil {
		return nil, err
	}

	// The menu site blocks default Go user agents
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menu page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d when fetching menu page", resp.StatusCode)
	}

	return ParseMenu(resp.Body, date)
}
