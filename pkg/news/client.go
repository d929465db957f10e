package news

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var baseURL = "https://www.fhnw.ch/de/searchproxy/api/v2"

// bulkFetchLimit caps the single bulk fetch; pagination links returned by
// the upstream are never followed, filtering happens on the fetched data.
const bulkFetchLimit = 100

// Client handles HTTP requests to the FHNW search proxy
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new search client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) search(template string) ([]RawItem, int, error) {
	params := url.Values{}
	params.Set("template", template)
	params.Set("limit", fmt.Sprintf("%d", bulkFetchLimit))

	reqURL := fmt.Sprintf("%s/search?%s", baseURL, params.Encode())

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, 0, err
	}

	req.Header.Set("User-Agent", "fhnwctl/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch %s: %w", template, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, 0, fmt.Errorf("failed to decode JSON response: %w", err)
	}

	return result.Items, result.ItemsTotal, nil
}

// FetchNews retrieves up to 100 news items plus the upstream total count
func (c *Client) FetchNews() ([]RawItem, int, error) {
	return c.search("news")
}

// FetchEvents retrieves up to 100 event items plus the upstream total count
func (c *Client) FetchEvents() ([]RawItem, int, error) {
	return c.search("events")
}
