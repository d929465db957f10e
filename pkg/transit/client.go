package transit

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var baseURL = "http://transport.opendata.ch/v1"

// Client interacts with the Swiss public transport API
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// getWithRetries attempts an HTTP GET request up to 3 times for 502/503/504
// and transport-level errors
func (c *Client) getWithRetries(reqURL string) (*http.Response, error) {
	var lastErr error
	var resp *http.Response

	for attempt := 0; attempt < 3; attempt++ {
		req, err := http.NewRequest("GET", reqURL, nil)
		if err != nil {
			return nil, err
		}
		// Public APIs often block default Go user agents
		req.Header.Set("User-Agent", "fhnwctl-student-project/1.0")

		resp, lastErr = c.httpClient.Do(req)

		// If the request succeeded but gave a transient error code, also retry
		if lastErr == nil && (resp.StatusCode == 503 || resp.StatusCode == 504 || resp.StatusCode == 502) {
			resp.Body.Close()
			lastErr = fmt.Errorf("transient status code: %d", resp.StatusCode)
		} else if lastErr == nil {
			return resp, nil
		}

		if attempt < 2 {
			fmt.Printf("\r\033[K[Transit API] Network congested, retrying... (Attempt %d/3)\n", attempt+1)
		}

		time.Sleep(time.Duration(attempt+1) * time.Second)
	}

	return nil, fmt.Errorf("failed after 3 attempts: %v", lastErr)
}

// FetchStations searches for transit stops matching a text query
func (c *Client) FetchStations(query string) ([]Station, error) {
	encodedQuery := url.QueryEscape(query)
	reqURL := fmt.Sprintf("%s/locations?query=%s&type=station", baseURL, encodedQuery)

	resp, err := c.getWithRetries(reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stations: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read station response body: %w", err)
	}

	var locResp locationsResponse
	if err := json.Unmarshal(body, &locResp); err != nil {
		return nil, fmt.Errorf("failed to decode stations JSON: %w", err)
	}

	// The API also returns address/POI pseudo-stations without an ID
	var stations []Station
	for _, s := range locResp.Stations {
		if s.ID != "" {
			stations = append(stations, s)
		}
	}

	return stations, nil
}

// FetchStationboard gets the next departures for a specific station ID
func (c *Client) FetchStationboard(stationID string, limit int) ([]Departure, error) {
	reqURL := fmt.Sprintf("%s/stationboard?id=%s&limit=%d", baseURL, url.QueryEscape(stationID), limit)

	resp, err := c.getWithRetries(reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stationboard: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read stationboard response body: %w", err)
	}

	var boardResp stationboardResponse
	if err := json.Unmarshal(body, &boardResp); err != nil {
		return nil, fmt.Errorf("failed to decode stationboard JSON: %w", err)
	}

	return boardResp.Stationboard, nil
}
