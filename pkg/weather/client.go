package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var baseURL = "https://api.openweathermap.org/data/2.5"

// Client handles HTTP requests to the OpenWeatherMap API
type Client struct {
	httpClient *http.Client
	apiKey     string
}

// NewClient creates a new weather API client
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiKey: apiKey,
	}
}

func (c *Client) get(endpoint, lat, lon string, out interface{}) error {
	params := url.Values{}
	params.Set("lat", lat)
	params.Set("lon", lon)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	params.Set("lang", "de")

	reqURL := fmt.Sprintf("%s/%s?%s", baseURL, endpoint, params.Encode())

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return err
	}

	req.Header.Set("User-Agent", "fhnwctl/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("weather API key was rejected, please update it via 'fhnwctl config'")
	} else if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode JSON response: %w", err)
	}

	return nil
}

// FetchCurrent retrieves current conditions for a coordinate pair.
// Coordinates are passed through as strings, matching the cache key.
func (c *Client) FetchCurrent(lat, lon string) (*Current, error) {
	var current Current
	if err := c.get("weather", lat, lon, &current); err != nil {
		return nil, err
	}
	return &current, nil
}

// FetchForecast retrieves the 5-day/3-hour forecast reduced to one
// reading per day by sampling every 8th entry of the feed.
func (c *Client) FetchForecast(lat, lon string) ([]ForecastEntry, error) {
	var forecast forecastResponse
	if err := c.get("forecast", lat, lon, &forecast); err != nil {
		return nil, err
	}

	var daily []ForecastEntry
	for i, entry := range forecast.List {
		if i%8 == 0 {
			daily = append(daily, entry)
		}
	}

	return daily, nil
}
