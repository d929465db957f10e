package registration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

var baseURL = "https://auxilium.webapps.fhnw.ch/student"

// Client handles HTTP requests to the FHNW student registration API
type Client struct {
	httpClient *http.Client
	token      string
}

// NewClient creates a new API client. The access token is the student's
// bearer token for the registration upstream.
func NewClient(token string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		token: token,
	}
}

// FetchRegistrations retrieves all course-component enrollments of the
// authenticated student as a flat array.
func (c *Client) FetchRegistrations() ([]Registration, error) {
	url := fmt.Sprintf("%s/anmeldungen", baseURL)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "fhnwctl/1.0")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch registrations: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("access token was rejected, please update it via 'fhnwctl config'")
	} else if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var regs []Registration
	if err := json.NewDecoder(resp.Body).Decode(&regs); err != nil {
		return nil, fmt.Errorf("failed to decode JSON response: %w", err)
	}

	return regs, nil
}
