package transit

import (
	"fmt"
	"strings"
	"time"
)

// Coordinate holds the WGS84 position of a station (x is latitude,
// y is longitude in this API)
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Station is a transit stop returned by the locations endpoint
type Station struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Coordinate Coordinate `json:"coordinate"`
}

// locationsResponse wraps the /locations result
type locationsResponse struct {
	Stations []Station `json:"stations"`
}

// stationboardResponse wraps the /stationboard result
type stationboardResponse struct {
	Station      Station     `json:"station"`
	Stationboard []Departure `json:"stationboard"`
}

// Departure is a single scheduled transport leaving a station
type Departure struct {
	Name     string `json:"name"`     // e.g. "S12" or "B 365"
	Category string `json:"category"` // "S", "IR", "B", ...
	Number   string `json:"number"`
	To       string `json:"to"` // Direction / terminus
	Stop     Stop   `json:"stop"`
}

// Stop carries the scheduled and realtime data of a departure
type Stop struct {
	Departure Timestamp `json:"departure"`
	Delay     *int      `json:"delay"`    // Minutes, nil when no realtime data
	Platform  *string   `json:"platform"` // nil for bus stops without platforms
}

// Timestamp decodes the upstream timestamps, which use a "+0200" style
// zone offset without the colon RFC 3339 requires
type Timestamp struct {
	time.Time
}

// UnmarshalJSON accepts both the colon-less upstream format and plain
// RFC 3339 (which the mock servers in tests emit)
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		t.Time = time.Time{}
		return nil
	}

	for _, layout := range []string{"2006-01-02T15:04:05-0700", time.RFC3339} {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("unrecognized timestamp format: %q", raw)
}
