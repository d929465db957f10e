package transit

import (
	"testing"
)

// TestTransitIntegration actually connects to transport.opendata.ch.
// If this fails, the API might be down or changed its JSON structure.
func TestTransitIntegration_FetchStations(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping network integration test in -short mode")
	}

	client := NewClient()

	stations, err := client.FetchStations("Brugg AG")
	if err != nil {
		t.Fatalf("Failed to fetch stations: %v", err)
	}

	if len(stations) == 0 {
		t.Fatalf("Expected stations for 'Brugg AG', got 0")
	}

	if stations[0].ID == "" {
		t.Errorf("Station is missing its ID: %+v", stations[0])
	}
}

func TestTransitIntegration_FetchStationboard(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping network integration test in -short mode")
	}

	client := NewClient()

	// 8502186 is Brugg AG, the stop next to the Brugg-Windisch campus.
	// Late at night the board can be legitimately sparse, so mostly we
	// check that fetching and decoding do not error out.
	deps, err := client.FetchStationboard("8502186", 5)
	if err != nil {
		t.Fatalf("Failed to fetch stationboard: %v", err)
	}

	for _, d := range deps {
		if d.Name == "" || d.To == "" {
			t.Errorf("Departure is missing critical fields: %+v", d)
		}
	}
}
