package transit

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_FetchStations_Mock(t *testing.T) {
	mockResponse := `{
		"stations": [
			{
				"id": "8502186",
				"name": "Brugg AG",
				"coordinate": {"x": 47.481, "y": 8.208}
			},
			{
				"id": "",
				"name": "Brugg AG (Adresse)",
				"coordinate": {"x": 47.48, "y": 8.2}
			}
		]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockResponse))
	}))
	defer server.Close()

	originalBaseURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = originalBaseURL }()

	client := NewClient()

	stations, err := client.FetchStations("Brugg")
	if err != nil {
		t.Fatalf("unexpected error fetching mocked stations: %v", err)
	}

	// The ID-less address pseudo-station must be filtered out
	if len(stations) != 1 {
		t.Fatalf("expected 1 real station, got %d", len(stations))
	}
	if stations[0].ID != "8502186" || stations[0].Name != "Brugg AG" {
		t.Errorf("unexpected station: %+v", stations[0])
	}
}

func TestClient_FetchStationboard_Mock(t *testing.T) {
	// The upstream emits zone offsets without a colon
	mockResponse := `{
		"station": {"id": "8502186", "name": "Brugg AG"},
		"stationboard": [
			{
				"name": "S12",
				"category": "S",
				"number": "12",
				"to": "Zürich HB",
				"stop": {
					"departure": "2026-08-24T12:34:00+0200",
					"delay": 2,
					"platform": "3"
				}
			},
			{
				"name": "B 365",
				"category": "B",
				"number": "365",
				"to": "Windisch Fachhochschule",
				"stop": {
					"departure": "2026-08-24T12:39:00+0200",
					"delay": null,
					"platform": null
				}
			}
		]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockResponse))
	}))
	defer server.Close()

	originalBaseURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = originalBaseURL }()

	client := NewClient()

	deps, err := client.FetchStationboard("8502186", 15)
	if err != nil {
		t.Fatalf("unexpected error fetching mocked stationboard: %v", err)
	}

	if len(deps) != 2 {
		t.Fatalf("expected 2 departures, got %d", len(deps))
	}

	first := deps[0]
	if first.Stop.Departure.IsZero() {
		t.Errorf("failed to parse the colon-less zone offset")
	}
	if first.Stop.Departure.Hour() != 12 || first.Stop.Departure.Minute() != 34 {
		t.Errorf("unexpected departure time: %v", first.Stop.Departure)
	}
	if first.Stop.Delay == nil || *first.Stop.Delay != 2 {
		t.Errorf("expected delay of 2 minutes, got %v", first.Stop.Delay)
	}

	second := deps[1]
	if second.Stop.Delay != nil || second.Stop.Platform != nil {
		t.Errorf("expected nil delay and platform for the bus, got %+v", second.Stop)
	}
}

func TestClient_FetchStationboard_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	originalBaseURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = originalBaseURL }()

	client := NewClient()

	_, err := client.FetchStationboard("unknown", 5)
	if err == nil {
		t.Fatalf("expected an error for a 400 response, got nil")
	}
}
