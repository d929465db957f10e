package registration

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_FetchRegistrations_Mock(t *testing.T) {
	mockResponse := `[
		{
			"anmeldungsId": 9001,
			"modulanlass": {
				"nummer": "mgli.HN",
				"bezeichnung": "Mathematik und Grundlagen der Informatik (HS2025)",
				"datumVon": "2025-09-15",
				"datumBis": "2026-01-16",
				"anzahlAnmeldung": 42,
				"maxTeilnehmende": 48,
				"anlassleitungen": [
					{"leitungsperson": {"vorname": "Anna", "nachname": "Keller"}}
				]
			},
			"freieNote": 5.0,
			"bestanden": true,
			"hochschule": "HT",
			"statusName": "Abgeschlossen"
		},
		{
			"anmeldungsId": 9002,
			"modulanlass": {
				"nummer": "oopI2.SE/1",
				"bezeichnung": "Objektorientierte Programmierung 2",
				"datumVon": "2026-02-16",
				"datumBis": "2026-06-19"
			},
			"freieNote": null,
			"bestanden": null,
			"hochschule": "HT",
			"statusName": "Angemeldet"
		}
	]`

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockResponse))
	}))
	defer server.Close()

	originalBaseURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = originalBaseURL }()

	client := NewClient("secret-token")

	regs, err := client.FetchRegistrations()
	if err != nil {
		t.Fatalf("unexpected error fetching mocked registrations: %v", err)
	}

	if gotAuth != "Bearer secret-token" {
		t.Errorf("expected bearer token header, got %q", gotAuth)
	}

	if len(regs) != 2 {
		t.Fatalf("expected 2 registrations, got %d", len(regs))
	}

	if regs[0].FreieNote == nil || *regs[0].FreieNote != 5.0 {
		t.Errorf("expected published grade 5.0, got %v", regs[0].FreieNote)
	}
	if regs[1].FreieNote != nil {
		t.Errorf("expected unpublished grade to stay nil, got %v", *regs[1].FreieNote)
	}
	if regs[0].Modulanlass.Anlassleitungen[0].Leitungsperson.Nachname != "Keller" {
		t.Errorf("lecturer not decoded: %+v", regs[0].Modulanlass.Anlassleitungen)
	}
}

func TestClient_FetchRegistrations_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	originalBaseURL := baseURL
	baseURL = server.URL
	defer func() { baseURL = originalBaseURL }()

	client := NewClient("expired")

	_, err := client.FetchRegistrations()
	if err == nil {
		t.Fatalf("expected an error for a rejected token, got nil")
	}
}
