package exporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/registration"
)

func TestGenerateICS(t *testing.T) {
	note := 5.0
	groups := registration.Group([]registration.Registration{
		{
			Modulanlass: registration.Modulanlass{
				Nummer:      "mgli.HN",
				Bezeichnung: "Mathematik und Grundlagen der Informatik (HS2025)",
				DatumVon:    "2025-09-15",
				DatumBis:    "2026-01-16",
				Anlassleitungen: []registration.Anlassleitung{
					{Leitungsperson: registration.Person{Vorname: "Anna", Nachname: "Keller"}},
				},
			},
			FreieNote: &note,
		},
		{
			Modulanlass: registration.Modulanlass{
				Nummer:      "broken.HN",
				Bezeichnung: "Kaputtes Modul",
				DatumVon:    "sometime",
				DatumBis:    "later",
			},
		},
	})

	var buf bytes.Buffer
	err := GenerateICS(groups, &buf)
	if err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "SUMMARY:Mathematik und Grundlagen der Informatik") {
		t.Errorf("Expected ICS to contain the cleaned module name, got: \n%s", output)
	}

	if !strings.Contains(output, "DTSTART;VALUE=DATE:20250915") {
		t.Errorf("Expected all-day start date in ICS, got: \n%s", output)
	}

	if !strings.Contains(output, "Anna Keller") {
		t.Errorf("Expected the lecturer in the event description")
	}

	if strings.Contains(output, "Kaputtes Modul") {
		t.Errorf("Expected the module with an unparseable window to be skipped")
	}
}
