package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/registration"

	ics "github.com/arran4/golang-ical"
)

// GenerateICS creates an ICS file with one event per module, spanning the
// module's scheduling window, and writes it to the provided writer
func GenerateICS(groups []registration.ModuleGroup, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	// Timezone location for Switzerland
	loc, err := time.LoadLocation("Europe/Zurich")
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}

	layout := "2006-01-02"

	for i, g := range groups {
		if len(g.Registrations) == 0 {
			continue
		}
		anlass := g.Registrations[0].Modulanlass

		start, err := time.ParseInLocation(layout, anlass.DatumVon, loc)
		if err != nil {
			continue // Skip modules without a parseable window
		}
		end, err := time.ParseInLocation(layout, anlass.DatumBis, loc)
		if err != nil {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%d", start.Format("20060102T150405Z"), i))
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetModifiedAt(time.Now())
		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(end)
		event.SetSummary(g.Name)

		var lecturers []string
		for _, l := range anlass.Anlassleitungen {
			lecturers = append(lecturers, fmt.Sprintf("%s %s", l.Leitungsperson.Vorname, l.Leitungsperson.Nachname))
		}

		status := "in progress"
		if g.FinalGrade != nil {
			status = fmt.Sprintf("grade %.2f", *g.FinalGrade)
		}

		description := fmt.Sprintf("ECTS: %d\nStatus: %s\nLecturers: %s",
			g.ECTS, status, strings.Join(lecturers, ", "))
		event.SetDescription(description)
	}

	return cal.SerializeTo(w)
}
