package tui

import (
	"fmt"

	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/config"
	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/transit"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

// campusStationID is Brugg AG, the stop next to the Brugg-Windisch campus
const campusStationID = "8502186"

// RunTransitTUI runs the interactive flow for the live departure board
func RunTransitTUI() error {
	cfg, _ := config.Load()

	stationID := campusStationID
	stationName := "Brugg AG (Campus)"

	if cfg != nil && cfg.HomeStationID != "" {
		var choice string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Departures from where?").
					Options(
						huh.NewOption("🏫 Campus (Brugg AG)", campusStationID),
						huh.NewOption("🏠 "+cfg.HomeStationName, cfg.HomeStationID),
					).
					Value(&choice),
			),
		).WithTheme(GetTheme())

		if err := form.Run(); err != nil {
			return err
		}

		stationID = choice
		if choice == cfg.HomeStationID {
			stationName = cfg.HomeStationName
		}
	}

	client := transit.NewClient()
	var deps []transit.Departure
	var err error

	_ = spinner.New().
		Title("Fetching live departures...").
		Action(func() {
			deps, err = client.FetchStationboard(stationID, 15)
		}).
		Run()

	if err != nil {
		return fmt.Errorf("could not fetch departures: %w", err)
	}

	if len(deps) == 0 {
		fmt.Println(errorStyle.Render("No upcoming departures found."))
		return nil
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- 🚌 Next Departures: %s ---", stationName)))
	PrintDepartures(deps)
	return nil
}

// PrintDepartures renders a summarized departure board
func PrintDepartures(deps []transit.Departure) {
	summary := transit.SummarizeDepartures(deps, 2)

	for _, route := range summary {
		lineStr := lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).Render(route.LineName)
		fmt.Printf("\n%s -> %s\n", lineStr, route.Direction)

		for _, d := range route.Departures {
			delayStr := ""
			if d.Stop.Delay != nil && *d.Stop.Delay > 0 {
				delayStr = errorStyle.Render(fmt.Sprintf(" (+%d min delay)", *d.Stop.Delay))
			}

			platformStr := ""
			if d.Stop.Platform != nil && *d.Stop.Platform != "" {
				platformStr = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(" Gleis " + *d.Stop.Platform)
			}

			timeStr := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render(d.Stop.Departure.Local().Format("15:04"))

			fmt.Printf("  • [%s]%s%s\n", timeStr, platformStr, delayStr)
		}
	}
	fmt.Println()
}
