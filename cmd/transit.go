package cmd

import (
	"fmt"
	"strings"

	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/config"
	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/transit"
	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// campusStations maps campus names to their Swiss station IDs
var campusStations = map[string]string{
	"brugg":    "8502186", // Brugg AG, next to the Brugg-Windisch campus
	"windisch": "8502186",
	"olten":    "8500218", // Olten
	"basel":    "8500010", // Basel SBB
	"muttenz":  "8500023", // Muttenz
}

var transitCmd = &cobra.Command{
	Use:   "transit",
	Short: "View live departures for FHNW campuses",
	Long:  `Fetch the live departure board for a campus station, or for your saved home station.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		campus, _ := cmd.Flags().GetString("campus")
		fromHome, _ := cmd.Flags().GetBool("home")
		station, _ := cmd.Flags().GetString("station")

		stationID := ""
		label := ""

		switch {
		case station != "":
			stationID = station
			label = "station " + station
		case fromHome:
			cfg, err := config.Load()
			if err != nil || cfg.HomeStationID == "" {
				return fmt.Errorf("home station is not configured, run 'fhnwctl config' first")
			}
			stationID = cfg.HomeStationID
			label = cfg.HomeStationName
		default:
			campus = strings.TrimSpace(strings.ToLower(campus))
			id, ok := campusStations[campus]
			if !ok {
				return fmt.Errorf("unknown campus %q (try brugg, olten, basel or muttenz)", campus)
			}
			stationID = id
			label = cases.Title(language.German).String(campus)
		}

		client := transit.NewClient()
		var deps []transit.Departure
		var err error

		_ = spinner.New().
			Title(fmt.Sprintf("Fetching live departures for %s...", label)).
			Action(func() {
				deps, err = client.FetchStationboard(stationID, 15)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("could not fetch departures: %w", err)
		}

		if len(deps) == 0 {
			fmt.Println("No upcoming departures found.")
			return nil
		}

		fmt.Printf("\n--- 🚌 Next Departures: %s ---\n", label)
		tui.PrintDepartures(deps)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(transitCmd)
	transitCmd.Flags().StringP("campus", "c", "brugg", "Campus name (brugg, windisch, olten, basel, muttenz)")
	transitCmd.Flags().StringP("station", "s", "", "Direct station ID (overrides the campus flag)")
	transitCmd.Flags().BoolP("home", "r", false, "Use your saved home station instead of a campus")
}
