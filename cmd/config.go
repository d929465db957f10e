package cmd

import (
	"fmt"

	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/config"
	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/transit"
	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage fhnwctl configuration",
	Long:  "View or edit your local configuration settings (tokens, home station, theme).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setToken, _ := cmd.Flags().GetString("set-token")
		setWeatherKey, _ := cmd.Flags().GetString("set-weather-key")
		setHome, _ := cmd.Flags().GetString("set-home")

		changed := false

		if setToken != "" {
			cfg.AccessToken = setToken
			changed = true
		}

		if setWeatherKey != "" {
			cfg.WeatherAPIKey = setWeatherKey
			changed = true
		}

		if setHome != "" {
			fmt.Printf("Searching stations for: '%s'...\n", setHome)

			client := transit.NewClient()
			stations, err := client.FetchStations(setHome)
			if err != nil {
				return fmt.Errorf("could not lookup station: %w", err)
			}
			if len(stations) == 0 {
				return fmt.Errorf("no matching stations found for '%s'", setHome)
			}

			// Snag the first/best match
			match := stations[0]
			cfg.HomeStationID = match.ID
			cfg.HomeStationName = match.Name
			changed = true

			fmt.Printf("✅ Home station saved as: %s (ID: %s)\n", match.Name, match.ID)
		}

		if changed {
			return config.Save(cfg)
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-token", "", "Set the FHNW access token for the grades API")
	configCmd.Flags().String("set-weather-key", "", "Set the OpenWeatherMap API key")
	configCmd.Flags().StringP("set-home", "s", "", "Set your home station for transit departures")
}
