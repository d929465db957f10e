package cmd

import (
	"fmt"

	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/config"
	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/tui"
	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/weather"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var (
	weatherLat string
	weatherLon string
)

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "View the campus weather and 5-day forecast",
	Long: `Fetch current conditions plus a 5-day forecast for the campus (or any
coordinate pair). Results are cached in-process for 10 minutes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.WeatherAPIKey == "" {
			return fmt.Errorf("no weather API key configured, run 'fhnwctl config --set-weather-key \"<key>\"' first")
		}

		lat, lon := weatherLat, weatherLon
		if lat == "" || lon == "" {
			lat, lon = cfg.Latitude, cfg.Longitude
		}
		if lat == "" || lon == "" {
			// Brugg-Windisch campus
			lat, lon = "47.4814", "8.2122"
		}

		service := weather.NewService(weather.NewClient(cfg.WeatherAPIKey))
		var report *weather.Report
		var fetchErr error

		_ = spinner.New().
			Title("Fetching weather...").
			Action(func() {
				report, fetchErr = service.Report(lat, lon)
			}).
			Run()

		if fetchErr != nil {
			return fmt.Errorf("could not fetch weather: %w", fetchErr)
		}

		tui.PrintWeather(report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(weatherCmd)
	weatherCmd.Flags().StringVar(&weatherLat, "lat", "", "Latitude (defaults to the configured or campus coordinates)")
	weatherCmd.Flags().StringVar(&weatherLon, "lon", "", "Longitude")
}
