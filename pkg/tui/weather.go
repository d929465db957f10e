package tui

import (
	"fmt"
	"time"

	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/config"
	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/weather"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

// Brugg-Windisch campus coordinates, used when none are configured
const (
	defaultLatitude  = "47.4814"
	defaultLongitude = "8.2122"
)

// RunWeatherTUI fetches and renders the campus weather via the shared service
func RunWeatherTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.WeatherAPIKey == "" {
		fmt.Println(errorStyle.Render("No weather API key configured."))
		fmt.Println("Please run 'fhnwctl config --set-weather-key \"<key>\"' in your terminal first.")
		return nil
	}

	lat, lon := cfg.Latitude, cfg.Longitude
	if lat == "" || lon == "" {
		lat, lon = defaultLatitude, defaultLongitude
	}

	service := weather.NewService(weather.NewClient(cfg.WeatherAPIKey))
	var report *weather.Report
	var fetchErr error

	_ = spinner.New().
		Title("Fetching campus weather...").
		Action(func() {
			report, fetchErr = service.Report(lat, lon)
		}).
		Run()

	if fetchErr != nil {
		return fmt.Errorf("could not fetch weather: %w", fetchErr)
	}

	PrintWeather(report)
	return nil
}

// PrintWeather renders current conditions plus the 5-day forecast
func PrintWeather(report *weather.Report) {
	current := report.Current

	condition := ""
	if len(current.Weather) > 0 {
		condition = current.Weather[0].Description
	}

	tempStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- 🌤️ Weather: %s ---", current.Name)))
	fmt.Printf("%s, %s (feels like %.1f°C)\n",
		condition,
		tempStyle.Render(fmt.Sprintf("%.1f°C", current.Main.Temp)),
		current.Main.FeelsLike,
	)
	fmt.Printf("Humidity: %d%% | Wind: %.1f m/s\n", current.Main.Humidity, current.Wind.Speed)

	if len(report.Forecast) == 0 {
		return
	}

	fmt.Println(accentStyle.Render("\n--- 📅 Next Days ---"))
	for _, entry := range report.Forecast {
		day := time.Unix(entry.Dt, 0).Format("Mon 02.01")
		desc := ""
		if len(entry.Weather) > 0 {
			desc = entry.Weather[0].Description
		}
		fmt.Printf("%s: %s, %.1f°C\n", day, desc, entry.Main.Temp)
	}
	fmt.Println()
}
