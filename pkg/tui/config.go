package tui

import (
	"fmt"

	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/config"
	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/transit"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Access Token (Grades)", "token"),
						huh.NewOption("Set Weather API Key", "weather"),
						huh.NewOption("Set Home Station (Transit)", "home"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		if action == "back" {
			return nil
		}

		if action == "theme" {
			err = runSetThemeTUI(cfg)
		} else if action == "token" {
			err = runSetSecretTUI(cfg, "Paste your FHNW access token", func(c *config.AppConfig, v string) { c.AccessToken = v })
		} else if action == "weather" {
			err = runSetSecretTUI(cfg, "Paste your OpenWeatherMap API key", func(c *config.AppConfig, v string) { c.WeatherAPIKey = v })
		} else if action == "home" {
			err = runSetHomeStationTUI(cfg)
		} else if action == "view" {
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.fhnwctl.json) ---"))
			if cfg.AccessToken == "" {
				fmt.Println("Access Token: Not set")
			} else {
				fmt.Println("Access Token: Set")
			}
			if cfg.WeatherAPIKey == "" {
				fmt.Println("Weather API Key: Not set")
			} else {
				fmt.Println("Weather API Key: Set")
			}
			if cfg.HomeStationName == "" {
				fmt.Println("Home Station: Not set")
			} else {
				fmt.Printf("Home Station: %s (ID: %s)\n", cfg.HomeStationName, cfg.HomeStationID)
			}
			fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func runSetSecretTUI(cfg *config.AppConfig, title string, assign func(*config.AppConfig, string)) error {
	var value string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				EchoMode(huh.EchoModePassword).
				Value(&value),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if value == "" {
		fmt.Println(errorStyle.Render("Nothing entered, keeping the old value."))
		return nil
	}

	assign(cfg, value)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Saved.\n"))
	return nil
}

func runSetHomeStationTUI(cfg *config.AppConfig) error {
	var query string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Search for your home station").
				Placeholder("e.g. Baden, Bahnhof").
				Value(&query),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	client := transit.NewClient()
	var stations []transit.Station
	var err error

	_ = spinner.New().
		Title(fmt.Sprintf("Searching stations for '%s'...", query)).
		Action(func() {
			stations, err = client.FetchStations(query)
		}).
		Run()

	if err != nil {
		return fmt.Errorf("could not search stations: %w", err)
	}
	if len(stations) == 0 {
		fmt.Println(errorStyle.Render("No matching stations found."))
		return nil
	}

	var options []huh.Option[string]
	byID := make(map[string]transit.Station)
	for _, s := range stations {
		options = append(options, huh.NewOption(s.Name, s.ID))
		byID[s.ID] = s
	}

	var selectedID string
	pickForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select your station").
				Options(options...).
				Value(&selectedID),
		),
	).WithTheme(GetTheme())

	if err := pickForm.Run(); err != nil {
		return err
	}

	cfg.HomeStationID = selectedID
	cfg.HomeStationName = byID[selectedID].Name
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Home station saved as: %s\n", cfg.HomeStationName)))
	return nil
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	colors := []huh.Option[string]{
		huh.NewOption("FHNW Yellow", "220"),
		huh.NewOption("Purple", "99"),
		huh.NewOption("Green", "46"),
		huh.NewOption("Pink", "205"),
		huh.NewOption("Blue", "39"),
		huh.NewOption("Red", "196"),
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select your accent color").
				Options(colors...).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.AccentColor = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	preview := lipgloss.NewStyle().Foreground(lipgloss.Color(selected)).Bold(true)
	fmt.Println(preview.Render("\n✅ Accent color updated.\n"))
	return nil
}
