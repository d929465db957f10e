package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/mensa"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

// RunMensaTUI runs the interactive flow for picking a day and displaying the menu
func RunMensaTUI() error {
	var selectedDate string

	// Offer the current week starting today
	var options []huh.Option[string]
	for i := 0; i < 5; i++ {
		day := time.Now().AddDate(0, 0, i)
		label := day.Format("Monday, 02.01.2006")
		if i == 0 {
			label = "Today"
		} else if i == 1 {
			label = "Tomorrow"
		}
		options = append(options, huh.NewOption(label, day.Format("2006-01-02")))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which day's menu would you like?").
				Options(options...).
				Value(&selectedDate),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	date, err := time.Parse("2006-01-02", selectedDate)
	if err != nil {
		return err
	}

	client := mensa.NewClient()
	var items []mensa.MenuItem
	var fetchErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Fetching menu for %s...", date.Format("02.01.2006"))).
		Action(func() {
			items, fetchErr = client.FetchMenu(date)
		}).
		Run()

	if fetchErr != nil {
		return fmt.Errorf("could not fetch menu: %w", fetchErr)
	}

	PrintMenu(items, date)
	return nil
}

// PrintMenu renders the menu items for one day
func PrintMenu(items []mensa.MenuItem, date time.Time) {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true).Padding(1, 0)
	priceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)

	fmt.Println(titleStyle.Render(fmt.Sprintf("Mensa Menu for %s", date.Format("02.01.2006"))))

	if len(items) == 0 {
		fmt.Println("No meals available for this date.")
		return
	}

	for _, item := range items {
		diet := ""
		if item.Vegan {
			diet = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render(" [Vegan]")
		} else if item.Vegetarian {
			diet = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render(" [Vegetarisch]")
		}

		fmt.Printf("• %s%s\n", item.Title, diet)
		if item.Description != "" {
			fmt.Printf("  %s\n", item.Description)
		}

		prices := fmt.Sprintf("INT: CHF %s | EXT: CHF %s",
			priceStyle.Render(item.Price.Student),
			priceStyle.Render(item.Price.Regular),
		)
		fmt.Printf("  %s\n", prices)

		var extras []string
		if len(item.Allergens) > 0 {
			codes := make([]string, len(item.Allergens))
			for i, code := range item.Allergens {
				codes[i] = fmt.Sprintf("%d", code)
			}
			extras = append(extras, "Allergene: "+strings.Join(codes, ", "))
		}
		if item.Provenance != "" {
			extras = append(extras, "Herkunft: "+item.Provenance)
		}
		if item.Nutrition != nil {
			extras = append(extras, fmt.Sprintf("%s | %s Fett | %s KH | %s Protein",
				item.Nutrition.Energy, item.Nutrition.Fat, item.Nutrition.Carbs, item.Nutrition.Protein))
		}

		if len(extras) > 0 {
			fmt.Printf("  %s\n", infoStyle.Render(strings.Join(extras, " · ")))
		}
		fmt.Println()
	}
}
