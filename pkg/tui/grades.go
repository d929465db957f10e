package tui

import (
	"fmt"

	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/config"
	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/registration"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

// RunGradesTUI fetches the student's registrations and renders the grouped
// modules with their resolved grades and summary statistics
func RunGradesTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.AccessToken == "" {
		fmt.Println(errorStyle.Render("No access token configured."))
		fmt.Println("Please run 'fhnwctl config --set-token \"<token>\"' in your terminal first.")
		return nil
	}

	client := registration.NewClient(cfg.AccessToken)
	var regs []registration.Registration
	var fetchErr error

	_ = spinner.New().
		Title("Fetching your course registrations...").
		Action(func() {
			regs, fetchErr = client.FetchRegistrations()
		}).
		Run()

	if fetchErr != nil {
		return fmt.Errorf("could not fetch registrations: %w", fetchErr)
	}

	if len(regs) == 0 {
		fmt.Println(errorStyle.Render("No registrations found for this semester."))
		return nil
	}

	groups := registration.Group(regs)

	fmt.Println(accentStyle.Render("\n--- 🎓 Your Modules ---"))
	for _, g := range groups {
		PrintModuleGroup(g)
	}

	PrintStats(registration.Summarize(groups))
	return nil
}

// PrintModuleGroup renders one module with its resolved grade and components
func PrintModuleGroup(g registration.ModuleGroup) {
	gradeStr := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("in progress")
	if g.FinalGrade != nil {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
		if *g.FinalGrade < 4.0 {
			style = errorStyle
		}
		gradeStr = style.Render(fmt.Sprintf("%.2f", *g.FinalGrade))
	}

	nameStr := lipgloss.NewStyle().Bold(true).Render(g.Name)
	fmt.Printf("\n%s [%d ECTS] -> %s\n", nameStr, g.ECTS, gradeStr)

	for _, r := range g.Registrations {
		kindStr := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(string(r.Type.Kind))
		if r.FreieNote != nil {
			fmt.Printf("  • %s %s: %.2f\n", r.Modulanlass.Nummer, kindStr, *r.FreieNote)
		} else {
			fmt.Printf("  • %s %s: -\n", r.Modulanlass.Nummer, kindStr)
		}
	}
}

// PrintStats renders the summary block below the module list
func PrintStats(stats registration.Stats) {
	fmt.Println(accentStyle.Render("\n--- 📊 Summary ---"))
	fmt.Printf("Modules: %d | Graded components: %d\n", stats.ModuleCount, stats.GradedCount)

	if stats.WeightedAverage != nil {
		fmt.Printf("ECTS-weighted average: %.2f\n", *stats.WeightedAverage)
	}
	if stats.RawAverage != nil {
		// Kept next to the weighted figure as a sanity check
		fmt.Printf("Raw average: %.2f\n", *stats.RawAverage)
	}
	if stats.PassRate != nil {
		fmt.Printf("Pass rate: %.0f%%\n", *stats.PassRate*100)
	}
	fmt.Println()
}
