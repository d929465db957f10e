package cmd

import (
	"fmt"

	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/config"
	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/registration"
	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var gradesCmd = &cobra.Command{
	Use:   "grades",
	Short: "View your module grades and averages",
	Long: `Fetch your course registrations, group them into modules and compute
the final grades, the ECTS-weighted average and your pass rate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		onlyGraded, _ := cmd.Flags().GetBool("graded")

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.AccessToken == "" {
			return fmt.Errorf("no access token configured, run 'fhnwctl config --set-token \"<token>\"' first")
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

		groups := registration.Group(regs)

		for _, g := range groups {
			if onlyGraded && g.FinalGrade == nil {
				continue
			}
			tui.PrintModuleGroup(g)
		}

		tui.PrintStats(registration.Summarize(groups))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gradesCmd)
	gradesCmd.Flags().BoolP("graded", "g", false, "Only show modules that already have a final grade")
}
