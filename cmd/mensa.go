package cmd

import (
	"fmt"
	"time"

	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/mensa"
	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var mensaDateStr string

var mensaCmd = &cobra.Command{
	Use:   "mensa",
	Short: "View the mensa menu for the campus",
	Long:  `Fetch and display the daily menu of the Brugg-Windisch campus mensa.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to today if no date provided. The menu page labels days
		// with day and month only, so the year is resolved here.
		date := time.Now()
		if mensaDateStr != "" {
			parsed, err := time.Parse("2006-01-02", mensaDateStr)
			if err != nil {
				return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", mensaDateStr)
			}
			date = parsed
		}

		client := mensa.NewClient()
		var items []mensa.MenuItem
		var err error

		_ = spinner.New().
			Title(fmt.Sprintf("Fetching menu for %s...", date.Format("02.01.2006"))).
			Action(func() {
				items, err = client.FetchMenu(date)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("could not fetch menu: %w", err)
		}

		tui.PrintMenu(items, date)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mensaCmd)
	mensaCmd.Flags().StringVarP(&mensaDateStr, "date", "d", "", "Date to fetch (format: YYYY-MM-DD), defaults to today")
}
