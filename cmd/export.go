package cmd

import (
	"fmt"
	"os"

	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/config"
	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/exporter"
	"github.com/peaktwilight/fhnw-dashboard-sub000/pkg/registration"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your module windows to an ICS file",
	Long:  `Export the scheduling windows of your registered modules to an .ics calendar file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

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
			Title(fmt.Sprintf("Exporting your modules to %s...", output)).
			Action(func() {
				regs, fetchErr = client.FetchRegistrations()
			}).
			Run()

		if fetchErr != nil {
			return fmt.Errorf("failed to fetch registrations: %w", fetchErr)
		}

		groups := registration.Group(regs)
		if len(groups) == 0 {
			return fmt.Errorf("no modules found to export")
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(groups, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d modules to %s\n", len(groups), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("output", "o", "modules.ics", "Output file path")
}
