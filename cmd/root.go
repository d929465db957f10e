package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fhnwctl",
	Short: "A CLI and TUI student dashboard for the FHNW",
	Long: `fhnwctl is an application for students at the FHNW to check their
grades, the mensa menu, campus weather, transit departures and university
news right from the terminal.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
