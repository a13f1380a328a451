package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "barbellfx",
	Short: "Relay trading signals from a producer to MetaTrader 5",
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(fetchCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
