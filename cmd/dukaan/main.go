package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/dukaan/config"
)

func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	color.NoColor = color.NoColor || !config.ColorEnabled()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dukaan",
	Short: "Dukaan — console shopping app",
	Long:  "Dukaan is a console shopping app: register, log in, fill a cart, check out. Catalog and accounts live in flat text files next to the binary.",
}

func init() {
	// Interactive
	rootCmd.AddCommand(runCmd)

	// Read-only views
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(historyCmd)

	// Data
	rootCmd.AddCommand(seedCmd)

	rootCmd.AddCommand(versionCmd)
}
