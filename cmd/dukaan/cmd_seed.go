package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/dukaan/database/seed"
)

// dukaan seed — populate empty stores with demo data.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed demo products and a default admin into empty stores",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Seeding…")
		if err := seed.RunAll(afero.NewOsFs()); err != nil {
			return err
		}
		fmt.Println("Seeding complete.")
		return nil
	},
}

var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the dukaan version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("dukaan", version)
	},
}
