package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"enquete_peche/internal/config"
	"enquete_peche/internal/geoimport"
	"enquete_peche/internal/logger"
)

var fixtureFile string

var rootCmd = &cobra.Command{
	Use:   "geoimport",
	Short: "Import the region/district/commune/fokontany reference tree",
	Long: `geoimport reads a JSON fixture describing the administrative
hierarchy and idempotently upserts it, keyed on name + parent. Re-running
against the same fixture changes nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Setup()
		config.InitDB()

		fixtures, err := geoimport.Load(fixtureFile)
		if err != nil {
			return err
		}

		summary, err := geoimport.Run(config.DB, fixtures)
		if err != nil {
			return err
		}

		fmt.Printf("regions: %d created\ndistricts: %d created\ncommunes: %d created\nfokontany: %d created\n",
			summary.RegionsCreated, summary.DistrictsCreated, summary.CommunesCreated, summary.FokontanyCreated)
		return nil
	},
}

func main() {
	rootCmd.Flags().StringVarP(&fixtureFile, "file", "f", "fixtures/geographie.json", "path to the geography fixture")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
