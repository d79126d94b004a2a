package main

import (
	"encoding/json"
	"os"

	"github.com/rbacdashboard/backend/internal/seed"
	"github.com/spf13/cobra"
)

var seedFile string

// seedCmd prints the records the registries would start with
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Print the effective seed data as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := seed.Load(seedFile)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", os.Getenv("SEED_FILE"), "YAML seed file (default: built-in seed)")
}
