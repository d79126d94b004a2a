package main

import (
	"fmt"

	"github.com/rbacdashboard/backend/internal/models"
	"github.com/spf13/cobra"
)

// permissionsCmd lists the permission vocabulary
var permissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "List the permissions a role may hold",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range models.PermissionOptions() {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), p); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(permissionsCmd)
}
