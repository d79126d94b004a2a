package main

import (
	"os"

	"github.com/spf13/cobra"
)

// @title RBAC Dashboard Admin API
// @version 1.0
// @description API for managing dashboard users and roles

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// rootCmd represents the base command; without a subcommand it serves the API
var rootCmd = &cobra.Command{
	Use:          "rbac-admin",
	Short:        "Admin backend for the RBAC dashboard",
	Long:         "Serves the user and role registries of the RBAC dashboard over HTTP.",
	SilenceUsage: true,
	RunE:         runServe,
}
