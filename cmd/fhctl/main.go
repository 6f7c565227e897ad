// Command fhctl is the FreelanceHub operator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/freelancehub/backend/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	// loadConfig is swapped in tests
	loadConfig = config.Load
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fhctl",
	Short: "FreelanceHub operator tools",
	Long: `fhctl inspects and exercises a FreelanceHub deployment.

Configuration is read the same way the server reads it: config.toml in the
working directory, overridden by FH_* environment variables.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	configCmd.AddCommand(configShowCmd)
	dbCmd.AddCommand(dbPingCmd)

	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(dbCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
