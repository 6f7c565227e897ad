package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

const redacted = "********"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

// configShowCmd prints the effective configuration with secrets masked
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration the server would start with, after config.toml,
FH_* environment variables and built-in defaults are applied. Passwords and
secrets are masked.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		masked := *cfg
		if masked.Database.Password != "" {
			masked.Database.Password = redacted
		}
		if masked.Redis.Password != "" {
			masked.Redis.Password = redacted
		}
		if masked.JWT.Secret != "" {
			masked.JWT.Secret = redacted
		}
		if masked.Storage.SecretAccessKey != "" {
			masked.Storage.SecretAccessKey = redacted
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(masked)
	},
}
