package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/goclean/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Long: `Validate checks the configuration file for required fields and
valid values, reporting every problem found rather than stopping at the
first one.

Checks performed:
  - Input source and path/table settings
  - Output directory and export format
  - Cleaning strategy, retention policy, and threshold values
  - Validation rule consistency
  - Logging settings

Example:
  goclean validate --config goclean.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat, overrides.Input,
		overrides.OutputDir, overrides.Format, overrides.Strategy, overrides.RemoveOutliers)

	fmt.Printf("Config file: %s\n", configFile)

	if err := cfg.Validate(); err != nil {
		fmt.Printf("❌ %v\n", err)
		return fmt.Errorf("configuration validation failed")
	}

	fmt.Println("✅ Configuration is valid")
	return nil
}
