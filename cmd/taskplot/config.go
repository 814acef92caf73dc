package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/taskplot/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Manage configuration",
	Long: `View or modify taskplot configuration.

Without arguments, displays current configuration.
With one argument (key), displays the value for that key.
With two arguments (key value), sets the configuration value.

Configuration is stored at ~/.config/taskplot/config.yaml
Project-specific overrides can be placed in .taskplot.yaml
Environment variables such as TASKPLOT_CHART_WIDTH override both.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 2 {
			return setConfigKey(cmd, args[0], args[1])
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if len(args) == 1 {
			return displayConfigKey(cmd, cfg, args[0])
		}
		displayConfigFiles(cmd)
		return displayAllConfig(cmd, cfg)
	},
}

// displayConfigFiles prints which config files are in effect.
func displayConfigFiles(cmd *cobra.Command) {
	project := config.GetProjectConfigPath()
	if project == "" {
		project = "(none)"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# user config: %s\n", config.GetUserConfigPath())
	fmt.Fprintf(cmd.OutOrStdout(), "# project config: %s\n", project)
}

// displayAllConfig prints all configuration values.
func displayAllConfig(cmd *cobra.Command, cfg *config.Config) error {
	for _, key := range config.Keys() {
		value, err := config.Get(cfg, key)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", key, value)
	}
	return nil
}

// displayConfigKey prints a single configuration value.
func displayConfigKey(cmd *cobra.Command, cfg *config.Config, key string) error {
	value, err := config.Get(cfg, key)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

// setConfigKey sets a value in the user config file. Project and environment
// overrides are left out of the saved file.
func setConfigKey(cmd *cobra.Command, key, value string) error {
	cfg, err := config.LoadUser()
	if err != nil {
		return fmt.Errorf("load user config: %w", err)
	}

	if err := config.Set(cfg, key, value); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}
