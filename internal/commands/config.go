package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"projboard/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage projboard configuration",
	Long:  "View and update projboard configuration settings",
}

// configKeys lists every key config get and set understand
var configKeys = []string{"log-file", "log-level", "people-min", "people-max", "description-max-length"}

func configValue(cfg *config.Config, key string) (string, error) {
	switch key {
	case "log-file":
		return cfg.LogFile, nil
	case "log-level":
		return cfg.LogLevel, nil
	case "people-min":
		return strconv.Itoa(cfg.PeopleMin), nil
	case "people-max":
		return strconv.Itoa(cfg.PeopleMax), nil
	case "description-max-length":
		return strconv.Itoa(cfg.DescriptionMaxLength), nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

func setConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "log-file":
		cfg.LogFile = value
		return nil
	case "log-level":
		cfg.LogLevel = value
		return nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		if _, keyErr := configValue(cfg, key); keyErr != nil {
			return keyErr
		}
		return fmt.Errorf("%s must be a number: %w", key, err)
	}
	switch key {
	case "people-min":
		cfg.PeopleMin = n
	case "people-max":
		cfg.PeopleMax = n
	case "description-max-length":
		cfg.DescriptionMaxLength = n
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Get configuration value",
	Long:  "Display specific configuration value or all configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := currentConfig()
		out := cmd.OutOrStdout()

		// If no argument is provided, show all config
		if len(args) == 0 {
			fmt.Fprintln(out, "Current configuration:")
			for _, key := range configKeys {
				value, _ := configValue(cfg, key)
				fmt.Fprintf(out, "%s: %s\n", key, value)
			}
			return nil
		}

		value, err := configValue(cfg, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set configuration value",
	Long:  "Update a configuration setting and save it to the config file",
	Example: `  projboard config set people-max 8
  projboard config set log-level debug`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *currentConfig()
		oldValue, err := configValue(&cfg, args[0])
		if err != nil {
			return err
		}
		if err := setConfigValue(&cfg, args[0], args[1]); err != nil {
			return err
		}

		if err := cfg.Save(globalConfigPath); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}
		*globalConfig = cfg

		fmt.Fprintf(cmd.OutOrStdout(), "%s updated: %s -> %s\n", args[0], oldValue, args[1])
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long:  "Create a new configuration file with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		// Check if config file exists
		if _, err := os.Stat(globalConfigPath); err == nil {
			fmt.Fprintln(out, "Configuration file already exists.")
			fmt.Fprintln(out, "Use 'projboard config set' to modify existing configuration.")
			return nil
		}

		cfg := config.Default(configDir())
		if err := cfg.Save(globalConfigPath); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}
		globalConfig = cfg

		fmt.Fprintln(out, "Configuration initialized successfully.")
		fmt.Fprintf(out, "Configuration file created at: %s\n", globalConfigPath)
		return nil
	},
}

// configDir returns the directory holding the config file
func configDir() string {
	if globalConfigPath == "" {
		return ""
	}
	return filepath.Dir(globalConfigPath)
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
}
