package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"projboard/internal/form"
)

// DirName is the name of the configuration directory in the user's home
const DirName = ".projboard"

// Config represents the application configuration
type Config struct {
	// Path of the log file; the board owns the terminal so logs go here
	LogFile string `json:"log_file,omitempty"`

	// Minimum level written to the log (debug, info, warn, error)
	LogLevel string `json:"log_level,omitempty"`

	// Accepted range for the number of people on a project
	PeopleMin int `json:"people_min,omitempty"`
	PeopleMax int `json:"people_max,omitempty"`

	// Maximum length of a project description
	DescriptionMaxLength int `json:"description_max_length,omitempty"`
}

// Default returns the configuration used when no file exists
func Default(dir string) *Config {
	rules := form.DefaultRules()
	return &Config{
		LogFile:              filepath.Join(dir, "projboard.log"),
		LogLevel:             "info",
		PeopleMin:            rules.PeopleMin,
		PeopleMax:            rules.PeopleMax,
		DescriptionMaxLength: rules.DescriptionMax,
	}
}

// Dir returns the configuration directory, ~/.projboard
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting home directory: %w", err)
	}
	return filepath.Join(homeDir, DirName), nil
}

// Path returns the path of the configuration file inside dir
func Path(dir string) string {
	return filepath.Join(dir, "config.json")
}

// Load loads the configuration from the given file path
func Load(path string) (*Config, error) {
	cfg := Default(filepath.Dir(path))

	// If config file doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Values in the file override the defaults
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves the configuration to the given file path
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks that the configured limits make sense
func (c *Config) Validate() error {
	if c.PeopleMin < 0 || c.PeopleMax < 0 || c.DescriptionMaxLength < 0 {
		return fmt.Errorf("limits cannot be negative")
	}
	if c.PeopleMin > 0 && c.PeopleMax > 0 && c.PeopleMin > c.PeopleMax {
		return fmt.Errorf("people_min (%d) is greater than people_max (%d)", c.PeopleMin, c.PeopleMax)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	return nil
}

// FormRules returns the form limits described by the configuration
func (c *Config) FormRules() form.Rules {
	return form.Rules{
		PeopleMin:      c.PeopleMin,
		PeopleMax:      c.PeopleMax,
		DescriptionMax: c.DescriptionMaxLength,
	}
}
