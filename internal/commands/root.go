package commands

import (
	"fmt"

	"projboard/internal/config"
	"projboard/internal/form"
	"projboard/internal/logging"
	"projboard/internal/state"
	"projboard/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	globalConfig     *config.Config
	globalConfigPath string

	// Flag overrides for the configured log settings
	logFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "projboard",
	Short: "Project Board - track projects from active to finished",
	Long: `Project Board (projboard) is a terminal board for project entries.
Add projects with a title, description and headcount, then drag them
between the ACTIVE and FINISHED lists.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, closeLog, err := openLogger()
		if err != nil {
			return err
		}
		defer closeLog()

		store, validator := newBoard(logger)
		logger.Info("board started")

		p := tea.NewProgram(ui.NewModel(store, validator, logger), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running board: %w", err)
		}

		logger.Info("board closed", zap.Int("projects", store.Len()))
		return nil
	},
}

// Execute runs the root command
func Execute(cfg *config.Config, cfgPath string) error {
	globalConfig = cfg
	globalConfigPath = cfgPath
	return rootCmd.Execute()
}

// newBoard creates the single store shared by everything on the board,
// and the validator for the project form.
func newBoard(logger *zap.Logger) (*state.ProjectStore, *form.Validator) {
	return state.NewProjectStore(logger), form.New(currentConfig().FormRules())
}

// openLogger opens the log file, with flags taking precedence over config.
func openLogger() (*zap.Logger, func() error, error) {
	cfg := currentConfig()
	path := cfg.LogFile
	if logFile != "" {
		path = logFile
	}
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}

	logger, closeLog, err := logging.NewFile(path, level)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening log: %w", err)
	}
	return logger, closeLog, nil
}

// currentConfig returns the loaded config, or defaults when none was loaded.
func currentConfig() *config.Config {
	if globalConfig == nil {
		globalConfig = config.Default("")
		globalConfig.LogFile = ""
	}
	return globalConfig
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}
