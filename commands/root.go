package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rivertam/pants-off-podrick/internal/core/constants"
	"github.com/rivertam/pants-off-podrick/internal/util"
)

var (
	// Logging related
	debug bool

	// Output related
	timezone string

	rootCmd = &cobra.Command{
		Use:   "pants-off-podrick",
		Short: "Check-in compliance scoring for the pants-off channel",
		Long: `pants-off-podrick tracks daily check-ins posted to a monitored channel and
scores each user's monthly compliance: morning and evening submissions,
properly formatted messages, missed days, timing infractions, and
alternate-time check-ins.

Examples:
  pants-off-podrick serve                          # Run the Discord bot
  pants-off-podrick score --input history.jsonl    # Score an exported history file
  pants-off-podrick score --input exports/ -o json # Score a directory of exports as JSON`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

const defaultLogFile = "~/.pants-off-podrick/logs/app.log"

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", constants.DefaultTimezone,
		"Reference timezone for classifying check-ins (e.g., America/New_York, UTC)")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logLevel := "info"
		if debug {
			logLevel = "debug"
		}
		logFile := expandPath(defaultLogFile)
		if err := ensureDir(filepath.Dir(logFile)); err != nil {
			logFile = ""
		}
		util.InitLogger(logLevel, logFile, debug)
	}
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
