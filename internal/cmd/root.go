// Package cmd wires the levelsnap CLI: flag parsing, configuration loading,
// and the commands that drive the capture pipeline.
package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/levelsnap/levelsnap/internal/config"
	"github.com/levelsnap/levelsnap/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "levelsnap",
	Short: "Capture regions of 2D level scenes as cropped PNGs",
	Long: `Levelsnap frames a rectangular region of a 2D level scene with an
orthographic camera, renders it to an off-screen texture, masks everything
outside the selection to transparent, and exports the result as one PNG,
or one PNG per render layer.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/levelsnap/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().Bool("log-json", false, "emit JSON log entries")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.json", rootCmd.PersistentFlags().Lookup("log-json"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/levelsnap")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("LEVELSNAP")
	// Replace dots with underscores for nested keys in env vars
	// e.g., LEVELSNAP_CAPTURE_PIXELS_PER_UNIT for capture.pixels_per_unit
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// newLogger builds the logger the commands share, honoring the logging
// section of the effective configuration.
func newLogger(cfg *config.Config) *logging.Logger {
	level := cfg.Logging.Level
	if level == "" {
		level = logging.LevelInfo
	}
	return logging.New(os.Stderr, level, cfg.Logging.JSON)
}
