// Package cmd contains all CLI commands for the srsexport tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mirelk/srsexport/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "srsexport",
	Short: "Export vocabulary word lists from an SRS profile store",
	Long: `srsexport reads the compressed SRS database image stored inside a
vocabulary app's local profile store and exports the word list for one
language as five CSV files bundled into a zip archive:

  unknown.csv, ignored.csv, learning.csv, known.csv, tracked.csv

The first four group words by their learner-assigned status; tracked.csv
collects every tracked word regardless of status.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/srsexport)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".config", "srsexport")
		viper.Set("config_dir", configDir)
	}

	viper.SetEnvPrefix("SRSEXPORT")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadUserConfig loads config.yaml from the config directory. A missing
// file yields an empty config.
func loadUserConfig() *config.Config {
	cfg, err := config.Load(filepath.Join(getConfigDir(), "config.yaml"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning: ignoring config file:", err)
		return &config.Config{}
	}
	return cfg
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
