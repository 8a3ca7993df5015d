// Package cmd implements the CLI commands for target-inventory.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "target-inventory",
	Short: "Query Target product availability",
	Long: "target-inventory queries the Target retail API for locations, product search,\n" +
		"online availability and per-store inventory. It can also serve the same\n" +
		"queries over HTTP and watch products until a store has them in stock.",
	SilenceUsage: true,
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().String("log-level", "", "override logging.level from the config file")

	cobra.CheckErr(viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level")))

	rootCmd.AddCommand(
		locationsCmd(),
		storesCmd(),
		searchCmd(),
		availabilityCmd(),
		nearbyCmd(),
		serveCmd(),
		watchCmd(),
		versionCmd(),
	)
}

// initConfig lets TGT_CONFIG, TGT_OUTPUT and TGT_LOG_LEVEL stand in for
// the persistent flags.
func initConfig() {
	viper.SetEnvPrefix("TGT")
	viper.AutomaticEnv()
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
