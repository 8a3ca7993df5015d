// Package cmd implements the tgt CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/target-inventory/internal/api/client"
	"github.com/donaldgifford/target-inventory/internal/render"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "tgt",
		Short: "CLI client for the target-inventory server",
		Long: "tgt is a command-line client for a running target-inventory server.\n" +
			"It looks up stores, searches products, checks availability and\n" +
			"drives the stock watches from the terminal.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.tgt.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(
		locationsCmd(),
		storesCmd(),
		searchCmd(),
		availabilityCmd(),
		nearbyCmd(),
		watchesCmd(),
		quotaCmd(),
	)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tgt")
	}

	viper.SetEnvPrefix("TGT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}

// emit prints v as JSON or hands it to the table printer.
func emit[T any](v T, table func(T) error) error {
	if jsonOutput() {
		return render.JSON(os.Stdout, v)
	}
	return table(v)
}
