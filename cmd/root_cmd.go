// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is the cassink version
var Version = "development"

func Prepare() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "cassink",
		SilenceUsage: true,
		Version:      Version,
	}

	viper.SetEnvPrefix("CASSINK")
	viper.AutomaticEnv()

	// Flag definition

	// root cmd
	rootCmd.PersistentFlags().StringP("config", "c", "", ".properties connector settings file to use with cassink")
	rootCmd.PersistentFlags().String("log-level", "debug", "log level for the application. One of trace, debug, info, warn, error, fatal, panic")

	// validate cmd
	validateCmd.Flags().StringSlice("topics", nil, "List of topics to validate. Defaults to the 'topics' setting in the settings file")
	validateCmd.Flags().Bool("json", false, "Output the resolved table configurations in JSON format")

	// Flag binding for root cmd
	rootFlagBinding(rootCmd)

	// register subcommands
	rootCmd.AddCommand(validateCmd)
	return rootCmd
}

// Execute executes the root command.
func Execute() error {
	cmd := Prepare()
	return cmd.Execute()
}

func rootFlagBinding(cmd *cobra.Command) {
	// ignore the errors, the flags are defined above
	_ = viper.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))
}
