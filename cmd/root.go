// Package cmd holds the csforge command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/csforge/csforge/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	debugFlagName   = "debug"
	logFileFlagName = "log-file"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csforge",
		Short: "csforge builds C# source from Go types and YAML type descriptions",
		Long:  "csforge builds C# source from the exported types of Go packages and from YAML type descriptions",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := readConfig(); err != nil {
				return err
			}
			return configureLogger()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			logger.Sync()
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().Bool(debugFlagName, false, "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(debugFlagName), logDebugKey)
	cmd.PersistentFlags().String(logFileFlagName, "", "also write logs to this file, rotated")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.AddCommand(newGenerateCmd(), newRenderCmd(), newVersionCmd())
	return cmd
}

// bindFlagToConfig wires a flag to a viper key so config and environment
// values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}
	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
