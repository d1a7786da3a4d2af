package cmd

import (
	"fmt"
	"github.com/h4z31/bouyomi/cmd/ctl"
	"github.com/h4z31/bouyomi/cmd/serve"
	"github.com/h4z31/bouyomi/cmd/util"
	"github.com/h4z31/bouyomi/rpc/common"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"
)

const (
	Version = "0.3.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "bouyomi",
		Short: "client for the BouyomiChan collaboration socket",
		Long: fmt.Sprintf(`bouyomi (v%s)

A client for the TCP collaboration interface of the BouyomiChan
text-to-speech application, with an emulated application for local testing.`, Version),
		PersistentPreRunE: setupLogging,
		SilenceUsage:      true,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of bouyomi",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("bouyomi v%s\n", Version)
		},
	}
)

func init() {
	// Run the hooks of every parent, not only the closest one
	cobra.EnableTraverseRunHooks = true

	// Add Commands
	RootCmd.AddCommand(serve.ServeCmd)
	RootCmd.AddCommand(ctl.ControlCommands)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "log-level"
	RootCmd.PersistentFlags().String(key, "info", util.WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))
}

// setupLogging applies the log level to all loggers
func setupLogging(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlag("log-level", cmd.Root().PersistentFlags().Lookup("log-level")); err != nil {
		return err
	}
	return common.InitLoggers(viper.GetString("log-level"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
