package ctl

import (
	"github.com/h4z31/bouyomi/cmd/util"
	"github.com/h4z31/bouyomi/rpc/client"
	"github.com/h4z31/bouyomi/rpc/serializer"
	"github.com/h4z31/bouyomi/rpc/transport/tcp"
	"github.com/spf13/cobra"
)

var (
	bouyomi client.IClient

	// ControlCommands represents the command group talking to the application
	ControlCommands = &cobra.Command{
		Use:               "ctl",
		Short:             "Control a running BouyomiChan application",
		Long:              `Send commands to the collaboration socket of BouyomiChan. The connection can be set via command line flags or environment variables. The format of the environment variables is BOUYOMI_<flag> (e.g. BOUYOMI_HOST=192.168.0.10)`,
		PersistentPreRunE: setupClient,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add connection flags to the ctl command
	util.SetupClientFlags(ControlCommands)

	// Add subcommands
	ControlCommands.AddCommand(sayCmd)
	ControlCommands.AddCommand(pauseCmd)
	ControlCommands.AddCommand(resumeCmd)
	ControlCommands.AddCommand(skipCmd)
	ControlCommands.AddCommand(clearCmd)
	ControlCommands.AddCommand(statusCmd)
}

// setupClient initializes the client from the bound configuration
func setupClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	config := util.GetClientConfig()

	bouyomi = client.NewWithConfig(
		*config,
		tcp.NewTCPClientTransport(),
		serializer.NewBinarySerializer(),
	)

	return nil
}
