package serve

import (
	cmdUtil "github.com/h4z31/bouyomi/cmd/util"
	"github.com/h4z31/bouyomi/rpc/common"
	"github.com/h4z31/bouyomi/rpc/serializer"
	"github.com/h4z31/bouyomi/rpc/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"
	"os/signal"
	"syscall"
)

var (
	serveCmdConfig = &common.ServerConfig{}
	ServeCmd       = &cobra.Command{
		Use:     "serve",
		Short:   "Start an emulated BouyomiChan application",
		Long:    `Start a stand-in for BouyomiChan that speaks the collaboration protocol and keeps a task queue without reading anything aloud. The configuration can be set via command line flags or environment variables. The format of the environment variables is BOUYOMI_<flag> (e.g. BOUYOMI_TASK_DURATION=2000)`,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(cmdUtil.InitConfig)

	// add flags
	key := "endpoint"
	ServeCmd.PersistentFlags().String(key, common.DefaultEndpoint().Address(), cmdUtil.WrapString("The address on which the emulated application will listen"))

	key = "task-duration"
	ServeCmd.PersistentFlags().Int64(key, 0, cmdUtil.WrapString("How long one message plays (in milliseconds). 0 plays every message until it is skipped or cleared"))

	key = "timeout"
	ServeCmd.PersistentFlags().Int64(key, 5, cmdUtil.WrapString("Timeout in seconds for reading a request and writing the answer (0 disables it)"))
}

// processConfig reads the configuration from the command line flags and environment variables and converts them to the server configuration
func processConfig(cmd *cobra.Command, _ []string) error {
	// bind the flags to viper
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	serveCmdConfig.Endpoint = viper.GetString("endpoint")
	serveCmdConfig.TaskDurationMillis = viper.GetInt64("task-duration")
	serveCmdConfig.TimeoutSecond = viper.GetInt64("timeout")
	serveCmdConfig.LogLevel = viper.GetString("log-level")

	return nil
}

// run starts the emulated application and stops it on SIGINT or SIGTERM
func run(_ *cobra.Command, _ []string) error {
	serv := server.NewRPCServer(
		*serveCmdConfig,
		serializer.NewBinarySerializer(),
		nil,
	)

	if err := serv.Start(); err != nil {
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		_ = serv.Close()
	}()

	err := serv.Serve()

	stats := serv.Stats()
	server.Logger.Infof("Served %d connections (%d malformed), mean handle time %s", stats.Connections, stats.Malformed, stats.MeanHandle)
	return err
}
