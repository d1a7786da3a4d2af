package util

import (
	"github.com/h4z31/bouyomi/rpc/common"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"strings"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50

	// EnvPrefix is the prefix of all environment variables read by the cli
	EnvPrefix = "bouyomi"
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupClientFlags adds the connection flags of the client to a command
func SetupClientFlags(cmd *cobra.Command) {
	key := "host"
	cmd.PersistentFlags().String(key, common.DefaultHost, WrapString("Host of the BouyomiChan application"))

	key = "port"
	cmd.PersistentFlags().String(key, common.DefaultPort, WrapString("Port of the collaboration socket of the BouyomiChan application"))

	key = "timeout"
	cmd.PersistentFlags().Int(key, 0, WrapString("The timeout in seconds of a single call (0 keeps the OS defaults)"))

	key = "transport-write-buffer"
	cmd.PersistentFlags().Int(key, 0, WrapString("The size of the socket write buffer (in KB, 0 keeps the OS default)"))

	key = "transport-read-buffer"
	cmd.PersistentFlags().Int(key, 0, WrapString("The size of the socket read buffer (in KB, 0 keeps the OS default)"))

	key = "transport-tcp-nodelay"
	cmd.PersistentFlags().Bool(key, true, WrapString("Whether to enable TCP_NODELAY"))

	key = "transport-tcp-keepalive"
	cmd.PersistentFlags().Int(key, 0, WrapString("The keepalive interval (in seconds, 0 disables keepalive)"))

	key = "transport-tcp-linger"
	cmd.PersistentFlags().Int(key, -1, WrapString("The linger time (in seconds, negative keeps the OS default)"))
}

// InitConfig loads the env files and lets viper read BOUYOMI_* environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetClientConfig reads client configuration from viper
func GetClientConfig() *common.ClientConfig {
	conf := &common.ClientConfig{
		Endpoint: common.Endpoint{
			Host: viper.GetString("host"),
			Port: viper.GetString("port"),
		},
		TimeoutSecond: viper.GetInt("timeout"),
		Transport: common.ClientTransportConfig{
			SocketConf: common.SocketConf{
				WriteBufferSize: viper.GetInt("transport-write-buffer") * 1024,
				ReadBufferSize:  viper.GetInt("transport-read-buffer") * 1024,
			},
			TCPConf: common.TCPConf{
				TCPKeepAliveSec: viper.GetInt("transport-tcp-keepalive"),
				TCPLingerSec:    viper.GetInt("transport-tcp-linger"),
				TCPNoDelay:      viper.GetBool("transport-tcp-nodelay"),
			},
		},
	}

	return conf
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
