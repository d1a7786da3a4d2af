package common

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Socket configuration structs
// --------------------------------------------------------------------------

// SocketConf holds buffer settings applied to every client socket
type SocketConf struct {
	WriteBufferSize int // in bytes, 0 keeps the OS default
	ReadBufferSize  int // in bytes, 0 keeps the OS default
}

// TCPConf holds TCP specific socket options
type TCPConf struct {
	TCPNoDelay      bool
	TCPKeepAliveSec int // 0 disables keep-alive
	TCPLingerSec    int // negative keeps the OS default
}

// ClientTransportConfig groups all transport level options of the client
type ClientTransportConfig struct {
	SocketConf
	TCPConf
}

// --------------------------------------------------------------------------
// Client configuration struct
// --------------------------------------------------------------------------

// ClientConfig holds everything a client needs to reach the application.
type ClientConfig struct {
	Endpoint Endpoint

	// TimeoutSecond bounds dialing, writing and reading of a single call.
	// 0 leaves the transport's default behavior in place.
	TimeoutSecond int

	Transport ClientTransportConfig
}

// DefaultClientConfig returns the configuration used by client.Default()
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Endpoint:      DefaultEndpoint(),
		TimeoutSecond: 0,
		Transport: ClientTransportConfig{
			TCPConf: TCPConf{
				TCPNoDelay:   true,
				TCPLingerSec: -1,
			},
		},
	}
}

// Timeout returns TimeoutSecond as a duration
func (c *ClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecond) * time.Second
}

// String returns a formatted string representation of the client configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	addSection, addField := formatHelpers(&sb)

	// General Client Settings
	addSection("Client Configuration")
	addField("Endpoint", c.Endpoint.Address())
	addField("Timeout", formatTimeout(int64(c.TimeoutSecond)))

	// Transport
	addSection("Transport")
	addField("TCP No Delay", strconv.FormatBool(c.Transport.TCPNoDelay))
	addField("TCP Keep Alive", fmt.Sprintf("%d sec", c.Transport.TCPKeepAliveSec))
	addField("TCP Linger", fmt.Sprintf("%d sec", c.Transport.TCPLingerSec))
	addField("Write Buffer", fmt.Sprintf("%d bytes", c.Transport.WriteBufferSize))
	addField("Read Buffer", fmt.Sprintf("%d bytes", c.Transport.ReadBufferSize))

	return sb.String()
}

// --------------------------------------------------------------------------
// Emulated peer configuration struct
// --------------------------------------------------------------------------

// ServerConfig configures the emulated application started by `bouyomi serve` and the tests.
type ServerConfig struct {
	// Endpoint is the address to listen on (e.g. 127.0.0.1:50001)
	Endpoint string

	// TimeoutSecond bounds reading a request and writing a response, 0 disables it
	TimeoutSecond int64

	// TaskDurationMillis is how long one talk task "plays".
	// 0 means a task plays until it is skipped or cleared.
	TaskDurationMillis int64

	// Logging configuration
	LogLevel string
}

// TaskDuration returns TaskDurationMillis as a duration
func (c *ServerConfig) TaskDuration() time.Duration {
	return time.Duration(c.TaskDurationMillis) * time.Millisecond
}

// String returns a formatted string representation of the configuration
func (c *ServerConfig) String() string {
	var sb strings.Builder

	addSection, addField := formatHelpers(&sb)

	addSection("Emulated Peer")
	addField("Endpoint", c.Endpoint)
	addField("Timeout", formatTimeout(c.TimeoutSecond))
	if c.TaskDurationMillis > 0 {
		addField("Task Duration", fmt.Sprintf("%d ms", c.TaskDurationMillis))
	} else {
		addField("Task Duration", "until skipped")
	}

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// formatHelpers returns the section and field writers shared by the String() methods
func formatHelpers(sb *strings.Builder) (func(title string), func(name, value string)) {
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	return addSection, addField
}

func formatTimeout(sec int64) string {
	if sec <= 0 {
		return "none"
	}
	return fmt.Sprintf("%d sec", sec)
}
