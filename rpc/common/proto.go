package common

import (
	"fmt"
	"net"
)

// --------------------------------------------------------------------------
// Endpoint
// --------------------------------------------------------------------------

const (
	DefaultHost = "127.0.0.1"
	DefaultPort = "50001"
)

// Endpoint identifies the socket address of the speech application.
// Host and Port are kept exactly as given by the caller.
type Endpoint struct {
	Host string
	Port string
}

// DefaultEndpoint returns the conventional local listening address of the application
func DefaultEndpoint() Endpoint {
	return Endpoint{Host: DefaultHost, Port: DefaultPort}
}

// Address returns the dialable "host:port" form of the endpoint
func (e Endpoint) Address() string {
	return net.JoinHostPort(e.Host, e.Port)
}

func (e Endpoint) String() string {
	return e.Address()
}

// --------------------------------------------------------------------------
// Talk Configuration
// --------------------------------------------------------------------------

// TalkConfig holds the voice parameters of a single talk request.
// The application treats -1 (and the defaults below) as "use the configured default",
// range validation is done by the application, not by this client.
type TalkConfig struct {
	Code   uint8 // character code of the message (0 = UTF-8)
	Voice  int16
	Volume int16
	Speed  int16
	Tone   int16
}

// DefaultTalkConfig returns a TalkConfig where every field is left to the application
func DefaultTalkConfig() TalkConfig {
	return TalkConfig{
		Code:   0,
		Voice:  1,
		Volume: -1,
		Speed:  -1,
		Tone:   -1,
	}
}

// --------------------------------------------------------------------------
// Request / Response Structures
// --------------------------------------------------------------------------

// Request is a single command sent to the application.
// Message and Config are only used for CmdTalk.
type Request struct {
	Cmd     Command
	Message string
	Config  TalkConfig
}

// Response is the decoded answer to a query command.
// Ok is used for CmdGetPause and CmdGetNowPlaying, Count for CmdGetTaskCount.
type Response struct {
	Cmd   Command
	Ok    bool
	Count uint32
}

// NewTalkRequest creates a new talk request
func NewTalkRequest(message string, config TalkConfig) *Request {
	return &Request{
		Cmd:     CmdTalk,
		Message: message,
		Config:  config,
	}
}

// NewCommandRequest creates a request for a command without payload
func NewCommandRequest(cmd Command) *Request {
	return &Request{Cmd: cmd}
}

// NewBoolResponse creates a response for CmdGetPause or CmdGetNowPlaying
func NewBoolResponse(cmd Command, ok bool) *Response {
	return &Response{Cmd: cmd, Ok: ok}
}

// NewCountResponse creates a response for CmdGetTaskCount
func NewCountResponse(count uint32) *Response {
	return &Response{Cmd: CmdGetTaskCount, Count: count}
}

// --------------------------------------------------------------------------
// Command Type
// --------------------------------------------------------------------------

// Command is the opcode that starts every frame. It is always sent as a little-endian int16.
type Command int16

const (
	CmdTalk          Command = 0x0001
	CmdPause         Command = 0x0010
	CmdResume        Command = 0x0020
	CmdSkip          Command = 0x0030
	CmdClear         Command = 0x0040
	CmdGetPause      Command = 0x0110
	CmdGetNowPlaying Command = 0x0120
	CmdGetTaskCount  Command = 0x0130
)

// Commands lists every known command in opcode order
var Commands = []Command{
	CmdTalk,
	CmdPause,
	CmdResume,
	CmdSkip,
	CmdClear,
	CmdGetPause,
	CmdGetNowPlaying,
	CmdGetTaskCount,
}

// String returns the string representation of the Command
func (c Command) String() string {
	switch c {
	case CmdTalk:
		return "talk"
	case CmdPause:
		return "pause"
	case CmdResume:
		return "resume"
	case CmdSkip:
		return "skip"
	case CmdClear:
		return "clear"
	case CmdGetPause:
		return "get_pause"
	case CmdGetNowPlaying:
		return "get_now_playing"
	case CmdGetTaskCount:
		return "get_task_count"
	default:
		return fmt.Sprintf("unknown(0x%04x)", uint16(c))
	}
}

// IsValid reports whether c is one of the known commands
func (c Command) IsValid() bool {
	for _, known := range Commands {
		if c == known {
			return true
		}
	}
	return false
}

// IsQuery reports whether the application answers the command before closing the connection
func (c Command) IsQuery() bool {
	return c.ResponseSize() > 0
}

// ResponseSize returns the number of bytes the application answers with (0 for no answer)
func (c Command) ResponseSize() int {
	switch c {
	case CmdGetPause, CmdGetNowPlaying:
		return 1
	case CmdGetTaskCount:
		return 4
	default:
		return 0
	}
}
