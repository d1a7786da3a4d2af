package transport

import (
	"github.com/h4z31/bouyomi/rpc/common"
)

// --------------------------------------------------------------------------
// Client Transport
// --------------------------------------------------------------------------

// IRPCClientTransport is the interface for the client transport.
// Every Send is a self-contained unit of work on its own connection.
type IRPCClientTransport interface {
	// Send opens a connection to config.Endpoint, writes the complete frame and closes the connection again.
	// For query commands (cmd.IsQuery()) it reads the answer until the peer closes the stream
	// or cmd.ResponseSize() bytes have arrived and returns it, for all other commands resp is nil.
	// Errors are of kind ConnectionFailed or TransportError.
	Send(config common.ClientConfig, cmd common.Command, frame []byte) (resp []byte, err error)
}
