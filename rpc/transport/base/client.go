package base

import (
	"github.com/h4z31/bouyomi/rpc/common"
	"github.com/h4z31/bouyomi/rpc/transport"
	"github.com/lni/dragonboat/v4/logger"
	"net"
	"time"
)

var Logger = logger.GetLogger(common.LoggerTransport)

// -----------------------------------------------------------
// Interface Definitions for dependency injection
// -----------------------------------------------------------

// IClientConnector defines the interface for transport-specific connection operations
type IClientConnector interface {
	// Connect establishes a single connection to the endpoint
	// A timeout of 0 means no timeout beyond the operating system's default
	Connect(endpoint string, timeout time.Duration) (net.Conn, error)

	// GetName returns the name of the transport type (e.g., "tcp")
	GetName() string

	// UpgradeConnection applies protocol-specific settings to an established connection
	UpgradeConnection(conn net.Conn, config common.ClientConfig) error
}

// -----------------------------------------------------------
// Helper Types
// -----------------------------------------------------------

// clientTransport implements the connection lifecycle of a single call
// independent of the specific transport medium. It holds no connection state,
// so it is safe for concurrent use.
type clientTransport struct {
	connector IClientConnector
}

// -----------------------------------------------------------
// Transport Factory Method
// -----------------------------------------------------------

// NewBaseClientTransport creates a new base client transport with the specified connector
func NewBaseClientTransport(connector IClientConnector) transport.IRPCClientTransport {
	return &clientTransport{
		connector: connector,
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IRPCClientTransport)
// --------------------------------------------------------------------------

func (t *clientTransport) Send(config common.ClientConfig, cmd common.Command, frame []byte) (resp []byte, err error) {
	endpoint := config.Endpoint.Address()
	timeout := config.Timeout()

	// Connect
	conn, err := t.connector.Connect(endpoint, timeout)
	if err != nil {
		return nil, common.WrapError(common.ErrKindConnectionFailed, cmd, err, "failed to connect to %s", endpoint)
	}

	// The connection never outlives the call
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			Logger.Debugf("Failed to close connection to %s: %v", endpoint, cerr)
		}
	}()

	// Upgrade the connection with protocol-specific settings
	if err := t.connector.UpgradeConnection(conn, config); err != nil {
		return nil, common.WrapError(common.ErrKindConnectionFailed, cmd, err, "failed to upgrade connection to %s", endpoint)
	}

	Logger.Debugf("Connected to %s using %s transport for %s", endpoint, t.connector.GetName(), cmd)

	// Set deadline for the whole exchange
	if timeout > 0 {
		if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
			return nil, common.WrapError(common.ErrKindTransportError, cmd, err, "failed to set deadline")
		}
	}

	// Write the frame
	if err := writeFrame(conn, frame); err != nil {
		return nil, common.WrapError(common.ErrKindTransportError, cmd, err, "failed to write %d byte frame to %s", len(frame), endpoint)
	}

	// Fire-and-forget commands are done
	if !cmd.IsQuery() {
		return nil, nil
	}

	// Read the answer
	data, err := readResponse(conn, cmd.ResponseSize())
	if err != nil {
		return nil, common.WrapError(common.ErrKindTransportError, cmd, err, "failed to read response from %s", endpoint)
	}

	return data, nil
}
