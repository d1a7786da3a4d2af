package server

import (
	"errors"
	"fmt"
	"github.com/h4z31/bouyomi/rpc/common"
	"github.com/h4z31/bouyomi/rpc/serializer"
	"github.com/lni/dragonboat/v4/logger"
	"io"
	"net"
	"sync"
	"time"
)

var Logger = logger.GetLogger(common.LoggerServer)

// RPCServer is an in-process stand-in for the speech application.
// It accepts one request per connection, answers queries and closes the connection.
// Connections are handled sequentially, a client that never sends is cut off by TimeoutSecond.
type RPCServer struct {
	config     common.ServerConfig
	serializer serializer.IRPCSerializer
	adapter    IRPCServerAdapter
	stats      *serverStats

	mu       sync.Mutex
	listener net.Listener
	closed   bool
}

// NewRPCServer creates a new emulated peer
// It takes a config, serializer and the adapter holding the state as parameters.
// A nil adapter creates a QueueAdapter using config.TaskDuration().
//
// Usage:
//
//	s := server.NewRPCServer(
//		*config,
//		serializer.NewBinarySerializer(),
//		nil,
//	)
//
//	if err := s.Listen(); err != nil {
//		panic(err)
//	}
func NewRPCServer(
	config common.ServerConfig,
	serializer serializer.IRPCSerializer,
	adapter IRPCServerAdapter,
) *RPCServer {
	if adapter == nil {
		adapter = NewQueueAdapter(config.TaskDuration(), nil)
	}

	Logger.Infof("Created emulated peer")
	Logger.Infof(config.String())

	return &RPCServer{
		config:     config,
		serializer: serializer,
		adapter:    adapter,
		stats:      newServerStats(),
	}
}

// Start binds the listener without accepting connections yet
func (s *RPCServer) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("server is closed")
	}
	if s.listener != nil {
		return fmt.Errorf("server already started on %s", s.listener.Addr())
	}

	listener, err := net.Listen("tcp", s.config.Endpoint)
	if err != nil {
		return fmt.Errorf("failed to create listener: %v", err)
	}
	s.listener = listener

	Logger.Infof("Listening on %s", listener.Addr())
	return nil
}

// Serve accepts connections until Close is called. Start must be called first.
func (s *RPCServer) Serve() error {
	s.mu.Lock()
	listener := s.listener
	s.mu.Unlock()

	if listener == nil {
		return fmt.Errorf("server not started")
	}

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				Logger.Infof("Stopped accepting connections on %s", listener.Addr())
				return nil
			}
			Logger.Errorf("Accept error: %v", err)
			continue
		}

		// Connections are handled one at a time in accept order, so fire-and-forget
		// commands are applied before any later query sees the queue
		s.handleConnection(conn)
	}
}

// Listen starts the server and blocks until Close is called
func (s *RPCServer) Listen() error {
	if err := s.Start(); err != nil {
		return err
	}
	return s.Serve()
}

// Close stops accepting connections. Connections in progress are finished.
func (s *RPCServer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.stats.stop()

	if s.listener == nil {
		return nil
	}
	return s.listener.Close()
}

// Addr returns the bound address, or nil before Start
func (s *RPCServer) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Endpoint returns the bound address as a common.Endpoint, useful to point a client at the server
func (s *RPCServer) Endpoint() (common.Endpoint, error) {
	addr := s.Addr()
	if addr == nil {
		return common.Endpoint{}, fmt.Errorf("server not started")
	}
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return common.Endpoint{}, err
	}
	return common.Endpoint{Host: host, Port: port}, nil
}

// Stats returns a snapshot of the traffic seen so far
func (s *RPCServer) Stats() Stats {
	return s.stats.snapshot()
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// handleConnection handles the single request of one connection
func (s *RPCServer) handleConnection(conn net.Conn) {
	defer conn.Close()

	start := time.Now()
	s.stats.connections.Inc()

	if s.config.TimeoutSecond > 0 {
		timeout := time.Duration(s.config.TimeoutSecond) * time.Second
		if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
			Logger.Errorf("Failed to set deadline: %v", err)
			return
		}
	}

	// Read the frame
	frame, err := readFrame(conn)
	if err != nil {
		if errors.Is(err, io.EOF) {
			Logger.Debugf("Connection from %s closed without request", conn.RemoteAddr())
			return
		}
		s.stats.malformed.Inc()
		Logger.Errorf("Error reading request from %s: %v", conn.RemoteAddr(), err)
		return
	}

	// Decode the request
	var req common.Request
	if err := s.serializer.Deserialize(frame, &req); err != nil {
		s.stats.malformed.Inc()
		Logger.Errorf("Failed to deserialize request from %s: %v", conn.RemoteAddr(), err)
		return
	}

	// Let the adapter handle the request
	resp := s.adapter.Handle(&req)
	s.stats.observe(req.Cmd, start)
	Logger.Debugf("Handled %s from %s in %s", req.Cmd, conn.RemoteAddr(), time.Since(start))

	if resp == nil {
		return
	}

	// Write the answer, the client reads until we close
	data, err := s.serializer.SerializeResponse(*resp)
	if err != nil {
		Logger.Errorf("Failed to serialize response: %v", err)
		return
	}
	if _, err := conn.Write(data); err != nil {
		Logger.Errorf("Failed to write response: %v", err)
	}
}
