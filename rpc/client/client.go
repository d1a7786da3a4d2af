package client

import (
	"github.com/h4z31/bouyomi/rpc/common"
	"github.com/h4z31/bouyomi/rpc/serializer"
	"github.com/h4z31/bouyomi/rpc/transport"
	"github.com/h4z31/bouyomi/rpc/transport/tcp"
	"time"
)

// Client sends commands to the speech application.
// It only holds immutable connection parameters and is safe for concurrent use.
type Client struct {
	config     common.ClientConfig
	transport  transport.IRPCClientTransport
	serializer serializer.IRPCSerializer
}

// New creates a client for host and port using the TCP transport.
// Both values are kept exactly as given.
func New(host, port string) *Client {
	config := common.DefaultClientConfig()
	config.Endpoint = common.Endpoint{Host: host, Port: port}
	return NewWithConfig(config, tcp.NewTCPClientTransport(), serializer.NewBinarySerializer())
}

// Default creates a client for the application's conventional address 127.0.0.1:50001
func Default() *Client {
	return NewWithConfig(common.DefaultClientConfig(), tcp.NewTCPClientTransport(), serializer.NewBinarySerializer())
}

// NewWithConfig creates a client with full control over configuration, transport and serializer
//
// Usage:
//
//	c := client.NewWithConfig(
//		*config,
//		tcp.NewTCPClientTransport(),
//		serializer.NewBinarySerializer(),
//	)
func NewWithConfig(
	config common.ClientConfig,
	transport transport.IRPCClientTransport,
	serializer serializer.IRPCSerializer,
) *Client {
	return &Client{
		config:     config,
		transport:  transport,
		serializer: serializer,
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see IClient)
// --------------------------------------------------------------------------

func (c *Client) Endpoint() common.Endpoint {
	return c.config.Endpoint
}

func (c *Client) Speak(message string) error {
	return c.SpeakWithConfig(message, common.DefaultTalkConfig())
}

func (c *Client) SpeakWithConfig(message string, config common.TalkConfig) error {
	_, err := c.invoke(common.NewTalkRequest(message, config))
	return err
}

func (c *Client) Pause() error {
	_, err := c.invoke(common.NewCommandRequest(common.CmdPause))
	return err
}

func (c *Client) Resume() error {
	_, err := c.invoke(common.NewCommandRequest(common.CmdResume))
	return err
}

func (c *Client) Skip() error {
	_, err := c.invoke(common.NewCommandRequest(common.CmdSkip))
	return err
}

func (c *Client) Clear() error {
	_, err := c.invoke(common.NewCommandRequest(common.CmdClear))
	return err
}

func (c *Client) IsPaused() (bool, error) {
	resp, err := c.invoke(common.NewCommandRequest(common.CmdGetPause))
	if err != nil {
		return false, err
	}
	return resp.Ok, nil
}

func (c *Client) IsPlaying() (bool, error) {
	resp, err := c.invoke(common.NewCommandRequest(common.CmdGetNowPlaying))
	if err != nil {
		return false, err
	}
	return resp.Ok, nil
}

func (c *Client) RemainingTasks() (uint32, error) {
	resp, err := c.invoke(common.NewCommandRequest(common.CmdGetTaskCount))
	if err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// invoke is used by all operations to send a request.
// The frame is encoded completely before the transport opens a connection.
// For query commands it returns the decoded response, otherwise the response is nil.
func (c *Client) invoke(req *common.Request) (resp *common.Response, err error) {
	start := time.Now()
	defer func() {
		observeCall(req.Cmd, start, err)
		if err != nil {
			Logger.Warningf("%s to %s failed: %v", req.Cmd, c.config.Endpoint, err)
		}
	}()

	// Serialize the request
	frame, err := c.serializer.Serialize(*req)
	if err != nil {
		return nil, err
	}

	Logger.Debugf("Sending %s (%d bytes) to %s", req.Cmd, len(frame), c.config.Endpoint)

	// Send the frame
	data, err := c.transport.Send(c.config, req.Cmd, frame)
	if err != nil {
		return nil, err
	}

	if !req.Cmd.IsQuery() {
		return nil, nil
	}

	// Deserialize the response
	resp = &common.Response{}
	if err := c.serializer.DeserializeResponse(req.Cmd, data, resp); err != nil {
		return nil, err
	}

	return resp, nil
}
