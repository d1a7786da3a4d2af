package client

import (
	"errors"
	"github.com/VictoriaMetrics/metrics"
	"github.com/h4z31/bouyomi/rpc/common"
	"github.com/h4z31/bouyomi/rpc/serializer"
	"github.com/h4z31/bouyomi/rpc/server"
	"github.com/h4z31/bouyomi/rpc/transport/tcp"
	"io"
	"net"
	"testing"
	"time"
)

// startPeer starts an emulated peer on a random local port and returns a client for it
func startPeer(t *testing.T) (*Client, *server.RPCServer) {
	t.Helper()

	s := server.NewRPCServer(common.ServerConfig{
		Endpoint:      "127.0.0.1:0",
		TimeoutSecond: 5,
		LogLevel:      "info",
	}, serializer.NewBinarySerializer(), nil)

	if err := s.Start(); err != nil {
		t.Fatalf("Failed to start peer: %v", err)
	}
	go func() { _ = s.Serve() }()
	t.Cleanup(func() { _ = s.Close() })

	ep, err := s.Endpoint()
	if err != nil {
		t.Fatalf("Failed to get peer endpoint: %v", err)
	}

	return New(ep.Host, ep.Port), s
}

// closedEndpoint returns an endpoint nothing listens on
func closedEndpoint(t *testing.T) common.Endpoint {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	host, port, _ := net.SplitHostPort(l.Addr().String())
	_ = l.Close()

	return common.Endpoint{Host: host, Port: port}
}

// startRawPeer starts a listener that reads the opcode of every connection,
// writes answer and closes the connection
func startRawPeer(t *testing.T, answer []byte) common.Endpoint {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	t.Cleanup(func() { _ = l.Close() })

	go func() {
		for {
			conn, err := l.Accept()
			if err != nil {
				return
			}
			opcode := make([]byte, serializer.OpcodeSize)
			_, _ = io.ReadFull(conn, opcode)
			_, _ = conn.Write(answer)
			_ = conn.Close()
		}
	}()

	host, port, _ := net.SplitHostPort(l.Addr().String())
	return common.Endpoint{Host: host, Port: port}
}

// TestDefaultEndpoint tests the default constructor
func TestDefaultEndpoint(t *testing.T) {
	c := Default()

	ep := c.Endpoint()
	if ep.Host != "127.0.0.1" || ep.Port != "50001" {
		t.Errorf("Expected 127.0.0.1:50001, got %s:%s", ep.Host, ep.Port)
	}
	if ep.Address() != "127.0.0.1:50001" {
		t.Errorf("Expected address 127.0.0.1:50001, got %s", ep.Address())
	}
}

// TestNewKeepsHostAndPort tests that New stores host and port as given
func TestNewKeepsHostAndPort(t *testing.T) {
	c := New("192.168.0.10", "12345")

	ep := c.Endpoint()
	if ep.Host != "192.168.0.10" {
		t.Errorf("Expected host 192.168.0.10, got %s", ep.Host)
	}
	if ep.Port != "12345" {
		t.Errorf("Expected port 12345, got %s", ep.Port)
	}
}

// TestEndToEnd runs the speak/pause/resume/skip scenario against the emulated peer
func TestEndToEnd(t *testing.T) {
	c, s := startPeer(t)

	if err := c.Speak("こんにちは。"); err != nil {
		t.Fatalf("Speak failed: %v", err)
	}
	if err := c.Pause(); err != nil {
		t.Fatalf("Pause failed: %v", err)
	}

	paused, err := c.IsPaused()
	if err != nil {
		t.Fatalf("IsPaused failed: %v", err)
	}
	if !paused {
		t.Errorf("Expected paused after pause")
	}

	if err := c.Resume(); err != nil {
		t.Fatalf("Resume failed: %v", err)
	}

	paused, err = c.IsPaused()
	if err != nil {
		t.Fatalf("IsPaused failed: %v", err)
	}
	if paused {
		t.Errorf("Expected not paused after resume")
	}

	playing, err := c.IsPlaying()
	if err != nil {
		t.Fatalf("IsPlaying failed: %v", err)
	}
	if !playing {
		t.Errorf("Expected playing after resume")
	}

	// Two more tasks, then skip the one playing
	if err := c.SpeakWithConfig("second", common.TalkConfig{Code: 0, Voice: 2, Volume: 50, Speed: 120, Tone: 90}); err != nil {
		t.Fatalf("SpeakWithConfig failed: %v", err)
	}
	if err := c.Speak("third"); err != nil {
		t.Fatalf("Speak failed: %v", err)
	}
	if err := c.Skip(); err != nil {
		t.Fatalf("Skip failed: %v", err)
	}

	remaining, err := c.RemainingTasks()
	if err != nil {
		t.Fatalf("RemainingTasks failed: %v", err)
	}
	if remaining != 1 {
		t.Errorf("Expected 1 remaining task, got %d", remaining)
	}

	state := s.Stats()
	if state.Frames[common.CmdTalk] != 3 {
		t.Errorf("Expected 3 talk frames at the peer, got %d", state.Frames[common.CmdTalk])
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	remaining, err = c.RemainingTasks()
	if err != nil {
		t.Fatalf("RemainingTasks failed: %v", err)
	}
	if remaining != 0 {
		t.Errorf("Expected 0 remaining tasks after clear, got %d", remaining)
	}

	playing, err = c.IsPlaying()
	if err != nil {
		t.Fatalf("IsPlaying failed: %v", err)
	}
	if playing {
		t.Errorf("Expected not playing after clear")
	}
}

// TestTalkConfigReachesPeer tests that the peer decodes exactly what was sent
func TestTalkConfigReachesPeer(t *testing.T) {
	queue := server.NewQueueAdapter(0, nil)
	s := server.NewRPCServer(common.ServerConfig{Endpoint: "127.0.0.1:0", TimeoutSecond: 5}, serializer.NewBinarySerializer(), queue)
	if err := s.Start(); err != nil {
		t.Fatalf("Failed to start peer: %v", err)
	}
	go func() { _ = s.Serve() }()
	defer s.Close()

	ep, err := s.Endpoint()
	if err != nil {
		t.Fatalf("Failed to get endpoint: %v", err)
	}

	c := New(ep.Host, ep.Port)
	config := common.TalkConfig{Code: 0, Voice: 10001, Volume: 80, Speed: -1, Tone: 110}
	if err := c.SpeakWithConfig("ゆっくりしていってね", config); err != nil {
		t.Fatalf("SpeakWithConfig failed: %v", err)
	}

	// the peer handles connections in order, a query returns after the talk was applied
	if _, err := c.RemainingTasks(); err != nil {
		t.Fatalf("RemainingTasks failed: %v", err)
	}

	state := queue.State()
	if state.Current == nil {
		t.Fatalf("Expected a task to play")
	}
	if state.Current.Message != "ゆっくりしていってね" {
		t.Errorf("Expected message to arrive unchanged, got %q", state.Current.Message)
	}
	if state.Current.Config != config {
		t.Errorf("Expected config %+v, got %+v", config, state.Current.Config)
	}
}

// TestConnectionFailed tests that every operation reports ConnectionFailed when nothing listens
func TestConnectionFailed(t *testing.T) {
	ep := closedEndpoint(t)
	c := New(ep.Host, ep.Port)

	operations := map[string]func() error{
		"speak":  func() error { return c.Speak("hello") },
		"pause":  c.Pause,
		"resume": c.Resume,
		"skip":   c.Skip,
		"clear":  c.Clear,
		"paused": func() error {
			ok, err := c.IsPaused()
			if ok {
				t.Errorf("Expected no value together with an error")
			}
			return err
		},
		"playing": func() error {
			ok, err := c.IsPlaying()
			if ok {
				t.Errorf("Expected no value together with an error")
			}
			return err
		},
		"remaining": func() error {
			n, err := c.RemainingTasks()
			if n != 0 {
				t.Errorf("Expected no value together with an error")
			}
			return err
		},
	}

	for name, op := range operations {
		t.Run(name, func(t *testing.T) {
			err := op()
			if !errors.Is(err, common.ErrConnectionFailed) {
				t.Errorf("Expected ConnectionFailed, got %v", err)
			}
			if common.KindOf(err) != common.ErrKindConnectionFailed {
				t.Errorf("Expected kind ConnectionFailed, got %s", common.KindOf(err))
			}
		})
	}
}

// TestMalformedResponse tests that short answers are reported as MalformedResponse
func TestMalformedResponse(t *testing.T) {
	testCases := []struct {
		name   string
		answer []byte
		call   func(c *Client) error
	}{
		{
			name:   "paused empty",
			answer: []byte{},
			call: func(c *Client) error {
				_, err := c.IsPaused()
				return err
			},
		},
		{
			name:   "playing empty",
			answer: []byte{},
			call: func(c *Client) error {
				_, err := c.IsPlaying()
				return err
			},
		},
		{
			name:   "remaining 3 bytes",
			answer: []byte{0x02, 0x00, 0x00},
			call: func(c *Client) error {
				_, err := c.RemainingTasks()
				return err
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ep := startRawPeer(t, tc.answer)
			err := tc.call(New(ep.Host, ep.Port))
			if !errors.Is(err, common.ErrMalformedResponse) {
				t.Errorf("Expected MalformedResponse, got %v", err)
			}
		})
	}
}

// TestRawAnswers tests decoding of answers from a peer that ignores the request
func TestRawAnswers(t *testing.T) {
	ep := startRawPeer(t, []byte{0x02, 0x00, 0x00, 0x00})
	c := New(ep.Host, ep.Port)

	n, err := c.RemainingTasks()
	if err != nil {
		t.Fatalf("RemainingTasks failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2, got %d", n)
	}

	// Only the first byte counts for bool queries, 2 is not 1
	ok, err := c.IsPaused()
	if err != nil {
		t.Fatalf("IsPaused failed: %v", err)
	}
	if ok {
		t.Errorf("Expected false for first byte 0x02")
	}
}

// TestTimeout tests that a configured timeout turns a silent peer into a TransportError
func TestTimeout(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	defer l.Close()

	// accept, never answer, keep the connection open
	release := make(chan struct{})
	defer close(release)
	go func() {
		conn, err := l.Accept()
		if err != nil {
			return
		}
		<-release
		_ = conn.Close()
	}()

	host, port, _ := net.SplitHostPort(l.Addr().String())
	config := common.DefaultClientConfig()
	config.Endpoint = common.Endpoint{Host: host, Port: port}
	config.TimeoutSecond = 1

	c := NewWithConfig(config, tcp.NewTCPClientTransport(), serializer.NewBinarySerializer())

	start := time.Now()
	_, err = c.IsPlaying()
	if !errors.Is(err, common.ErrTransport) {
		t.Errorf("Expected TransportError, got %v", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Errorf("Timeout took too long: %s", time.Since(start))
	}
}

// TestInvalidRequestIsNotSent tests that encoding errors surface before any connection is made
func TestInvalidRequestIsNotSent(t *testing.T) {
	ep := closedEndpoint(t)
	c := New(ep.Host, ep.Port)

	_, err := c.invoke(&common.Request{Cmd: 0x0777})
	if !errors.Is(err, common.ErrInvalidRequest) {
		t.Errorf("Expected InvalidRequest (not ConnectionFailed), got %v", err)
	}
}

// TestMetrics tests that calls are counted
func TestMetrics(t *testing.T) {
	c, _ := startPeer(t)

	requests := metrics.GetOrCreateCounter(requestsMetric(common.CmdClear))
	before := requests.Get()

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	if got := requests.Get() - before; got != 2 {
		t.Errorf("Expected 2 counted clear requests, got %d", got)
	}

	ep := closedEndpoint(t)
	errorsCounter := metrics.GetOrCreateCounter(errorsMetric(common.CmdSkip, common.ErrKindConnectionFailed))
	before = errorsCounter.Get()

	_ = New(ep.Host, ep.Port).Skip()

	if got := errorsCounter.Get() - before; got != 1 {
		t.Errorf("Expected 1 counted connection error, got %d", got)
	}
}
