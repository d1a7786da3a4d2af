package server

import (
	"github.com/h4z31/bouyomi/rpc/common"
	"github.com/puzpuzpuz/xsync/v3"
	gometrics "github.com/rcrowley/go-metrics"
	"time"
)

// Stats is a snapshot of the traffic the emulated peer has seen
type Stats struct {
	Connections int64                    // accepted connections
	Malformed   int64                    // connections closed because of an undecodable frame
	Frames      map[common.Command]int64 // handled frames per command
	FrameRate1  float64                  // handled frames per second, one-minute moving average
	MeanHandle  time.Duration            // mean time from accept to handled frame
}

// serverStats collects the counters behind Stats
type serverStats struct {
	perCmd      *xsync.MapOf[common.Command, *xsync.Counter]
	connections *xsync.Counter
	malformed   *xsync.Counter
	registry    gometrics.Registry
	frames      gometrics.Meter
	handle      gometrics.Timer
}

func newServerStats() *serverStats {
	registry := gometrics.NewRegistry()
	return &serverStats{
		perCmd:      xsync.NewMapOf[common.Command, *xsync.Counter](),
		connections: xsync.NewCounter(),
		malformed:   xsync.NewCounter(),
		registry:    registry,
		frames:      gometrics.GetOrRegisterMeter("frames", registry),
		handle:      gometrics.GetOrRegisterTimer("handle", registry),
	}
}

// observe records one handled frame
func (s *serverStats) observe(cmd common.Command, start time.Time) {
	counter, _ := s.perCmd.LoadOrCompute(cmd, func() *xsync.Counter {
		return xsync.NewCounter()
	})
	counter.Inc()
	s.frames.Mark(1)
	s.handle.UpdateSince(start)
}

func (s *serverStats) snapshot() Stats {
	frames := make(map[common.Command]int64)
	s.perCmd.Range(func(cmd common.Command, counter *xsync.Counter) bool {
		frames[cmd] = counter.Value()
		return true
	})

	return Stats{
		Connections: s.connections.Value(),
		Malformed:   s.malformed.Value(),
		Frames:      frames,
		FrameRate1:  s.frames.Snapshot().Rate1(),
		MeanHandle:  time.Duration(s.handle.Snapshot().Mean()),
	}
}

// stop releases the meter's background ticker
func (s *serverStats) stop() {
	s.registry.UnregisterAll()
}
