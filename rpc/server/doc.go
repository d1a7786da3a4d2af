// Package server implements an emulated BouyomiChan peer. It speaks the same
// collaboration protocol as the real application and keeps a task queue, so the
// client can be exercised end to end without the desktop application. It is used
// by the tests and by `bouyomi serve`.
//
// The package focuses on:
//   - One request per connection, connections handled in accept order
//   - A deterministic queue model that playback time can be injected into
//   - Traffic statistics for inspection in tests and logs
//
// Key Components:
//
//   - IRPCServerAdapter: Interface for the state behind the peer, with the Handle
//     method that applies a decoded request.
//
//   - QueueAdapter: The task queue. Talk enqueues, Pause/Resume toggle playback,
//     Skip drops the current task, Clear drops every task. GetTaskCount reports
//     the waiting tasks without the one playing, GetNowPlaying reports whether a
//     task is playing and playback is not paused.
//
//   - NewRPCServer: Factory function creating a configured peer with the specified
//     serializer and adapter.
//
// Usage Example:
//
//	config := common.ServerConfig{
//		Endpoint:           "127.0.0.1:50001",
//		TaskDurationMillis: 2000,
//		LogLevel:           "info",
//	}
//
//	s := server.NewRPCServer(config, serializer.NewBinarySerializer(), nil)
//	if err := s.Listen(); err != nil {
//		panic(err)
//	}
package server
