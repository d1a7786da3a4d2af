// Package rpc implements the client side of the BouyomiChan collaboration
// protocol: one binary frame per TCP connection, with a short little-endian
// answer for the query commands.
//
// The package is organized into several subpackages:
//
//   - common: Core data structures used across the system, including the
//     command table, request/response types, configuration structures,
//     the error type and logging.
//
//   - serializer: The wire codec converting requests and responses to and
//     from their binary frames.
//
//   - transport: Network communication abstraction with the TCP implementation
//     (connect, write the frame, read the answer, close).
//
//   - client: The command client (Speak, Pause, IsPlaying, ...).
//
//   - server: An emulated application with a task queue, used by the tests
//     and by `bouyomi serve`.
package rpc
