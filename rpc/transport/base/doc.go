// Package base provides the connection lifecycle shared by all client transports,
// independent of the specific network medium. It is extended with protocol-specific
// connectors (see the tcp package).
//
// The package focuses on:
//   - A fixed connect -> upgrade -> write -> [read] -> close sequence per call
//   - Closing the connection on every exit path
//   - Mapping failures into ConnectionFailed (connect, upgrade) and
//     TransportError (deadline, write, read)
//
// Key Components:
//
//   - IClientConnector: Interface for protocol-specific operations that allow
//     extending the base transport with different network media.
//
//   - clientTransport: Core client implementation. It keeps no connections
//     between calls.
//
// Reading Responses:
//
//	Query answers carry no length prefix. The transport reads until the peer
//	closes the stream or the command's expected number of bytes has arrived,
//	whichever happens first, and hands the bytes to the codec unchanged.
//
// Thread Safety:
//
//	All public methods are thread-safe, each call works on its own connection.
package base
