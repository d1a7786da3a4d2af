// Package transport defines the interface between the command client and the
// network. It provides a common contract that all transport implementations must
// fulfill, so the client can be tested against any medium.
//
// The package focuses on:
//   - One connection per call, no reuse, no pooling, no keep-alive between calls
//   - Classifying failures into the ConnectionFailed and TransportError kinds
//
// Key Components:
//
//   - IRPCClientTransport: Interface for client-side transport implementations.
//     The implementation used in production is tcp.NewTCPClientTransport, which
//     builds on the connection lifecycle of the base package.
package transport
