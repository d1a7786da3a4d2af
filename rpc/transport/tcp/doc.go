// Package tcp implements the TCP transport used to reach the speech application.
// It provides the TCP-specific connector for the base package's connection lifecycle.
//
// Key Components:
//
//   - clientConnector: TCP-specific implementation of base.IClientConnector. It dials
//     with the configured timeout and applies TCPNoDelay, keep-alive, linger and
//     socket buffer sizes from common.ClientConfig.
//
// A TCPLingerSec of 0 discards unsent data on close, so callers that send
// fire-and-forget commands should keep the default of -1.
package tcp
