// Package common provides the data structures and utilities shared by the codec,
// transport, client and emulated peer of the BouyomiChan collaboration protocol.
//
// The package focuses on:
//   - The protocol vocabulary (Command opcodes, TalkConfig, Request, Response)
//   - The Endpoint identifying the application's socket
//   - A closed error taxonomy (Error, ErrorKind) used by every layer
//   - Configuration structures for the client and the emulated peer
//   - Custom logging implementation integrated with Dragonboat's logger package
//
// Key Components:
//
//   - Command: Enumeration of all opcodes understood by the application. Every
//     frame starts with one, encoded as a little-endian int16.
//
//   - TalkConfig: Voice parameters of a talk request. DefaultTalkConfig leaves
//     every parameter to the application (code=0, voice=1, volume=speed=tone=-1).
//
//   - Error: Tagged error carrying an ErrorKind (ConnectionFailed, TransportError,
//     MalformedResponse, InvalidRequest). Callers branch with errors.Is against the
//     sentinels ErrConnectionFailed, ErrTransport, ErrMalformedResponse and
//     ErrInvalidRequest, or with KindOf.
//
//   - ClientConfig / ServerConfig: Connection, timeout and socket options.
//
//   - Logger: Custom logging implementation that plugs into Dragonboat's
//     logger.Factory so all named loggers share one format.
package common
