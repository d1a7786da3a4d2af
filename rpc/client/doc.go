// Package client implements the command client of the BouyomiChan collaboration
// protocol. Each operation encodes its request with the serializer package, sends
// it over its own connection and, for queries, decodes the answer into a typed value.
//
// The package focuses on:
//   - One method per logical command (speak, pause, resume, skip, clear and the queries)
//   - A single connection per call that is closed on every exit path
//   - Surfacing failures as *common.Error so callers can branch on the kind
//
// Key Components:
//
//   - Client: The implementation of IClient. New and Default create a client on
//     the TCP transport, NewWithConfig accepts any transport and serializer.
//
//   - IClient: Interface of all operations, used by the command line tool.
//
// Usage Example:
//
//	c := client.Default() // 127.0.0.1:50001
//
//	if err := c.Speak("こんにちは"); err != nil {
//		if errors.Is(err, common.ErrConnectionFailed) {
//			// the application is not running
//		}
//	}
//
//	n, err := c.RemainingTasks()
//
// Errors:
//
//   - ConnectionFailed: the connection could not be established
//   - TransportError: writing or reading failed after connecting
//   - MalformedResponse: the answer to a query was too short to decode
//   - InvalidRequest: the request could not be encoded, nothing was sent
//
//	No call is retried, queries never return a value together with an error.
//
// Metrics:
//
//	Every call is counted in the default VictoriaMetrics set
//	(bouyomi_client_requests_total, bouyomi_client_errors_total and
//	bouyomi_client_request_duration_seconds, labelled by command).
//
// Thread Safety:
//
//	Clients hold only immutable configuration and can be used concurrently from
//	multiple goroutines. The ordering of concurrent talk requests is decided by
//	the application.
package client
