package base

import (
	"io"
	"net"
)

// writeFrame writes the complete frame to the connection with a single write.
// A write that returns without error but does not write all bytes is reported as io.ErrShortWrite.
func writeFrame(conn net.Conn, frame []byte) error {
	n, err := conn.Write(frame)
	if err != nil {
		return err
	}
	if n != len(frame) {
		return io.ErrShortWrite
	}
	return nil
}

// readResponse reads until the peer closes the stream or size bytes have arrived.
// The answer has no length prefix, so a short result is returned as is
// and left to the codec to reject.
func readResponse(conn net.Conn, size int) ([]byte, error) {
	return io.ReadAll(io.LimitReader(conn, int64(size)))
}
