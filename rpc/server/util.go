package server

import (
	"fmt"
	"github.com/h4z31/bouyomi/rpc/common"
	"github.com/h4z31/bouyomi/rpc/serializer"
	"io"
)

// maxMessageSize bounds the message of a talk frame the emulated peer accepts
const maxMessageSize = 16 * 1024 * 1024 // 16 MB

// readFrame reads one complete request frame from r.
// The frame size follows from the opcode: talk frames carry a length field, everything else is just the opcode.
func readFrame(r io.Reader) ([]byte, error) {
	// Read the opcode
	opcode := make([]byte, serializer.OpcodeSize)
	if _, err := io.ReadFull(r, opcode); err != nil {
		return nil, err
	}

	cmd, err := serializer.ReadOpcode(opcode)
	if err != nil {
		return nil, err
	}
	if cmd != common.CmdTalk {
		return opcode, nil
	}

	// Read the rest of the talk header
	header := make([]byte, serializer.TalkHeaderSize)
	copy(header, opcode)
	if _, err := io.ReadFull(r, header[serializer.OpcodeSize:]); err != nil {
		return nil, unexpectedEOF(err)
	}

	msgLen, err := serializer.TalkMessageLength(header)
	if err != nil {
		return nil, err
	}
	if msgLen > maxMessageSize {
		return nil, fmt.Errorf("message of %d bytes exceeds the maximum of %d bytes", msgLen, maxMessageSize)
	}

	// Read the message
	frame := make([]byte, serializer.TalkHeaderSize+int(msgLen))
	copy(frame, header)
	if _, err := io.ReadFull(r, frame[serializer.TalkHeaderSize:]); err != nil {
		return nil, unexpectedEOF(err)
	}

	return frame, nil
}

// unexpectedEOF turns EOF in the middle of a frame into io.ErrUnexpectedEOF
func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
