// Package serializer implements the wire codec of the BouyomiChan collaboration
// protocol: a fixed, little-endian binary layout without header, version or checksum.
//
// The package focuses on:
//   - Building the complete frame of a request before any byte is written
//   - Decoding the raw answers of the query commands into typed values
//   - Reporting undecodable input with the MalformedResponse error kind
//
// Frame Layout:
//
//	Talk (opcode 0x0001):
//	  int16  opcode
//	  int16  speed
//	  int16  tone
//	  int16  volume
//	  int16  voice
//	  uint8  code
//	  uint32 message length (bytes of the UTF-8 encoding)
//	  []byte message (UTF-8, no terminator)
//
//	Pause, Resume, Skip, Clear and all queries:
//	  int16  opcode
//
//	Query responses:
//	  GetPause, GetNowPlaying: 1 byte, true iff the byte equals 1
//	  GetTaskCount:            uint32
//
// Key Components:
//
//   - IRPCSerializer: Interface of the codec, used by the client and the emulated peer.
//
//   - binarySerializerImpl: The only implementation, created with NewBinarySerializer.
//
// Thread Safety:
//
//	The serializer is stateless and safe for concurrent use.
//
// Usage:
//
//	s := serializer.NewBinarySerializer()
//	frame, err := s.Serialize(*common.NewTalkRequest("hello", common.DefaultTalkConfig()))
//	// ... write frame, read answer of a query ...
//	var resp common.Response
//	err = s.DeserializeResponse(common.CmdGetTaskCount, answer, &resp)
package serializer
