package serializer

import "github.com/h4z31/bouyomi/rpc/common"

// IRPCSerializer is the interface of the wire codec.
// All methods are pure functions of their input and keep no state between calls.
type IRPCSerializer interface {
	// Serialize encodes a request into its complete frame (opcode plus payload)
	// It returns the frame and an error of kind InvalidRequest if the request cannot be encoded
	Serialize(req common.Request) ([]byte, error)
	// Deserialize decodes a complete request frame into req
	// It returns an error of kind MalformedResponse if the frame is truncated or unknown
	Deserialize(b []byte, req *common.Request) error
	// SerializeResponse encodes the answer to a query command
	SerializeResponse(resp common.Response) ([]byte, error)
	// DeserializeResponse decodes the raw answer to the query cmd into resp
	// It returns an error of kind MalformedResponse if b is too short
	DeserializeResponse(cmd common.Command, b []byte, resp *common.Response) error
}
