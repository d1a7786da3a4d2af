package serializer

import (
	"encoding/binary"
	"fmt"
	"github.com/h4z31/bouyomi/rpc/common"
	"math"
)

// NewBinarySerializer creates a new serializer for the fixed little-endian
// frame layout of the collaboration protocol
func NewBinarySerializer() IRPCSerializer {
	return &binarySerializerImpl{}
}

// binarySerializerImpl implements IRPCSerializer
type binarySerializerImpl struct {
}

// Frame layout sizes
const (
	// OpcodeSize is the size of the opcode at the start of every frame
	OpcodeSize = 2
	// TalkHeaderSize is the size of a talk frame without the message bytes:
	// opcode, speed, tone, volume, voice (int16 each), code (uint8), message length (uint32)
	TalkHeaderSize = OpcodeSize + 4*2 + 1 + 4
	// MaxMessageSize is the largest message (in bytes) the length field can describe
	MaxMessageSize = math.MaxUint32
)

// Offsets in a talk frame
const (
	offSpeed  = 2
	offTone   = 4
	offVolume = 6
	offVoice  = 8
	offCode   = 10
	offLength = 11
)

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.IRPCSerializer)
// --------------------------------------------------------------------------

func (b binarySerializerImpl) Serialize(req common.Request) ([]byte, error) {
	if !req.Cmd.IsValid() {
		return nil, common.NewError(common.ErrKindInvalidRequest, req.Cmd, "unknown command")
	}

	// Commands without payload are just the opcode
	if req.Cmd != common.CmdTalk {
		result := make([]byte, OpcodeSize)
		binary.LittleEndian.PutUint16(result, uint16(req.Cmd))
		return result, nil
	}

	// The length field counts bytes of the UTF-8 encoding, not characters
	msgLen := len(req.Message)
	if uint64(msgLen) > MaxMessageSize {
		return nil, common.NewError(common.ErrKindInvalidRequest, req.Cmd,
			fmt.Sprintf("message of %d bytes exceeds the maximum of %d bytes", msgLen, uint64(MaxMessageSize)))
	}

	result := make([]byte, TalkHeaderSize+msgLen)

	// Field order is fixed, the application parses positionally
	binary.LittleEndian.PutUint16(result[0:offSpeed], uint16(req.Cmd))
	binary.LittleEndian.PutUint16(result[offSpeed:offTone], uint16(req.Config.Speed))
	binary.LittleEndian.PutUint16(result[offTone:offVolume], uint16(req.Config.Tone))
	binary.LittleEndian.PutUint16(result[offVolume:offVoice], uint16(req.Config.Volume))
	binary.LittleEndian.PutUint16(result[offVoice:offCode], uint16(req.Config.Voice))
	result[offCode] = req.Config.Code
	binary.LittleEndian.PutUint32(result[offLength:TalkHeaderSize], uint32(msgLen))
	copy(result[TalkHeaderSize:], req.Message)

	return result, nil
}

func (b binarySerializerImpl) Deserialize(data []byte, req *common.Request) error {
	cmd, err := ReadOpcode(data)
	if err != nil {
		return err
	}

	if !cmd.IsValid() {
		return common.NewError(common.ErrKindMalformedResponse, cmd, "unknown opcode")
	}

	req.Cmd = cmd
	req.Message = ""
	req.Config = common.TalkConfig{}

	if cmd != common.CmdTalk {
		if len(data) != OpcodeSize {
			return common.NewError(common.ErrKindMalformedResponse, cmd,
				fmt.Sprintf("expected %d bytes, got %d", OpcodeSize, len(data)))
		}
		return nil
	}

	msgLen, err := TalkMessageLength(data)
	if err != nil {
		return err
	}

	if uint64(len(data)-TalkHeaderSize) != uint64(msgLen) {
		return common.NewError(common.ErrKindMalformedResponse, cmd,
			fmt.Sprintf("message length field is %d but frame carries %d bytes", msgLen, len(data)-TalkHeaderSize))
	}

	req.Config = common.TalkConfig{
		Code:   data[offCode],
		Voice:  int16(binary.LittleEndian.Uint16(data[offVoice:offCode])),
		Volume: int16(binary.LittleEndian.Uint16(data[offVolume:offVoice])),
		Speed:  int16(binary.LittleEndian.Uint16(data[offSpeed:offTone])),
		Tone:   int16(binary.LittleEndian.Uint16(data[offTone:offVolume])),
	}
	req.Message = string(data[TalkHeaderSize:])

	return nil
}

func (b binarySerializerImpl) SerializeResponse(resp common.Response) ([]byte, error) {
	switch resp.Cmd {
	case common.CmdGetPause, common.CmdGetNowPlaying:
		if resp.Ok {
			return []byte{1}, nil
		}
		return []byte{0}, nil
	case common.CmdGetTaskCount:
		result := make([]byte, 4)
		binary.LittleEndian.PutUint32(result, resp.Count)
		return result, nil
	default:
		return nil, common.NewError(common.ErrKindInvalidRequest, resp.Cmd, "command has no response")
	}
}

func (b binarySerializerImpl) DeserializeResponse(cmd common.Command, data []byte, resp *common.Response) error {
	resp.Cmd = cmd
	resp.Ok = false
	resp.Count = 0

	switch cmd {
	case common.CmdGetPause, common.CmdGetNowPlaying:
		if len(data) < 1 {
			return common.NewError(common.ErrKindMalformedResponse, cmd, "empty response")
		}
		resp.Ok = data[0] == 1
		return nil
	case common.CmdGetTaskCount:
		if len(data) < 4 {
			return common.NewError(common.ErrKindMalformedResponse, cmd,
				fmt.Sprintf("expected 4 bytes, got %d", len(data)))
		}
		resp.Count = binary.LittleEndian.Uint32(data[:4])
		return nil
	default:
		return common.NewError(common.ErrKindInvalidRequest, cmd, "command has no response")
	}
}

// --------------------------------------------------------------------------
// Helper Functions
// --------------------------------------------------------------------------

// ReadOpcode returns the command at the start of a frame
func ReadOpcode(data []byte) (common.Command, error) {
	if len(data) < OpcodeSize {
		return 0, common.NewError(common.ErrKindMalformedResponse, 0, "data too short for opcode")
	}
	return common.Command(int16(binary.LittleEndian.Uint16(data[:OpcodeSize]))), nil
}

// TalkMessageLength returns the message length field of a talk frame header.
// data must hold at least TalkHeaderSize bytes.
func TalkMessageLength(data []byte) (uint32, error) {
	if len(data) < TalkHeaderSize {
		return 0, common.NewError(common.ErrKindMalformedResponse, common.CmdTalk, "data too short for talk header")
	}
	return binary.LittleEndian.Uint32(data[offLength:TalkHeaderSize]), nil
}
