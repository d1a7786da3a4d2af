package server

import (
	"github.com/h4z31/bouyomi/rpc/common"
)

// IRPCServerAdapter is the interface for the state behind the emulated peer.
// It is responsible for applying requests and answering queries.
type IRPCServerAdapter interface {
	// Handle applies a decoded request.
	// It returns the answer for query commands and nil for all other commands.
	Handle(req *common.Request) (resp *common.Response)
}
