package nakama

const (
	// RpcPlays is the Nakama RPC id clients call with a table to get its plays.
	RpcPlays = "rummy_plays"
)

// gRPC status codes used by runtime.NewError
const (
	codeInvalidArgument = 3
	codeInternal        = 13
)
