package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/minaorangina/rummy/game"
	"github.com/minaorangina/rummy/protocol"
)

// RpcPlaysHandler returns every play for the table in the payload.
//
// Payload: a protocol.Table as JSON.
// Returns: a protocol.PlaysResponse as JSON.
func RpcPlaysHandler(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	logger = logger.WithField("user", userID)

	var wire protocol.Table
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		logger.Warn("rummy_plays: bad payload: %v", err)
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}

	table, err := wire.Decode()
	if err != nil {
		logger.Warn("rummy_plays: impossible table: %v", err)
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	plays, err := table.Plays()
	if err != nil {
		var stateErr *game.InvalidStateError
		if errors.As(err, &stateErr) {
			return "", runtime.NewError(err.Error(), codeInvalidArgument)
		}
		logger.Error("rummy_plays: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	b, err := json.Marshal(protocol.NewPlaysResponse("", plays))
	if err != nil {
		logger.Error("rummy_plays: marshal response: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	logger.Debug("rummy_plays: %d plays", len(plays))
	return string(b), nil
}
