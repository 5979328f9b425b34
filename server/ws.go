package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/rummy/game"
	"github.com/minaorangina/rummy/protocol"
	uuid "github.com/satori/go.uuid"
)

// maxMessageSize fits a whole deck spread across the table with room to spare
const maxMessageSize = 8 << 10

var errMissingTable = errors.New("missing table")

// HandleWS answers each inbound message on the connection with one outbound message
func (s *TableServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		s.logger.Warn().Err(err).Msg("could not upgrade to websocket")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	logger := s.logger.With().Str("conn", uuid.NewV4().String()).Logger()
	logger.Debug().Msg("websocket connected")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn().Err(err).Msg("websocket closed")
			}
			return
		}

		var msg protocol.InboundMessage
		var out protocol.OutboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			out = errorMessage("", fmt.Errorf("could not parse message: %w", err))
		} else {
			out = s.respond(msg)
		}

		if out.Command == protocol.Error {
			logger.Debug().Str("error", out.Error).Msg("websocket request failed")
		}

		if err := conn.WriteJSON(out); err != nil {
			logger.Warn().Err(err).Msg("could not write to websocket")
			return
		}
	}
}

func (s *TableServer) respond(msg protocol.InboundMessage) protocol.OutboundMessage {
	var plays []game.Play
	var err error

	switch msg.Command {
	case protocol.Query:
		if msg.Table == nil {
			return errorMessage(msg.TableID, errMissingTable)
		}
		var table game.Table
		table, err = msg.Table.Decode()
		if err == nil {
			plays, err = table.Plays()
		}

	case protocol.TablePlays:
		plays, err = s.store.Plays(msg.TableID)

	default:
		err = fmt.Errorf("unsupported command %s", msg.Command)
	}

	if err != nil {
		return errorMessage(msg.TableID, err)
	}

	return protocol.OutboundMessage{
		Command: protocol.Plays,
		TableID: msg.TableID,
		Count:   len(plays),
		Plays:   protocol.NewPlays(plays),
	}
}

func errorMessage(tableID string, err error) protocol.OutboundMessage {
	return protocol.OutboundMessage{
		Command: protocol.Error,
		TableID: tableID,
		Error:   err.Error(),
	}
}
