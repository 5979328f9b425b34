package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/rummy/game"
	utils "github.com/minaorangina/rummy/internal"
	"github.com/minaorangina/rummy/protocol"
	"github.com/minaorangina/rummy/store"
	"github.com/rs/zerolog"
)

const scenarioJSON = `{
	"hand": ["2C", "3C", "2S", "2D", "AD", "AC", "6H"],
	"discardPile": ["7C", "JH", "AS", "5S"],
	"played": {"multiples": ["6C", "6S", "6D", "JC", "JS", "JD"], "runs": []}
}`

// panicStore blows up on every call, to exercise the recovery handler
type panicStore struct{}

func (panicStore) FindTable(string) (game.Table, bool) { panic("boom") }
func (panicStore) AddTable(game.Table) (string, error) { panic("boom") }
func (panicStore) UpdateTable(string, game.Table) error { panic("boom") }
func (panicStore) RemoveTable(string) error { panic("boom") }
func (panicStore) Plays(string) ([]game.Play, error) { panic("boom") }

func newBasicServer() *TableServer {
	return NewServer(Options{
		Store:  store.NewInMemoryTableStore(0),
		Logger: zerolog.Nop(),
	})
}

func newServerWithStore(str store.TableStore) *TableServer {
	return NewServer(Options{Store: str, Logger: zerolog.Nop()})
}

func newRequest(method, path, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = bytes.NewBuffer([]byte{})
	}
	request, _ := http.NewRequest(method, path, reader)
	return request
}

func serve(s http.Handler, request *http.Request) *httptest.ResponseRecorder {
	response := httptest.NewRecorder()
	s.ServeHTTP(response, request)
	return response
}

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
}

func mustDial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()

	ws, _, err := websocket.DefaultDialer.Dial(wsURL(server), nil)
	utils.AssertNoError(t, err)
	t.Cleanup(func() { ws.Close() })

	return ws
}

func mustSend(t *testing.T, ws *websocket.Conn, msg interface{}) protocol.OutboundMessage {
	t.Helper()

	utils.AssertNoError(t, ws.WriteJSON(msg))

	var got protocol.OutboundMessage
	utils.AssertNoError(t, ws.ReadJSON(&got))
	return got
}

func decodeBody(t *testing.T, body *bytes.Buffer, target interface{}) {
	t.Helper()

	err := json.Unmarshal(body.Bytes(), target)
	if err != nil {
		t.Fatalf("Could not unmarshal json: %s", err.Error())
	}
}

// ASSERTIONS

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}
