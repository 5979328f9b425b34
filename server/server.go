package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/rummy/deck"
	"github.com/minaorangina/rummy/game"
	"github.com/minaorangina/rummy/protocol"
	"github.com/minaorangina/rummy/store"
	"github.com/rs/zerolog"
)

type Options struct {
	Store          store.TableStore
	Logger         zerolog.Logger
	AllowedOrigins []string
	Addr           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

type NewTableRes struct {
	TableID string `json:"tableID"`
}

// TableServer answers plays queries over HTTP and websockets
type TableServer struct {
	store    store.TableStore
	logger   zerolog.Logger
	upgrader websocket.Upgrader
	http.Server
}

func unknownTableIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown table ID '%s'", unknownID)
}

// NewServer creates a new TableServer
func NewServer(opts Options) *TableServer {
	s := &TableServer{
		store:  opts.Store,
		logger: opts.Logger,
	}
	if s.store == nil {
		s.store = store.NewInMemoryTableStore(0)
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     checkOrigin(origins),
	}

	router := http.NewServeMux()
	router.HandleFunc("GET /health", s.HandleHealth)
	router.HandleFunc("POST /plays", s.HandlePlays)
	router.HandleFunc("POST /tables", s.HandleNewTable)
	router.HandleFunc("GET /tables/{id}", s.HandleGetTable)
	router.HandleFunc("PUT /tables/{id}", s.HandleUpdateTable)
	router.HandleFunc("DELETE /tables/{id}", s.HandleDeleteTable)
	router.HandleFunc("GET /tables/{id}/plays", s.HandleTablePlays)
	router.HandleFunc("GET /ws", s.HandleWS)

	var handler http.Handler = router
	handler = handlers.CombinedLoggingHandler(accessLog{s.logger}, handler)
	handler = handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(handler)
	handler = handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{s.logger}))(handler)

	s.Handler = handler
	s.Addr = opts.Addr
	s.ReadTimeout = opts.ReadTimeout
	s.WriteTimeout = opts.WriteTimeout

	return s
}

// ServeHTTP serves http
func (s *TableServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Handler.ServeHTTP(w, r)
}

func (s *TableServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

// HandlePlays computes the plays for a table sent in the request body
func (s *TableServer) HandlePlays(w http.ResponseWriter, r *http.Request) {
	table, ok := decodeTable(w, r)
	if !ok {
		return
	}

	plays, err := table.Plays()
	if err != nil {
		writeError(w, err)
		return
	}

	s.logger.Debug().Int("plays", len(plays)).Msg("plays computed")
	writeJSON(w, http.StatusOK, protocol.NewPlaysResponse("", plays))
}

func (s *TableServer) HandleNewTable(w http.ResponseWriter, r *http.Request) {
	table, ok := decodeTable(w, r)
	if !ok {
		return
	}

	tableID, err := s.store.AddTable(table)
	if err != nil {
		s.logger.Error().Err(err).Msg("could not add table")
		writeError(w, err)
		return
	}

	s.logger.Info().Str("tableID", tableID).Msg("table created")
	writeJSON(w, http.StatusCreated, NewTableRes{TableID: tableID})
}

func (s *TableServer) HandleGetTable(w http.ResponseWriter, r *http.Request) {
	tableID := r.PathValue("id")

	table, ok := s.store.FindTable(tableID)
	if !ok {
		writeText(w, http.StatusNotFound, unknownTableIDMsg(tableID))
		return
	}

	writeJSON(w, http.StatusOK, protocol.NewTable(table))
}

func (s *TableServer) HandleUpdateTable(w http.ResponseWriter, r *http.Request) {
	tableID := r.PathValue("id")

	table, ok := decodeTable(w, r)
	if !ok {
		return
	}

	if err := s.store.UpdateTable(tableID, table); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *TableServer) HandleDeleteTable(w http.ResponseWriter, r *http.Request) {
	tableID := r.PathValue("id")

	if err := s.store.RemoveTable(tableID); err != nil {
		writeError(w, err)
		return
	}

	s.logger.Info().Str("tableID", tableID).Msg("table removed")
	w.WriteHeader(http.StatusNoContent)
}

func (s *TableServer) HandleTablePlays(w http.ResponseWriter, r *http.Request) {
	tableID := r.PathValue("id")

	plays, err := s.store.Plays(tableID)
	if err != nil {
		writeError(w, err)
		return
	}

	s.logger.Debug().Str("tableID", tableID).Int("plays", len(plays)).Msg("plays computed")
	writeJSON(w, http.StatusOK, protocol.NewPlaysResponse(tableID, plays))
}

func decodeTable(w http.ResponseWriter, r *http.Request) (game.Table, bool) {
	var data protocol.Table
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w)
		return game.Table{}, false
	}

	table, err := data.Decode()
	if err != nil {
		writeError(w, err)
		return game.Table{}, false
	}

	return table, true
}

// statusFor maps an error to the response status a client should see
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrUnknownTableID):
		return http.StatusNotFound
	case errors.Is(err, store.ErrTableStoreFull):
		return http.StatusServiceUnavailable
	case errors.Is(err, game.ErrInvalidGameState),
		errors.Is(err, game.ErrHandInDiscard),
		errors.Is(err, game.ErrMeldedCard),
		errors.Is(err, game.ErrMeldOverlap),
		errors.Is(err, deck.ErrDuplicateCard),
		errors.Is(err, deck.ErrMissingCard),
		errors.Is(err, deck.ErrInvalidCard):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeText(w, statusFor(err), err.Error())
}

func writeParseError(err error, w http.ResponseWriter) {
	if err == io.EOF {
		writeText(w, http.StatusBadRequest, "Missing body")
		return
	}
	writeText(w, http.StatusBadRequest, fmt.Sprintf("could not parse table: %v", err))
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Add("Content-Type", "text/plain")
	w.WriteHeader(status)
	w.Write([]byte(text))
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		writeText(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func checkOrigin(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}
}

// accessLog feeds gorilla's access log lines into zerolog
type accessLog struct {
	logger zerolog.Logger
}

func (a accessLog) Write(p []byte) (int, error) {
	a.logger.Info().Str("component", "access").Msg(strings.TrimSpace(string(p)))
	return len(p), nil
}

type recoveryLogger struct {
	logger zerolog.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.logger.Error().Str("component", "recovery").Msg(fmt.Sprint(v...))
}
