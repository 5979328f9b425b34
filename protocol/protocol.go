package protocol

import "fmt"

// Cmd represents a command
type Cmd int

const (
	Null Cmd = iota
	// Query asks for the plays on a table sent inline
	Query
	// TablePlays asks for the plays on a stored table
	TablePlays
	Plays
	Error
)

var CmdNames = map[Cmd]string{
	Null:       "Null",
	Query:      "Query",
	TablePlays: "TablePlays",
	Plays:      "Plays",
	Error:      "Error",
}

var NameToCmd = map[string]Cmd{
	"Null":       Null,
	"Query":      Query,
	"TablePlays": TablePlays,
	"Plays":      Plays,
	"Error":      Error,
}

func (c Cmd) String() string {
	return CmdNames[c]
}

func (c Cmd) MarshalText() ([]byte, error) {
	name, ok := CmdNames[c]
	if !ok {
		return nil, fmt.Errorf("unknown command %d", int(c))
	}
	return []byte(name), nil
}

func (c *Cmd) UnmarshalText(text []byte) error {
	cmd, ok := NameToCmd[string(text)]
	if !ok {
		return fmt.Errorf("unknown command %q", text)
	}
	*c = cmd
	return nil
}

// InboundMessage is a message from a client to the server
type InboundMessage struct {
	Command Cmd    `json:"command"`
	TableID string `json:"tableID,omitempty"`
	Table   *Table `json:"table,omitempty"`
}

// OutboundMessage is a message from the server to a client
type OutboundMessage struct {
	Command Cmd    `json:"command"`
	TableID string `json:"tableID,omitempty"`
	Count   int    `json:"count"`
	Plays   []Play `json:"plays,omitempty"`
	Error   string `json:"error,omitempty"`
}
