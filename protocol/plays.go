package protocol

import (
	"github.com/minaorangina/rummy/deck"
	"github.com/minaorangina/rummy/game"
)

// Play is the wire form of game.Play
type Play struct {
	Kind          string       `json:"kind"`
	Ace           string       `json:"ace,omitempty"`
	CardsUsed     deck.CardSet `json:"cardsUsed"`
	CardsAcquired deck.CardSet `json:"cardsAcquired"`
}

// PlaysResponse answers a request for the plays on a table
type PlaysResponse struct {
	TableID string `json:"tableID,omitempty"`
	Count   int    `json:"count"`
	Plays   []Play `json:"plays"`
}

func NewPlay(p game.Play) Play {
	play := Play{
		Kind:          p.Kind.String(),
		CardsUsed:     p.CardsUsed,
		CardsAcquired: p.CardsAcquired,
	}
	if sf, ok := p.Kind.(game.StraightFlush); ok {
		play.Kind = "StraightFlush"
		play.Ace = sf.Ace.String()
	}
	return play
}

func NewPlays(plays []game.Play) []Play {
	out := make([]Play, 0, len(plays))
	for _, p := range plays {
		out = append(out, NewPlay(p))
	}
	return out
}

func NewPlaysResponse(tableID string, plays []game.Play) PlaysResponse {
	return PlaysResponse{
		TableID: tableID,
		Count:   len(plays),
		Plays:   NewPlays(plays),
	}
}
