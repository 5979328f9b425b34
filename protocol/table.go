package protocol

import (
	"fmt"

	"github.com/minaorangina/rummy/deck"
	"github.com/minaorangina/rummy/game"
)

// Played lists the melded cards on a table
type Played struct {
	Multiples []deck.Card `json:"multiples"`
	Runs      []deck.Card `json:"runs"`
}

// Table is the wire form of game.Table.
// DiscardPile is bottom first, top last.
type Table struct {
	Hand        []deck.Card `json:"hand"`
	DiscardPile []deck.Card `json:"discardPile"`
	Played      Played      `json:"played"`
}

// NewTable converts a game.Table to its wire form
func NewTable(t game.Table) Table {
	return Table{
		Hand:        t.Hand.Cards(),
		DiscardPile: append([]deck.Card{}, t.DiscardPile...),
		Played: Played{
			Multiples: t.Played.Multiples.Cards(),
			Runs:      t.Played.Runs.Cards(),
		},
	}
}

// Decode builds a game.Table, checking it is one AllPossiblePlays can accept
func (t Table) Decode() (game.Table, error) {
	hand, err := cardSet("hand", t.Hand)
	if err != nil {
		return game.Table{}, err
	}
	multiples, err := cardSet("multiples", t.Played.Multiples)
	if err != nil {
		return game.Table{}, err
	}
	runs, err := cardSet("runs", t.Played.Runs)
	if err != nil {
		return game.Table{}, err
	}

	table := game.Table{
		Hand:        hand,
		DiscardPile: append([]deck.Card{}, t.DiscardPile...),
		Played:      game.PlayedCards{Multiples: multiples, Runs: runs},
	}
	if err := table.Validate(); err != nil {
		return game.Table{}, err
	}

	return table, nil
}

func cardSet(field string, cards []deck.Card) (deck.CardSet, error) {
	var s deck.CardSet
	for _, c := range cards {
		if !c.Valid() {
			return deck.CardSet{}, fmt.Errorf("%s: %w", field, deck.ErrInvalidCard)
		}
		if s.Contains(c) {
			return deck.CardSet{}, fmt.Errorf("%s: %w: %s", field, deck.ErrDuplicateCard, c.Code())
		}
		s.Add(c)
	}
	return s, nil
}
