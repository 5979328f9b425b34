package game

import (
	"errors"
	"fmt"

	"github.com/minaorangina/rummy/deck"
)

// Table is one player's view of the game at the start of their turn
type Table struct {
	Hand deck.CardSet
	// DiscardPile is bottom first, top last
	DiscardPile []deck.Card
	Played      PlayedCards
}

// Validate reports the first way in which the table breaks the rules
// AllPossiblePlays relies on. It never panics.
func (t Table) Validate() error {
	var pile deck.CardSet
	for _, c := range t.DiscardPile {
		if !c.Valid() {
			return fmt.Errorf("%w: rank %d, suit %d", deck.ErrInvalidCard, c.Rank, c.Suit)
		}
		if pile.Contains(c) {
			return fmt.Errorf("%w: %s appears twice on the discard pile", deck.ErrDuplicateCard, c.Code())
		}
		if t.Hand.Contains(c) {
			return fmt.Errorf("%w: %s", ErrHandInDiscard, c.Code())
		}
		pile.Add(c)
	}

	for c := range t.Played.Multiples.All() {
		if t.Played.Runs.Contains(c) {
			return fmt.Errorf("%w: %s", ErrMeldOverlap, c.Code())
		}
	}

	for _, s := range []deck.CardSet{t.Hand, pile} {
		for c := range s.All() {
			if t.Played.Multiples.Contains(c) || t.Played.Runs.Contains(c) {
				return fmt.Errorf("%w: %s", ErrMeldedCard, c.Code())
			}
		}
	}

	for _, rank := range deck.Ranks() {
		switch n := t.Played.Multiples.CountRank(rank); n {
		case 0, 3, 4:
		default:
			return &InvalidStateError{Reason: fmt.Sprintf("%d cards of rank %s melded as a multiple", n, rank)}
		}
	}

	return nil
}

// Plays validates the table and then returns AllPossiblePlays for it.
// The engine's own panics are turned back into errors.
func (t Table) Plays() (plays []Play, err error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			recovered, ok := r.(error)
			if !ok {
				panic(r)
			}

			var stateErr *InvalidStateError
			var membershipErr *deck.MembershipError
			if !errors.As(recovered, &stateErr) && !errors.As(recovered, &membershipErr) {
				panic(r)
			}
			plays, err = nil, recovered
		}
	}()

	return AllPossiblePlays(t.Hand, t.DiscardPile, t.Played), nil
}
