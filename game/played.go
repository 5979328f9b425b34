package game

import "github.com/minaorangina/rummy/deck"

// PlayedCards is everything melded on the table.
// A rank melded as a multiple always has 3 or 4 suits on the table;
// the type does not enforce this, AllPossiblePlays does.
type PlayedCards struct {
	// Multiples holds cards melded as sets of a kind
	Multiples deck.CardSet
	// Runs holds cards melded as straight flushes
	Runs deck.CardSet
}

// NewPlayedCards builds the table from lists of melded cards.
// It panics if either list has a duplicate.
func NewPlayedCards(multiples, runs []deck.Card) PlayedCards {
	return PlayedCards{
		Multiples: deck.NewCardSet(multiples...),
		Runs:      deck.NewCardSet(runs...),
	}
}

// meldedAsMultiple reports whether rank has a multiple on the table.
// One or two suits of a rank on the table is impossible and panics.
func (p PlayedCards) meldedAsMultiple(rank deck.Rank) bool {
	switch n := p.Multiples.CountRank(rank); n {
	case 0:
		return false
	case 3, 4:
		return true
	default:
		invalidState("%d cards of rank %s melded as a multiple", n, rank)
		return false
	}
}

// checkMultiples panics unless every rank has 0, 3 or 4 suits melded as a multiple
func (p PlayedCards) checkMultiples() {
	for _, rank := range deck.Ranks() {
		p.meldedAsMultiple(rank)
	}
}
