package deck

import (
	"math/rand/v2"
)

// Deck represents a deck of cards. The last card is the top of the deck.
type Deck []Card

// New creates a deck of cards in canonical order
func New() Deck {
	cards := make(Deck, 0, NumCards)
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle shuffles the deck of cards
func (d *Deck) Shuffle() {
	d.ShuffleWith(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// ShuffleWith shuffles the deck using the given source of randomness
func (d *Deck) ShuffleWith(r *rand.Rand) {
	actualDeck := *d
	r.Shuffle(len(actualDeck), func(i, j int) {
		actualDeck[i], actualDeck[j] = actualDeck[j], actualDeck[i]
	})
}

// Deal deals n number of cards from the top of the deck, until it is empty
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []Card{}
	}
	startingIndex := numCardsInDeck - n
	subSlice := make([]Card, n)
	copy(subSlice, (*d)[startingIndex:numCardsInDeck])
	*d = (*d)[:startingIndex]
	return subSlice
}
