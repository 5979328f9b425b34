package game

import (
	"fmt"

	"github.com/minaorangina/rummy/deck"
)

// AceStatus records which end of a run an Ace sits at
type AceStatus int

const (
	// NoAce means the run has no Ace in it
	NoAce AceStatus = iota
	// AceHigh means the Ace sits above the King
	AceHigh
	// AceLow means the Ace sits below the Two
	AceLow
)

var aceStatusNames = map[AceStatus]string{
	NoAce:   "",
	AceHigh: "High",
	AceLow:  "Low",
}

func (a AceStatus) String() string {
	return aceStatusNames[a]
}

// PlayKind is either Multiple or StraightFlush.
// No other type can implement it.
type PlayKind interface {
	fmt.Stringer
	playKind()
}

// Multiple is a play of cards of the same rank
type Multiple struct{}

func (Multiple) playKind() {}

func (Multiple) String() string {
	return "Multiple"
}

// StraightFlush is a play of consecutive cards of one suit
type StraightFlush struct {
	Ace AceStatus
}

func (StraightFlush) playKind() {}

func (s StraightFlush) String() string {
	if s.Ace == NoAce {
		return "StraightFlush"
	}
	return fmt.Sprintf("StraightFlush(Ace %s)", s.Ace)
}

// Play is one legal move.
// CardsUsed are the cards laid down, from the hand or the discard pile.
// CardsAcquired are the discard pile cards the player takes by making it.
type Play struct {
	Kind          PlayKind
	CardsUsed     deck.CardSet
	CardsAcquired deck.CardSet
}

func (p Play) String() string {
	return fmt.Sprintf("(%s, %s, %s)", p.Kind, p.CardsUsed, p.CardsAcquired)
}

// newPlay works out what the player picks up for using cardsUsed.
// The discard pile runs bottom first, top last: using a card buried in it
// means taking that card and every card above it.
func newPlay(kind PlayKind, cardsUsed deck.CardSet, discardPile []deck.Card) Play {
	var cardsAcquired deck.CardSet

	for i, c := range discardPile {
		if cardsUsed.Contains(c) {
			for _, above := range discardPile[i:] {
				cardsAcquired.Add(above)
			}
			break
		}
	}

	return Play{
		Kind:          kind,
		CardsUsed:     cardsUsed,
		CardsAcquired: cardsAcquired,
	}
}
